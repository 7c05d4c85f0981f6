package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/timeline"
	"github.com/gogpu/timeline/plugins"
	_ "github.com/gogpu/timeline/plugins/axislabel"
	_ "github.com/gogpu/timeline/plugins/timeaxis"
	_ "github.com/gogpu/timeline/plugins/valueaxis"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// frameInterval is the simulated display refresh period.
const frameInterval = time.Second / 60

type renderConfig struct {
	Samples    int
	MaxPoints  int
	Width      int
	Height     int
	PixelRatio float64
	MaxGap     time.Duration
	Seed       uint64
	Plugins    []string
	XLabel     string
	YLabel     string
	Output     string
	FramesDir  string
	FrameEvery int
}

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Simulate a live feed and write the chart as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := renderConfig{
				Samples:    v.GetInt("samples"),
				MaxPoints:  v.GetInt("max-points"),
				Width:      v.GetInt("width"),
				Height:     v.GetInt("height"),
				PixelRatio: v.GetFloat64("pixel-ratio"),
				MaxGap:     v.GetDuration("max-gap"),
				Seed:       v.GetUint64("seed"),
				Plugins:    v.GetStringSlice("plugins"),
				XLabel:     v.GetString("x-label"),
				YLabel:     v.GetString("y-label"),
				Output:     v.GetString("output"),
				FramesDir:  v.GetString("frames"),
				FrameEvery: v.GetInt("frame-every"),
			}
			return runRender(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntP("samples", "n", 2000, "Number of samples to simulate")
	flags.IntP("max-points", "m", 300, "Window size in average-spaced samples")
	flags.Int("width", 800, "Surface width in pixels")
	flags.Int("height", 300, "Surface height in pixels")
	flags.Float64("pixel-ratio", 1, "Device pixel ratio")
	flags.Duration("max-gap", 50*time.Millisecond, "Maximum random gap between samples")
	flags.Uint64("seed", 1, "Random seed")
	flags.StringSlice("plugins", []string{"axis-labels", "value-axis", "time-axis"}, "Plugins to enable, in order ("+strings.Join(plugins.List(), ", ")+")")
	flags.String("x-label", "Time", "Horizontal axis label")
	flags.String("y-label", "Random numbers", "Vertical axis label")
	flags.StringP("output", "o", "timeline.png", "Output PNG file")
	flags.String("frames", "", "Directory to write intermediate frames to")
	flags.Int("frame-every", 60, "Write every Nth frame when --frames is set")
	_ = v.BindPFlags(flags)

	return cmd
}

func runRender(cfg renderConfig) error {
	logger := timeline.Logger()

	ps, err := plugins.NewAll(cfg.Plugins...)
	if err != nil {
		return err
	}

	container := timeline.NewImageContainer(cfg.Width, cfg.Height)
	defer container.Close()

	series := timeline.NewSeries()
	chart, err := timeline.New(container, series, cfg.MaxPoints,
		timeline.WithLabels(cfg.XLabel, cfg.YLabel),
		timeline.WithPixelRatio(cfg.PixelRatio),
		timeline.WithPlugins(ps...),
	)
	if err != nil {
		return err
	}

	if cfg.FramesDir != "" {
		if err := os.MkdirAll(cfg.FramesDir, 0o755); err != nil {
			return err
		}
	}

	feed := newRandomFeed(cfg.Seed, cfg.MaxGap)
	now := time.Now()
	nextFrame := now
	frames := 0

	for i := 0; i < cfg.Samples; i++ {
		now = now.Add(feed.gap())
		series.Push(timeline.SampleAt(now, feed.next()))
		if err := chart.Recompute(); err != nil {
			return err
		}

		for !nextFrame.After(now) {
			if err := chart.Draw(); err != nil {
				return err
			}
			if cfg.FramesDir != "" && cfg.FrameEvery > 0 && frames%cfg.FrameEvery == 0 {
				name := filepath.Join(cfg.FramesDir, fmt.Sprintf("frame-%05d.png", frames))
				if err := container.SavePNG(name); err != nil {
					return err
				}
			}
			frames++
			nextFrame = nextFrame.Add(frameInterval)
		}
	}

	if err := chart.Draw(); err != nil {
		return err
	}
	if err := container.SavePNG(cfg.Output); err != nil {
		return err
	}

	logger.Info("timelinedemo: rendered",
		"samples", series.Len(),
		"frames", frames,
		"output", cfg.Output)
	return nil
}

// randomFeed produces a random walk at random time gaps.
type randomFeed struct {
	rng    *rand.Rand
	maxGap time.Duration
	prev   float64
}

func newRandomFeed(seed uint64, maxGap time.Duration) *randomFeed {
	return &randomFeed{rng: rand.New(rand.NewPCG(seed, seed)), maxGap: maxGap}
}

func (f *randomFeed) gap() time.Duration {
	if f.maxGap < time.Millisecond {
		return time.Millisecond
	}
	// Millisecond resolution: samples store time as Unix milliseconds.
	return time.Duration(f.rng.Int64N(int64(f.maxGap/time.Millisecond))+1) * time.Millisecond
}

func (f *randomFeed) next() float64 {
	step := math.Floor(f.rng.Float64() * 10)
	if f.rng.Float64() > 0.5 {
		step = -step
	}
	f.prev += step
	return f.prev
}
