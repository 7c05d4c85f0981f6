package timeline

import (
	"sync"
	"time"
)

// Sample is one (time, value) data point supplied by the caller.
// Time is numeric; dates are stored as Unix milliseconds (see SampleAt).
type Sample struct {
	Time  float64
	Value float64
}

// SampleAt returns a Sample whose time coordinate is t in Unix milliseconds.
func SampleAt(t time.Time, value float64) Sample {
	return Sample{Time: float64(t.UnixMilli()), Value: value}
}

// Timestamp interprets the time coordinate as Unix milliseconds.
func (s Sample) Timestamp() time.Time {
	return time.UnixMilli(int64(s.Time))
}

// ProjectedPoint is a snapshot sample annotated with its screen-space position.
type ProjectedPoint struct {
	Sample
	RenderX float64
	RenderY float64
}

// Series is the live, append-only sample sequence. The caller and the
// chart share the same *Series: the caller pushes, the chart snapshots
// on Recompute.
//
// Samples must be pushed in non-decreasing time order. Series does not
// check this.
//
// Push may be called from a different goroutine than the chart's.
type Series struct {
	mu      sync.RWMutex
	samples []Sample
}

// NewSeries creates a series holding the given samples.
func NewSeries(samples ...Sample) *Series {
	s := &Series{}
	s.Push(samples...)
	return s
}

// Push appends samples to the end of the series.
func (s *Series) Push(samples ...Sample) {
	s.mu.Lock()
	s.samples = append(s.samples, samples...)
	s.mu.Unlock()
}

// Len returns the number of samples.
func (s *Series) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.samples)
}

// At returns the i-th sample. It panics if i is out of range.
func (s *Series) At(i int) Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.samples[i]
}

// Samples returns a point-in-time copy of the series. The copy shares
// no memory with the series, so later pushes do not affect it.
func (s *Series) Samples() []Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}
