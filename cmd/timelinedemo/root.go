package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gogpu/timeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the command tree. Flags are bound to a fresh viper
// instance so values can also come from a config file or TIMELINE_*
// environment variables.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "timelinedemo",
		Short:         "Render a simulated live timeline chart",
		Version:       timeline.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}
			setupLogger(cmd, v.GetBool("verbose"))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (YAML, JSON or TOML)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	_ = v.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	v.SetEnvPrefix("timeline")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(newRenderCmd(v))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// setupLogger routes timeline's slog output through a charm logger.
func setupLogger(cmd *cobra.Command, verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	timeline.SetLogger(slog.New(handler))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "timelinedemo %s\n", timeline.Version)
		},
	}
}
