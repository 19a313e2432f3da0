// Command mazeway solves maze images: white pixels are passages, black
// pixels are walls, and two openings on the border mark entrance and exit.
// The solved maze is written as a PNG with the shortest path painted in.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mazeway/config"
	"github.com/katalvlaran/mazeway/logging"
	"github.com/katalvlaran/mazeway/metrics"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("mazeway version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("mazeway version %s-dev", version)
}

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgPath     string
	logLevel    string
	logFormat   string
	metricsFile string
	image       imageFlags
	jobs        int

	cfg     *config.Config
	log     *logrus.Logger
	metrics *metrics.Metrics
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "mazeway",
		Short:   "Solve maze images with breadth-first search",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML config file (env: MAZEWAY_* overrides)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text|json")
	rootCmd.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")

	rootCmd.AddCommand(newSolveCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	return rootCmd
}

// setup resolves configuration (flags over env over file over defaults),
// validates it once and builds the logger and metrics.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.cfgPath)
	if err != nil {
		return err
	}
	a.override(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.metrics = metrics.New()
	return nil
}

// override copies explicitly set flags over cfg. Flags a subcommand does
// not define are never reported as changed.
func (a *app) override(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
	if fs.Changed("threshold") {
		cfg.Threshold = a.image.threshold
	}
	if fs.Changed("color") {
		cfg.PathColor = a.image.color
	}
	if fs.Changed("suffix") {
		cfg.OutputSuffix = a.image.suffix
	}
	if fs.Changed("jobs") {
		cfg.Jobs = a.jobs
	}
}

// finish flushes metrics, if configured, and returns err joined with any
// flush failure.
func (a *app) finish(err error) error {
	if a.cfg == nil || a.cfg.MetricsFile == "" {
		return err
	}
	if werr := a.metrics.WriteTextfile(a.cfg.MetricsFile); werr != nil {
		a.log.WithError(werr).Error("metrics not written")
		return errors.Join(err, werr)
	}
	a.log.WithField("file", a.cfg.MetricsFile).Debug("metrics written")
	return err
}
