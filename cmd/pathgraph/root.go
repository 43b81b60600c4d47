package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgraph/config"
	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/metrics"
)

// env is the state shared by every subcommand, prepared in PersistentPreRunE.
type env struct {
	configPath string
	repr       string
	frontier   string
	logLevel   string
	dumpStats  bool

	cfg      config.Config
	log      *slog.Logger
	runID    string
	registry *prometheus.Registry
	observer core.Observer
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "pathgraph",
		Short:         "Graph traversal and shortest-path engine",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.prepare(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if e.registry == nil {
				return nil
			}
			return metrics.WriteText(cmd.OutOrStdout(), e.registry)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&e.repr, "repr", "", "adjacency representation: list, matrix or edges")
	pf.StringVar(&e.frontier, "frontier", "", "priority frontier: tree or heap")
	pf.StringVar(&e.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&e.dumpStats, "metrics", false, "print Prometheus metrics after the run")

	root.AddCommand(
		newBFSCmd(e),
		newDFSCmd(e),
		newDijkstraCmd(e),
		newAStarCmd(e),
		newRouteCmd(e),
	)

	return root
}

// prepare loads the configuration, applies flag overrides and builds the
// logger and optional metrics collector.
func (e *env) prepare(cmd *cobra.Command) error {
	cfg := config.Default()
	if e.configPath != "" {
		loaded, err := config.Load(e.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if e.repr != "" {
		cfg.Representation = e.repr
	}
	if e.frontier != "" {
		cfg.Frontier = e.frontier
	}
	if e.logLevel != "" {
		cfg.Log.Level = e.logLevel
	}
	if e.dumpStats {
		cfg.Metrics.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.runID = uuid.New().String()
	e.log = log.With(slog.String("run_id", e.runID), slog.String("command", cmd.Name()))

	if cfg.Metrics.Enabled {
		e.registry = prometheus.NewRegistry()
		e.observer = metrics.New(e.registry)
	}
	e.log.Debug("configured",
		slog.String("representation", cfg.Representation),
		slog.String("frontier", cfg.Frontier),
		slog.Bool("metrics", cfg.Metrics.Enabled))

	return nil
}

// graphOptions returns the core options for the configured representation.
func (e *env) graphOptions() []core.GraphOption {
	return e.cfg.GraphOptions()
}

func (e *env) fail(op string, err error) error {
	e.log.Error(op+" failed", slog.Any("error", err))
	return fmt.Errorf("%s: %w", op, err)
}
