package cli

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/internal/tour"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <topic>...",
		Short: "Run selected topics",
		Long: `Run one or more topics by name. Topics always run in tour order,
whatever order they are given in; repeated names run once.

Example:
  langtour run ownership
  langtour run threads closures --pace 50ms`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd, rootOpts, args)
		},
	}
}

// runTour selects names from the default catalogue (all topics when names
// is empty) and runs them, writing the transcript to the command's stdout
// and diagnostics to its stderr.
func runTour(cmd *cobra.Command, opts *RootOptions, names []string) error {
	topics, err := catalog.Default(opts.Pace).Select(names)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: opts.level,
	})
	logger := slog.New(handler).With("run", uuid.NewString())
	logger.Debug("starting tour", "topics", len(topics), "pace", opts.Pace)

	reg := prometheus.NewRegistry()
	runner := tour.NewRunner(tour.RunnerConfig{
		Out:      cmd.OutOrStdout(),
		Logger:   logger,
		Registry: reg,
	})
	runner.Run(topics)

	if opts.Metrics {
		if err := printMetrics(cmd.OutOrStdout(), reg); err != nil {
			return err
		}
	}
	logger.Debug("tour finished")
	return nil
}
