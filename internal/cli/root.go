// Package cli wires the tour into a cobra command tree.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// RootOptions holds global flags for all commands. After PersistentPreRunE
// it also carries the values merged in from --config.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Metrics    bool
	Pace       time.Duration

	// Topics is the subset named by the config file, if any.
	Topics []string

	level slog.Level
}

// NewRootCommand creates the root command. Run without a subcommand it
// walks the whole tour in order.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "langtour",
		Short: "A guided tour of language concepts, printed as a transcript",
		Long: `langtour walks through bindings, control flow, ownership, structs,
enums, generics, lifetimes, interfaces, closures, goroutines and
sequence builders, printing a short narrated demo for each.

With no arguments the whole tour runs in the fixed order. Use
"langtour list" to see the topics and "langtour run <topic>..." to
run a subset.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd, opts, opts.Topics)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "diagnostics level on stderr (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&opts.Metrics, "metrics", false, "print per-topic metrics after the tour")
	cmd.PersistentFlags().DurationVar(&opts.Pace, "pace", catalog.DefaultPace, "pause between steps in the timed demos")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// resolve merges the config file under the flags and validates the result.
// A flag set on the command line always wins over the file.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if o.ConfigPath != "" {
		cfg, err := LoadConfig(o.ConfigPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if cfg.LogLevel != "" && !flags.Changed("log-level") {
			o.LogLevel = cfg.LogLevel
		}
		if cfg.Pace != nil && !flags.Changed("pace") {
			o.Pace = *cfg.Pace
		}
		o.Topics = cfg.Topics
	}

	if err := o.level.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", o.LogLevel)
	}
	if o.Pace < 0 {
		return fmt.Errorf("invalid pace %s: must not be negative", o.Pace)
	}
	return nil
}
