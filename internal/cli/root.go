package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ershov-z/stageflow/pkg/buildinfo"
	"github.com/ershov-z/stageflow/pkg/observability"
)

// Execute runs the stageflow CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext; scheduler events are forwarded to it through
// the observability hooks.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "stageflow",
		Short:        "StageFlow arranges concert programs around placement conflicts",
		Long: `StageFlow reorders the movable performances of a concert program so
that no two adjacent ones violate hard placement rules, minimizes the
remaining soft conflicts, and separates what cannot be reordered away
with a bounded number of neutral filler items.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			hooks := &logHooks{logger: logger}
			observability.SetSchedulerHooks(hooks)
			observability.SetVariantHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newArrangeCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newSeedsCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
