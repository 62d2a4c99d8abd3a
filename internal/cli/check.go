package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ershov-z/stageflow/pkg/errors"
	pkgio "github.com/ershov-z/stageflow/pkg/io"
	"github.com/ershov-z/stageflow/pkg/schedule"
)

// newCheckCmd creates the check command: validate a finished item
// sequence against the placement rules.
func newCheckCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check <arrangement.json>",
		Short: "Validate a finished arrangement against the placement rules",
		Long: `Check re-validates an item sequence: filler budget, strong-conflict
adjacency, weak conflicts without a separating filler, and the relative
order of fixed items. Useful for arrangements edited by hand after
export.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCheck(c.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	return cmd
}

func runCheck(ctx context.Context, configPath, path string) error {
	fileCfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	items, err := pkgio.ImportProgram(path)
	if err != nil {
		return err
	}

	violations := schedule.Validate(items, fileCfg.Schedule)
	if len(violations) == 0 {
		printSuccess("Arrangement is valid: %d item(s)", len(items))
		return nil
	}

	for _, v := range violations {
		printWarning("%s", v)
	}
	return errors.New(errors.ErrCodeInvalidInput, "arrangement has %d violation(s)", len(violations))
}
