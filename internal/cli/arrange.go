package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/ershov-z/stageflow/pkg/io"
	"github.com/ershov-z/stageflow/pkg/program"
	"github.com/ershov-z/stageflow/pkg/schedule"
)

// arrangeOpts holds the command-line flags for the arrange command.
type arrangeOpts struct {
	config   string // optional stageflow.toml path
	variants int    // requested variant count (overrides config)
	seed     int64  // base seed for reproducible runs (0 = time-based)
	budget   int    // filler budget override (-1 = from config)
	output   string // output file path (no export if empty)
}

// newArrangeCmd creates the arrange command: import a program, generate
// deduplicated arrangement variants, print a summary and optionally
// export the set as JSON.
func newArrangeCmd() *cobra.Command {
	var opts arrangeOpts

	cmd := &cobra.Command{
		Use:   "arrange <program.json>",
		Short: "Build conflict-free arrangements of a program",
		Long: `Arrange reads a parsed program (an ordered JSON item list), reorders
its movable performances around placement conflicts, inserts fillers
where reordering alone is not enough, and prints one summary line per
generated variant.

An infeasible program is a result, not an error: the command reports
the minimum number of fillers the program would need and the budget it
actually has, and exits zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runArrange(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file")
	cmd.Flags().IntVarP(&opts.variants, "variants", "n", 0, "number of variants to generate (default from config)")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "base seed for reproducible runs (default time-based)")
	cmd.Flags().IntVarP(&opts.budget, "budget", "b", -1, "total filler budget, pre-existing fillers included (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the arrangement set to this JSON file")

	return cmd
}

func runArrange(ctx context.Context, opts *arrangeOpts, path string) error {
	logger := loggerFromContext(ctx)

	fileCfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	cfg, err := fileCfg.Schedule.Normalize()
	if err != nil {
		return err
	}
	if opts.variants > 0 {
		cfg.Variants = opts.variants
	}
	switch {
	case opts.budget > 0:
		cfg.MaxFillerBudget = opts.budget
	case opts.budget == 0:
		// Zero would read as "unset"; the negative form survives
		// re-normalization as a zero budget.
		cfg.MaxFillerBudget = -1
	}

	items, err := pkgio.ImportProgram(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d items: %d performances, %d fillers",
		len(items), len(program.Performances(items)), program.CountFillers(items))

	var seeds []int64
	if opts.seed != 0 {
		seeds = schedule.DeriveSeeds(opts.seed, cfg.Variants)
	}

	prog := newProgress(logger)
	spin := newSpinner(ctx, "Searching orderings...")
	spin.Start()
	arrangements, err := schedule.GenerateVariants(ctx, items, seeds, cfg)
	spin.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d arrangement(s)", len(arrangements)))

	printArrangements(arrangements)

	out := opts.output
	if out == "" {
		out = fileCfg.Output.Path
	}
	if out != "" {
		set := pkgio.NewArrangementSet(len(items), arrangements)
		if err := pkgio.ExportJSON(set, out); err != nil {
			return err
		}
		printSuccess("Wrote %s (run %s)", out, set.RunID)
	}
	return nil
}

// printArrangements renders the per-variant summary lines.
func printArrangements(arrangements []program.Arrangement) {
	for i, ar := range arrangements {
		switch ar.Status {
		case program.StatusInfeasible:
			printError("Variant %d (seed %s): infeasible, needs %s filler(s) but budget has %s",
				i+1,
				StyleNumber.Render(fmt.Sprint(ar.Seed)),
				StyleNumber.Render(fmt.Sprint(ar.Diagnostics.MinWeakNeeded)),
				StyleNumber.Render(fmt.Sprint(ar.Diagnostics.AvailableFillerBudget)))
			if ar.StrongConflicts > 0 {
				printDetail("%d strong conflict(s) no ordering can resolve", ar.StrongConflicts)
			}
		case program.StatusNormal:
			printInfo("Variant %d: program too short to reorder (%d conflict(s))",
				i+1, ar.WeakConflicts+ar.StrongConflicts)
		default:
			printSuccess("Variant %d (seed %s): %s item(s), %s filler(s) inserted, %s weak conflict(s) left",
				i+1,
				StyleNumber.Render(fmt.Sprint(ar.Seed)),
				StyleNumber.Render(fmt.Sprint(len(ar.Items))),
				StyleNumber.Render(fmt.Sprint(ar.FillersInserted)),
				StyleNumber.Render(fmt.Sprint(ar.WeakConflicts)))
		}
	}
}
