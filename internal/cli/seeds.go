package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ershov-z/stageflow/pkg/schedule"
)

// newSeedsCmd creates the seeds command: print fresh seed values for
// manual re-runs with --seed.
func newSeedsCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seeds",
		Short: "Print fresh seed values",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			for _, s := range schedule.GenerateSeeds(count) {
				fmt.Println(s)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", schedule.DefaultVariants, "number of seeds")
	return cmd
}
