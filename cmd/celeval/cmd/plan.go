package cmd

import (
	"fmt"

	"github.com/aledsdavies/celrt/internal/planner"
	"github.com/spf13/cobra"
)

var planIterationLimit int64

var planCmd = &cobra.Command{
	Use:   "plan <expr.yaml>",
	Short: "Compile an expression fixture and print its flattened program size",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		e, err := loadExpr(args[0])
		if err != nil {
			return err
		}
		opts := optionsFromFlags(planIterationLimit, true)
		p := planner.Plan(e, opts, nil)

		h, err := planner.Hash(p)
		if err != nil {
			return fmt.Errorf("hashing plan: %w", err)
		}

		fmt.Printf("steps:      %d\n", len(p.Steps))
		fmt.Printf("slot count: %d\n", p.SlotCount)
		fmt.Printf("plan hash:  %x\n", h)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().Int64Var(&planIterationLimit, "iteration-limit", 0, "comprehension iteration budget (0 = unbounded)")
}
