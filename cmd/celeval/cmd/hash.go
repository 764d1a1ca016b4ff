package cmd

import (
	"fmt"

	"github.com/aledsdavies/celrt/internal/planner"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash <expr.yaml>",
	Short: "Print the plan hash of an expression fixture's flattened program",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		e, err := loadExpr(args[0])
		if err != nil {
			return err
		}
		p := planner.Plan(e, optionsFromFlags(0, true), nil)
		h, err := planner.Hash(p)
		if err != nil {
			return fmt.Errorf("hashing plan: %w", err)
		}
		fmt.Printf("%x\n", h)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
