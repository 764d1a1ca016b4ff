package cmd

import (
	"fmt"

	"github.com/aledsdavies/celrt/eval"
	"github.com/spf13/cobra"
)

var (
	evalActivationPath string
	evalIterationLimit int64
	evalNoShortCircuit bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr.yaml>",
	Short: "Plan and evaluate an expression fixture against an activation",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		e, err := loadExpr(args[0])
		if err != nil {
			return err
		}
		act, err := loadActivation(evalActivationPath)
		if err != nil {
			return err
		}

		opts := optionsFromFlags(evalIterationLimit, !evalNoShortCircuit)
		ev := eval.NewEvaluator(nil)
		p := ev.Plan(e, opts)
		v := ev.Evaluate(p, act, opts)

		if v.IsError() {
			return fmt.Errorf("evaluation error: %s", v.AsError().Message)
		}
		fmt.Println(v.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&evalActivationPath, "activation", "", "activation fixture YAML (omit for an empty activation)")
	evalCmd.Flags().Int64Var(&evalIterationLimit, "iteration-limit", 0, "comprehension iteration budget (0 = unbounded)")
	evalCmd.Flags().BoolVar(&evalNoShortCircuit, "no-short-circuit", false, "disable &&/||/?: short-circuiting")
}
