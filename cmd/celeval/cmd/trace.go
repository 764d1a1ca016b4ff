package cmd

import (
	"fmt"

	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/eval"
	"github.com/aledsdavies/celrt/value"
	"github.com/spf13/cobra"
)

var (
	traceActivationPath string
	traceIterationLimit int64
)

var traceCmd = &cobra.Command{
	Use:   "trace <expr.yaml>",
	Short: "Evaluate an expression fixture, printing every value produced along the way",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		e, err := loadExpr(args[0])
		if err != nil {
			return err
		}
		act, err := loadActivation(traceActivationPath)
		if err != nil {
			return err
		}

		opts := optionsFromFlags(traceIterationLimit, true)
		ev := eval.NewEvaluator(nil)
		p := ev.Plan(e, opts)

		listener := eval.TraceListenerFunc(func(id ast.ID, v value.Value) {
			fmt.Printf("id=%-4d %s\n", id, v.String())
		})
		v := ev.Trace(p, act, opts, listener)

		fmt.Println("---")
		fmt.Println(v.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringVar(&traceActivationPath, "activation", "", "activation fixture YAML (omit for an empty activation)")
	traceCmd.Flags().Int64Var(&traceIterationLimit, "iteration-limit", 0, "comprehension iteration budget (0 = unbounded)")
}
