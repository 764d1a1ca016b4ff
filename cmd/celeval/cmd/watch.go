package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aledsdavies/celrt/eval"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var (
	watchActivationPath string
	watchIterationLimit int64
)

var watchCmd = &cobra.Command{
	Use:   "watch <expr.yaml>",
	Short: "Re-evaluate an expression fixture every time it or its activation changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		exprPath := args[0]

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("starting file watcher: %w", err)
		}
		defer watcher.Close()

		if err := watcher.Add(exprPath); err != nil {
			return fmt.Errorf("watching %s: %w", exprPath, err)
		}
		if watchActivationPath != "" {
			if err := watcher.Add(watchActivationPath); err != nil {
				return fmt.Errorf("watching %s: %w", watchActivationPath, err)
			}
		}

		evaluateOnce(exprPath)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					evaluateOnce(exprPath)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
			case <-sigCh:
				return nil
			}
		}
	},
}

func evaluateOnce(exprPath string) {
	e, err := loadExpr(exprPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	act, err := loadActivation(watchActivationPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	opts := optionsFromFlags(watchIterationLimit, true)
	ev := eval.NewEvaluator(nil)
	p := ev.Plan(e, opts)
	v := ev.Evaluate(p, act, opts)
	fmt.Println(v.String())
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchActivationPath, "activation", "", "activation fixture YAML (omit for an empty activation)")
	watchCmd.Flags().Int64Var(&watchIterationLimit, "iteration-limit", 0, "comprehension iteration budget (0 = unbounded)")
}
