package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "celeval",
	Short: "Plan, evaluate, trace, and hash CEL expression fixtures",
	Long: `celeval drives the plan/evaluate/trace pipeline of this
engine against on-disk expression fixtures: a YAML tree standing in
for a checked AST, and a YAML activation fixture naming the variable
bindings to evaluate it against.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
