// Command celeval drives this engine's planner, evaluator, tracer, and
// plan-hasher from the command line, against checked-expression and
// activation fixtures on disk (spec §6.6's checked-AST form, stood in
// for by the YAML shapes internal/fixture loads).
package main

import (
	"fmt"
	"os"

	"github.com/aledsdavies/celrt/cmd/celeval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
