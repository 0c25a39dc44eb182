// Command fdplan finds a cost-optimal operator sequence for a
// finite-domain (FDR) planning task, or reports the h^max/LM-cut
// heuristic value of its initial state.
//
// Usage:
//
//	fdplan plan <task-path> <heuristic>   # heuristic is hmax or lmcut
//	fdplan hmax <task-path>
//	fdplan lmcut <task-path>
//	fdplan version
package main

import (
	"fmt"
	"os"

	"github.com/fdrplan/fdplan/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fdplan: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func run() error {
	return cli.NewRootCommand().Execute()
}
