// Package cli wires the fdplan command tree: plan, hmax, lmcut, and
// version subcommands over a cobra root, in the style of cue-lang-cue's
// command-factory functions combined with dasm's single top-level
// run() error wrapper for exit-code discipline (see cmd/fdplan).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/fdrplan/fdplan/fdr"
	"github.com/fdrplan/fdplan/heuristic"
	"github.com/fdrplan/fdplan/hmax"
	"github.com/fdrplan/fdplan/lmcut"
	"github.com/fdrplan/fdplan/strips"
)

// version is set at build time via -ldflags, matching cue-lang-cue's
// version.go convention; "dev" is the fallback for local builds.
var version = "dev"

// NewRootCommand builds the fdplan command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fdplan",
		Short:         "a cost-optimal classical planner over finite-domain (FDR) tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			commonlog.Configure(verbosity, nil)
		},
	}

	root.PersistentFlags().CountP("verbose", "v", "increase log verbosity (repeatable)")

	root.AddCommand(newPlanCmd())
	root.AddCommand(newHmaxCmd())
	root.AddCommand(newLMCutCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// loadCompiled loads the task file at path and compiles it to STRIPS,
// wrapping any error with ExitInvalidInput so the caller's exit code is
// correct without needing to inspect the error's shape.
func loadCompiled(path string) (*fdr.Task, *strips.Task, error) {
	ft, err := fdr.Load(path)
	if err != nil {
		return nil, nil, withExitCode(err, ExitInvalidInput)
	}

	return ft, strips.Compile(ft), nil
}

// heuristicByName resolves the `hmax`/`lmcut` CLI argument to a
// heuristic.Heuristic over st, or a usage error for anything else.
func heuristicByName(name string, st *strips.Task) (heuristic.Heuristic, error) {
	switch name {
	case "hmax":
		return hmax.New(st), nil
	case "lmcut":
		return lmcut.New(st), nil
	default:
		return nil, withExitCode(fmt.Errorf("unknown heuristic %q: want hmax or lmcut", name), ExitUsageError)
	}
}
