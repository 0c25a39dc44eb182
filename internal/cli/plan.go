package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fdrplan/fdplan/astar"
)

func newPlanCmd() *cobra.Command {
	var budget time.Duration

	cmd := &cobra.Command{
		Use:   "plan <task-path> <heuristic>",
		Short: "find a cost-optimal plan, where <heuristic> is hmax or lmcut",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, args[0], args[1], budget)
		},
	}

	cmd.Flags().DurationVar(&budget, "budget", 0, "wall-clock search budget (e.g. 30s); 0 means unlimited")

	return cmd
}

func runPlan(cmd *cobra.Command, path, heuristicName string, budget time.Duration) error {
	ft, st, err := loadCompiled(path)
	if err != nil {
		return err
	}

	h, err := heuristicByName(heuristicName, st)
	if err != nil {
		return err
	}

	var opts []astar.Option
	if budget > 0 {
		opts = append(opts, astar.WithBudget(budget))
	}

	plan, err := astar.Search(ft, st, h, opts...)
	if err != nil {
		if errors.Is(err, astar.ErrUnsolvable) {
			return withExitCode(err, ExitUnsolvable)
		}
		if errors.Is(err, astar.ErrBudgetExceeded) {
			return withExitCode(err, ExitBudgetExceeded)
		}

		return withExitCode(err, ExitInternal)
	}

	out := cmd.OutOrStdout()
	for _, op := range plan.Operators {
		fmt.Fprintln(out, op)
	}
	fmt.Fprintln(out, color.GreenString("Plan cost: %d", plan.Cost))

	return nil
}
