package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fdrplan/fdplan/hmax"
)

func newHmaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hmax <task-path>",
		Short: "print the h^max heuristic value at the initial state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadCompiled(args[0])
			if err != nil {
				return err
			}

			v := hmax.New(st).Evaluate(st.Init)
			if v == hmax.Inf {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("inf"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}
}
