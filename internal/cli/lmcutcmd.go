package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fdrplan/fdplan/hmax"
	"github.com/fdrplan/fdplan/lmcut"
)

func newLMCutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lmcut <task-path>",
		Short: "print the LM-cut heuristic value at the initial state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadCompiled(args[0])
			if err != nil {
				return err
			}

			v := lmcut.New(st).Evaluate(st.Init)
			if v == hmax.Inf {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("inf"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}
}
