package main

import (
	"github.com/spf13/cobra"

	"github.com/XiaoConstantine/qabuild-go/pkg/builder"
)

var evalCmd = &cobra.Command{
	Use:   "eval <INFILE> <IDFILE>",
	Short: "Report the inputs of an evaluation run (scoring not implemented)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := builder.New(cfg)
		if err != nil {
			return err
		}
		return b.DescribeEval(cmd.Context(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
