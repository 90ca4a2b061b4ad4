package main

import (
	"github.com/spf13/cobra"

	"github.com/XiaoConstantine/qabuild-go/pkg/builder"
)

var trainCmd = &cobra.Command{
	Use:   "train <INFILE>",
	Short: "Derive the clean, append and twoway training splits",
	Long: `Reads a SQuAD-format corpus and writes three training splits next to it:
<stem>-clean.json, <stem>-append.json and <stem>-twoway.json.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := builder.New(cfg)
		if err != nil {
			return err
		}
		return b.BuildTraining(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)
}
