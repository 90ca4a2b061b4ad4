package main

import (
	"github.com/spf13/cobra"

	"github.com/XiaoConstantine/qabuild-go/pkg/builder"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge <INFILE>",
	Short: "Derive the adversarial-only challenge split",
	Long: `Reads a SQuAD-format corpus and writes every adversarial variant, keyed by
its full id, to <stem>Challenge.json.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := builder.New(cfg)
		if err != nil {
			return err
		}
		return b.BuildChallenge(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(challengeCmd)
}
