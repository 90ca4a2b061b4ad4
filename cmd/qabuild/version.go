package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the qabuild version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("qabuild %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
