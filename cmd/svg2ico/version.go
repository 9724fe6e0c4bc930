package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of svg2ico",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "svg2ico %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
