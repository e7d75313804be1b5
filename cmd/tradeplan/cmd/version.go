package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the tradeplan CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tradeplan version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "Position sizing and trade journal")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
