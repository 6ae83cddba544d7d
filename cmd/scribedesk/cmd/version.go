package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ScribeDesk version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("scribedesk " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
