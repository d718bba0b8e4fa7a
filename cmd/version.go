package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scamintel/scamintel/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "display scamintel version",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, _ []string) {
	fmt.Fprintln(cmd.OutOrStdout(), version.Version)
}
