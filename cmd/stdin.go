package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scamintel/scamintel/sources/file"
)

func init() {
	rootCmd.AddCommand(stdInCmd)
	stdInCmd.Flags().Bool("lines", false, "treat every line of input as its own message")
}

var stdInCmd = &cobra.Command{
	Use:   "stdin",
	Short: "extract scam intel from stdin",
	Run:   runStdIn,
}

func runStdIn(cmd *cobra.Command, _ []string) {
	cfg := Config(cmd, ".")

	src := &file.File{
		Content:         os.Stdin,
		Source:          "stdin",
		Lines:           mustGetBoolFlag(cmd, "lines"),
		MaxArchiveDepth: mustGetIntFlag(cmd, "max-archive-depth"),
	}

	runPipeline(cmd, cfg, src, ".")
}
