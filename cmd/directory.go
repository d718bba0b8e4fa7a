package cmd

import (
	"github.com/fatih/semgroup"
	"github.com/spf13/cobra"

	"github.com/scamintel/scamintel/sources/files"
)

func init() {
	rootCmd.AddCommand(directoryCmd)
	directoryCmd.Flags().Bool("follow-symlinks", false, "scan files that are symlinks to other files")
	directoryCmd.Flags().Bool("lines", false, "treat every line of a file as its own message")
	directoryCmd.Flags().Int("max-target-megabytes", 0, "files larger than this will be skipped")
}

var directoryCmd = &cobra.Command{
	Use:     "dir [flags] [path]",
	Aliases: []string{"file", "directory"},
	Short:   "extract scam intel from directories or files",
	Args:    cobra.MaximumNArgs(1),
	Run:     runDirectory,
}

func runDirectory(cmd *cobra.Command, args []string) {
	source := "."
	if len(args) == 1 && args[0] != "" {
		source = args[0]
	}

	cfg := Config(cmd, source)

	src := &files.Files{
		Config:          &cfg,
		FollowSymlinks:  mustGetBoolFlag(cmd, "follow-symlinks"),
		MaxFileSize:     mustGetIntFlag(cmd, "max-target-megabytes") * 1_000_000,
		Path:            source,
		Sema:            semgroup.NewGroup(cmd.Context(), 10),
		MaxArchiveDepth: mustGetIntFlag(cmd, "max-archive-depth"),
		Lines:           mustGetBoolFlag(cmd, "lines"),
	}

	runPipeline(cmd, cfg, src, source)
}
