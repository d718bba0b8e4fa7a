package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scamintel/scamintel/report"
	"github.com/scamintel/scamintel/sources"
)

// demoMessage is scanned when no text is given.
const demoMessage = "Pay me at scammer@sbi or call +91-9876543210. Visit http://evil.com"

func init() {
	rootCmd.AddCommand(textCmd)
	textCmd.Flags().String("sender", "", "sender of the messages, kept as finding metadata")
}

var textCmd = &cobra.Command{
	Use:   "text [flags] [message...]",
	Short: "extract scam intel from messages given as arguments",
	Long: `Extract scam intel from messages given as arguments. Each argument is one
message. Unless a report path or format is set the bare result is written to
stdout, e.g. {"upiIds": ["scammer@sbi"]}. Without arguments a demo message is
scanned.`,
	Run: runText,
}

func runText(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		args = []string{demoMessage}
	}

	flags := cmd.Flags()
	if !flags.Changed("report-path") {
		_ = flags.Set("report-path", "-")
	}
	if !flags.Changed("report-format") && !flags.Changed("report-template") {
		_ = flags.Set("report-format", report.FormatResult)
	}
	if !flags.Changed("exit-code") {
		_ = flags.Set("exit-code", "0")
	}

	cfg := Config(cmd, ".")
	src := &sources.Text{
		Values: args,
		Sender: mustGetStringFlag(cmd, "sender"),
	}

	runPipeline(cmd, cfg, src, ".")
}
