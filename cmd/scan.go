package cmd

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/scamintel/scamintel"
	"github.com/scamintel/scamintel/config"
	"github.com/scamintel/scamintel/extract"
	"github.com/scamintel/scamintel/logging"
	"github.com/scamintel/scamintel/report"
	"github.com/scamintel/scamintel/scan"
)

// runPipeline scans every message of src and reports the findings. It exits
// with --exit-code when anything was found.
func runPipeline(cmd *cobra.Command, cfg config.Config, src scamintel.Source, sourcePath string) {
	reportPath := mustGetStringFlag(cmd, "report-path")
	reporter, err := report.New(mustGetStringFlag(cmd, "report-format"), mustGetStringFlag(cmd, "report-template"))
	if err != nil {
		logging.Fatal().Err(err).Msg("could not create reporter")
	}

	extractor, err := extract.New()
	if err != nil {
		logging.Fatal().Err(err).Msg("could not compile extraction rules")
	}
	scanner := scan.NewScanner(extractor, cfg.Scan.MaxInputBytes, cfg.Scan.Timeout)

	p := scan.NewPipeline(cfg, src, scanner)
	p.SetIgnore(scan.LoadIgnoreFiles(mustGetStringFlag(cmd, "ignore-path"), sourcePath))
	if err := p.AddBaseline(mustGetStringFlag(cmd, "baseline-path")); err != nil {
		logging.Error().Err(err).Msg("could not load baseline, all findings will be reported")
	}

	start := time.Now()
	findings, err := p.Run(cmd.Context())

	if mustGetBoolFlag(cmd, "verbose") {
		noColor := mustGetBoolFlag(cmd, "no-color") ||
			!(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
		for _, f := range findings {
			scan.PrintFinding(os.Stderr, f, noColor)
		}
	}

	if ir, ok := reporter.(*report.IntelReporter); ok {
		intel := p.Intel(findings)
		ir.Keywords = intel.Keywords
		ir.ScamDetected = intel.ScamDetected
	}

	findingSummary(cmd, reporter, reportPath, findings, start, err, p)
}

func findingSummary(cmd *cobra.Command, reporter scamintel.Reporter, reportPath string, findings []scamintel.Finding, start time.Time, err error, p *scan.Pipeline) {
	logging.Info().Msgf("%d messages scanned (%s) in %s",
		p.TotalMessages(), bytesConvert(p.TotalBytes()), FormatDuration(time.Since(start)))
	if failed := p.FailedMessages(); failed > 0 {
		logging.Warn().Msgf("%d messages skipped: over the size or time budget", failed)
	}

	if err != nil {
		logging.Error().Err(err).Msg("scan interrupted, reporting partial results")
	}

	if len(findings) > 0 {
		logging.Warn().Msgf("scam intel found: %d", len(findings))
	} else {
		logging.Info().Msg("no scam intel found")
	}

	if reportPath != "" {
		if werr := writeReport(cmd.OutOrStdout(), reporter, reportPath, findings); werr != nil {
			logging.Fatal().Err(werr).Str("path", reportPath).Msg("could not write report")
		}
	}

	if err != nil {
		os.Exit(1)
	}
	if code := mustGetIntFlag(cmd, "exit-code"); code != 0 && len(findings) > 0 {
		os.Exit(code)
	}
}

// writeReport writes to reportPath, or to stdout when it is "-".
func writeReport(stdout io.Writer, reporter scamintel.Reporter, reportPath string, findings []scamintel.Finding) error {
	var w io.WriteCloser = nopCloser{stdout}
	if reportPath != "-" {
		f, err := os.Create(reportPath)
		if err != nil {
			return err
		}
		w = f
	}

	if err := reporter.Write(w, findings); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
