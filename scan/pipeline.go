package scan

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/fatih/semgroup"

	"github.com/scamintel/scamintel"
	"github.com/scamintel/scamintel/config"
	"github.com/scamintel/scamintel/keywords"
	"github.com/scamintel/scamintel/logging"
)

type Pipeline struct {
	Config config.Config

	// message producer
	Source scamintel.Source

	// message consumer, match producer
	Scanner *Scanner

	// Keywords flags scam intent per message; nil disables it
	Keywords *keywords.Detector

	ignore   map[string]struct{}
	baseline map[string]struct{}

	mu           sync.Mutex
	keywordsSeen map[string]struct{}
	scamMessages atomic.Int64

	totalBytes     atomic.Uint64
	totalMessages  atomic.Uint64
	failedMessages atomic.Uint64
}

func NewPipeline(cfg config.Config, src scamintel.Source, scanner *Scanner) *Pipeline {
	return &Pipeline{
		Config:       cfg,
		Source:       src,
		Scanner:      scanner,
		Keywords:     keywords.New(cfg.Keywords),
		keywordsSeen: make(map[string]struct{}),
	}
}

// SetIgnore sets the fingerprints to skip.
func (p *Pipeline) SetIgnore(ignore map[string]struct{}) {
	p.ignore = ignore
}

// ProcessMessage scans one message and returns its findings in input order.
func (p *Pipeline) ProcessMessage(ctx context.Context, msg scamintel.Message) ([]scamintel.Finding, error) {
	p.totalBytes.Add(uint64(len(msg.Text)))
	p.totalMessages.Add(1)

	matches, err := p.Scanner.ScanMatches(ctx, msg.Text)
	if err != nil {
		return nil, err
	}

	if p.Keywords != nil {
		if found := p.Keywords.Detect(msg.Text); len(found) > 0 {
			p.scamMessages.Add(1)
			p.mu.Lock()
			for _, w := range found {
				p.keywordsSeen[w] = struct{}{}
			}
			p.mu.Unlock()
		}
	}

	var (
		findings []scamintel.Finding
		lines    lineIndex
	)
	for _, match := range matches {
		finding := CreateFinding(msg, match)
		if lines == nil {
			lines = newLineIndex(msg.Text)
		}
		AddLocationToFinding(&finding, msg, match, lines)
		finding.Context = extractContext(msg.Text, match.Start, match.End, p.Config.Scan.MatchContext)

		if p.Config.FindingAllowed(finding) {
			logging.Trace().
				Str("category", finding.Category.Key()).
				Msg("skipping finding: allowlist")
			continue
		}

		if p.Config.Filter != nil {
			keep, err := p.Config.Filter.Keep(finding)
			if err != nil {
				logging.Warn().Err(err).Msg("filter failed, keeping finding")
			} else if !keep {
				continue
			}
		}

		scamintel.AddFingerprint(&finding)
		if _, ok := p.ignore[finding.Fingerprint]; ok {
			continue
		}
		if !IsNew(finding, p.baseline) {
			continue
		}

		if p.Config.Scan.Redact > 0 {
			finding.Redact(p.Config.Scan.Redact)
		}
		findings = append(findings, finding)
	}

	sortFindings(findings)
	return findings, nil
}

// Run processes all messages from the source concurrently and returns the
// findings ordered by resource and position. Messages that exceed the scan
// budget are logged and skipped; any other error stops the run.
func (p *Pipeline) Run(ctx context.Context) ([]scamintel.Finding, error) {
	var (
		mu          sync.Mutex
		retFindings []scamintel.Finding
	)

	concurrency := p.Config.Scan.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sg := semgroup.NewGroup(ctx, int64(concurrency))

	err := p.Source.Messages(ctx, func(msg scamintel.Message, err error) error {
		if err != nil {
			return err
		}

		sg.Go(func() error {
			findings, err := p.ProcessMessage(ctx, msg)
			if errors.Is(err, ErrScanTimeout) || errors.Is(err, ErrInputTooLarge) {
				p.failedMessages.Add(1)
				logging.Warn().Err(err).
					Str("source", msg.Source).
					Str("path", msg.Path).
					Int("line", msg.LineOffset).
					Msg("skipping message")
				return nil
			}
			if err != nil {
				return err
			}

			if len(findings) > 0 {
				mu.Lock()
				retFindings = append(retFindings, findings...)
				mu.Unlock()
			}
			return nil
		})
		return nil
	})
	if err != nil {
		_ = sg.Wait()
		return retFindings, err
	}

	if err := sg.Wait(); err != nil {
		return retFindings, err
	}

	sortFindings(retFindings)
	return retFindings, nil
}

// Intel summarizes a run for downstream triage.
func (p *Pipeline) Intel(findings []scamintel.Finding) scamintel.Intel {
	p.mu.Lock()
	seen := make([]string, 0, len(p.keywordsSeen))
	for w := range p.keywordsSeen {
		seen = append(seen, w)
	}
	p.mu.Unlock()
	slices.Sort(seen)

	return scamintel.Intel{
		Result:       scamintel.ResultFromFindings(findings),
		Keywords:     seen,
		ScamDetected: p.scamMessages.Load() > 0,
	}
}

func (p *Pipeline) TotalBytes() uint64 {
	return p.totalBytes.Load()
}

func (p *Pipeline) TotalMessages() uint64 {
	return p.totalMessages.Load()
}

// FailedMessages counts messages skipped for exceeding the scan budget.
func (p *Pipeline) FailedMessages() uint64 {
	return p.failedMessages.Load()
}
