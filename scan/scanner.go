package scan

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/scamintel/scamintel"
	"github.com/scamintel/scamintel/extract"
)

var (
	// ErrScanTimeout is returned when a message is not scanned within the
	// configured budget. No partial result is returned with it.
	ErrScanTimeout = errors.New("scan timed out")

	// ErrInputTooLarge is returned for messages over the configured size.
	ErrInputTooLarge = errors.New("input too large")
)

// extractions caps the extractor runs in flight across all scanners,
// including the ones left behind by a timed out scan.
var extractions = semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))

// Scanner runs the extractor under a caller-side budget.
type Scanner struct {
	Extractor *extract.Extractor

	// MaxInputBytes rejects larger inputs before scanning, 0 disables
	MaxInputBytes int

	// Timeout bounds a single scan, 0 disables
	Timeout time.Duration

	inflight *semaphore.Weighted
}

func NewScanner(e *extract.Extractor, maxInputBytes int, timeout time.Duration) *Scanner {
	return &Scanner{
		Extractor:     e,
		MaxInputBytes: maxInputBytes,
		Timeout:       timeout,
		inflight:      extractions,
	}
}

// Scan extracts the categorized matches from text.
func (s *Scanner) Scan(ctx context.Context, text string) (scamintel.Result, error) {
	matches, err := s.ScanMatches(ctx, text)
	if err != nil {
		return nil, err
	}
	return scamintel.ResultFromMatches(matches), nil
}

// ScanMatches extracts every match from text with its offsets. When the
// budget runs out the matches found so far are discarded.
func (s *Scanner) ScanMatches(ctx context.Context, text string) ([]scamintel.Match, error) {
	if s.MaxInputBytes > 0 && len(text) > s.MaxInputBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrInputTooLarge, len(text), s.MaxInputBytes)
	}
	if err := ctx.Err(); err != nil {
		return nil, budgetErr(err)
	}
	sem := s.inflight
	if sem == nil {
		sem = extractions
	}
	if s.Timeout <= 0 && ctx.Done() == nil {
		_ = sem.Acquire(ctx, 1)
		defer sem.Release(1)
		return s.Extractor.FindAll(text), nil
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	// Waiting for a slot counts against the budget.
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, budgetErr(err)
	}

	// The extractor cannot be interrupted mid-scan. On timeout the goroutine
	// runs to completion in the background, keeps its slot until then and
	// its result is dropped.
	done := make(chan []scamintel.Match, 1)
	go func() {
		defer sem.Release(1)
		done <- s.Extractor.FindAll(text)
	}()

	select {
	case matches := <-done:
		return matches, nil
	case <-ctx.Done():
		return nil, budgetErr(ctx.Err())
	}
}

// budgetErr reports a passed deadline as ErrScanTimeout.
func budgetErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrScanTimeout, err)
	}
	return err
}
