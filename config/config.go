package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/scamintel/scamintel/keywords"
	"github.com/scamintel/scamintel/regexp"
)

//go:embed scamintel.toml
var DefaultConfig string

// RawConfig is the decoded form of a TOML config before translation.
type RawConfig struct {
	MinVersion string `koanf:"min_version"`
	Scan       struct {
		Engine        string        `koanf:"engine"`
		MaxInputBytes int           `koanf:"max_input_bytes"`
		Timeout       time.Duration `koanf:"timeout"`
		Concurrency   int           `koanf:"concurrency"`
		MatchContext  int           `koanf:"match_context"`
		Redact        uint          `koanf:"redact"`
	} `koanf:"scan"`
	Keywords struct {
		Words []string `koanf:"words"`
	} `koanf:"keywords"`
	Filter struct {
		Expression string `koanf:"expression"`
	} `koanf:"filter"`
	Allowlists []struct {
		Description string   `koanf:"description"`
		Condition   string   `koanf:"condition"`
		Categories  []string `koanf:"categories"`
		Regexes     []string `koanf:"regexes"`
		StopWords   []string `koanf:"stop_words"`
		Paths       []string `koanf:"paths"`
	} `koanf:"allowlists"`
}

// ScanConfig bounds the work done per message.
type ScanConfig struct {
	Engine        string
	MaxInputBytes int
	Timeout       time.Duration
	Concurrency   int
	MatchContext  int
	Redact        uint
}

// Config is the validated runtime configuration.
type Config struct {
	// Path is the config file the values came from, empty for defaults
	Path       string
	MinVersion string
	Scan       ScanConfig
	Keywords   []string
	Filter     *Filter
	Allowlists []*Allowlist
}

// Translate validates the raw values and compiles allowlists and the filter.
func (vc *RawConfig) Translate() (Config, error) {
	cfg := Config{
		MinVersion: vc.MinVersion,
		Scan: ScanConfig{
			Engine:        vc.Scan.Engine,
			MaxInputBytes: vc.Scan.MaxInputBytes,
			Timeout:       vc.Scan.Timeout,
			Concurrency:   vc.Scan.Concurrency,
			MatchContext:  vc.Scan.MatchContext,
			Redact:        vc.Scan.Redact,
		},
		Keywords: vc.Keywords.Words,
	}
	if cfg.Scan.Engine == "" {
		cfg.Scan.Engine = regexp.EngineRE2
	}
	if cfg.Scan.Concurrency == 0 {
		cfg.Scan.Concurrency = 8
	}
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = keywords.DefaultWords
	}
	if err := cfg.Scan.Validate(); err != nil {
		return Config{}, err
	}

	if vc.Filter.Expression != "" {
		f, err := NewFilter(vc.Filter.Expression)
		if err != nil {
			return Config{}, err
		}
		cfg.Filter = f
	}

	for i, a := range vc.Allowlists {
		allowlist, err := NewAllowlist(a.Description, a.Condition, a.Categories, a.Regexes, a.StopWords, a.Paths)
		if err != nil {
			return Config{}, fmt.Errorf("allowlist %d: %w", i, err)
		}
		cfg.Allowlists = append(cfg.Allowlists, allowlist)
	}
	return cfg, nil
}

// Validate checks the scan budget values.
func (s ScanConfig) Validate() error {
	var errs []error
	if !regexp.ValidEngine(s.Engine) {
		errs = append(errs, fmt.Errorf("scan.engine: unknown engine %q", s.Engine))
	}
	if s.MaxInputBytes < 0 {
		errs = append(errs, errors.New("scan.max_input_bytes: must not be negative"))
	}
	if s.Timeout < 0 {
		errs = append(errs, errors.New("scan.timeout: must not be negative"))
	}
	if s.Concurrency < 1 {
		errs = append(errs, errors.New("scan.concurrency: must be at least 1"))
	}
	if s.MatchContext < 0 {
		errs = append(errs, errors.New("scan.match_context: must not be negative"))
	}
	if s.Redact > 100 {
		errs = append(errs, errors.New("scan.redact: must be between 0 and 100"))
	}
	return errors.Join(errs...)
}

// CheckVersion returns an error when the config asks for a newer version
// than current.
func (c Config) CheckVersion(current string) error {
	if c.MinVersion == "" {
		return nil
	}
	want, err := goversion.NewVersion(c.MinVersion)
	if err != nil {
		return fmt.Errorf("min_version %q: %w", c.MinVersion, err)
	}
	have, err := goversion.NewVersion(current)
	if err != nil {
		return fmt.Errorf("current version %q: %w", current, err)
	}
	if have.LessThan(want) {
		return fmt.Errorf("config requires %s or newer, running %s", want, have)
	}
	return nil
}
