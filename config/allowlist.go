package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/scamintel/scamintel"
	"github.com/scamintel/scamintel/regexp"
)

type AllowlistMatchCondition int

const (
	AllowlistMatchOr AllowlistMatchCondition = iota
	AllowlistMatchAnd
)

func (a AllowlistMatchCondition) String() string {
	return [...]string{
		"OR",
		"AND",
	}[a]
}

// Allowlist drops findings whose value or message path is known to be benign,
// such as the operator's own payment handle or an internal help-desk number.
type Allowlist struct {
	// Short human readable description of the allowlist.
	Description string

	// MatchCondition determines whether all criteria must match. Defaults to "OR".
	MatchCondition AllowlistMatchCondition

	// Categories limits the allowlist to findings of these categories. Empty
	// means every category.
	Categories []scamintel.Category

	// Regexes are tested against the matched value.
	Regexes []*regexp.Regexp

	// StopWords are case-insensitive substrings of the matched value.
	StopWords []string

	// Paths are tested against the path of the message the finding came from.
	Paths []*regexp.Regexp
}

// NewAllowlist compiles an allowlist from its config values.
func NewAllowlist(description, condition string, categories, regexes, stopWords, paths []string) (*Allowlist, error) {
	a := &Allowlist{Description: description}

	switch strings.ToUpper(condition) {
	case "", "OR":
		a.MatchCondition = AllowlistMatchOr
	case "AND":
		a.MatchCondition = AllowlistMatchAnd
	default:
		return nil, fmt.Errorf("unknown match condition %q", condition)
	}

	for _, name := range categories {
		c, ok := scamintel.CategoryFromKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		a.Categories = append(a.Categories, c)
	}
	for _, pattern := range regexes {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		a.Regexes = append(a.Regexes, re)
	}
	for _, pattern := range paths {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		a.Paths = append(a.Paths, re)
	}
	for _, w := range stopWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			a.StopWords = append(a.StopWords, w)
		}
	}

	if len(a.Regexes) == 0 && len(a.StopWords) == 0 && len(a.Paths) == 0 {
		return nil, errors.New("allowlist must contain at least one regex, stop word or path")
	}
	return a, nil
}

// FindingAllowed returns true if the finding should be dropped.
func (a *Allowlist) FindingAllowed(f scamintel.Finding) bool {
	if len(a.Categories) > 0 && !slices.Contains(a.Categories, f.Category) {
		return false
	}

	var results []bool
	if len(a.Regexes) > 0 {
		results = append(results, a.RegexAllowed(f.Value))
	}
	if len(a.StopWords) > 0 {
		results = append(results, a.ContainsStopWord(f.Value))
	}
	if len(a.Paths) > 0 {
		results = append(results, a.PathAllowed(f.Path))
	}

	if a.MatchCondition == AllowlistMatchAnd {
		return !slices.Contains(results, false)
	}
	return slices.Contains(results, true)
}

// RegexAllowed returns true if the value matches any allowlist regex.
func (a *Allowlist) RegexAllowed(value string) bool {
	for _, re := range a.Regexes {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

// ContainsStopWord returns true if the value contains a stop word.
func (a *Allowlist) ContainsStopWord(value string) bool {
	value = strings.ToLower(value)
	for _, w := range a.StopWords {
		if strings.Contains(value, w) {
			return true
		}
	}
	return false
}

// PathAllowed returns true if path matches any allowlist path pattern.
func (a *Allowlist) PathAllowed(path string) bool {
	if path == "" {
		return false
	}
	for _, re := range a.Paths {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// FindingAllowed reports whether any allowlist in cfg drops f.
func (c *Config) FindingAllowed(f scamintel.Finding) bool {
	for _, a := range c.Allowlists {
		if a.FindingAllowed(f) {
			return true
		}
	}
	return false
}
