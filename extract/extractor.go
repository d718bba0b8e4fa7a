// Package extract pulls payment handles, phone numbers and suspicious links
// out of free-form text.
//
// Extraction is a recall-oriented pre-filter: it flags candidate strings by
// shape only and never validates them. Matching uses RE2 semantics, so the
// scan is linear in the length of the input even for attacker-authored text.
package extract

import (
	"fmt"
	"strings"
	"sync"

	"github.com/scamintel/scamintel"
	"github.com/scamintel/scamintel/regexp"
)

type rule struct {
	category scamintel.Category
	re       *regexp.Regexp
}

// Extractor holds the compiled rules. It is immutable once built and safe for
// concurrent use.
type Extractor struct {
	rules []rule
}

// New compiles the built-in rules with the active regex engine.
func New() (*Extractor, error) {
	e := &Extractor{}
	for _, c := range scamintel.Categories() {
		re, err := regexp.Compile(Pattern(c))
		if err != nil {
			return nil, fmt.Errorf("compile %s rule: %w", c, err)
		}
		e.rules = append(e.rules, rule{category: c, re: re})
	}
	return e, nil
}

// MustNew is like New but panics if a built-in rule does not compile.
func MustNew() *Extractor {
	e, err := New()
	if err != nil {
		panic(err)
	}
	return e
}

// FindAll returns every match in text with its byte offsets. Matches are
// grouped by category in category order, and ordered by start offset within
// each group. Values are copied out of text.
func (e *Extractor) FindAll(text string) []scamintel.Match {
	var matches []scamintel.Match
	if text == "" {
		return matches
	}
	for _, r := range e.rules {
		for _, loc := range r.re.FindAllStringIndex(text, -1) {
			matches = append(matches, scamintel.Match{
				Category: r.category,
				Start:    loc[0],
				End:      loc[1],
				Value:    strings.Clone(text[loc[0]:loc[1]]),
			})
		}
	}
	return matches
}

// Extract scans text and returns the matches per category key. Keys with no
// matches are omitted; an empty text yields an empty result.
func (e *Extractor) Extract(text string) scamintel.Result {
	return scamintel.ResultFromMatches(e.FindAll(text))
}

var defaultExtractor = sync.OnceValue(MustNew)

// Extract scans text with a shared Extractor built on first use.
func Extract(text string) scamintel.Result {
	return defaultExtractor().Extract(text)
}
