// Package keywords flags scam intent by looking for well-known bait words.
package keywords

import (
	"slices"
	"strings"

	ahocorasick "github.com/BobuSumisu/aho-corasick"
)

// DefaultWords are the bait words seen most often in payment scams.
var DefaultWords = []string{
	"kyc", "expired", "pay", "upi", "bank", "verify",
	"update", "deposit", "money", "win", "electricity", "bill",
	"account blocked", "urgent", "verify now",
}

// Detector finds keywords with a single Aho-Corasick pass over the lowered
// text. It is read-only after New and safe for concurrent use.
type Detector struct {
	trie  *ahocorasick.Trie
	words []string
}

// New builds a Detector for words. Words are lower-cased; empty words and
// duplicates are dropped. A nil or empty list falls back to DefaultWords.
func New(words []string) *Detector {
	if len(words) == 0 {
		words = DefaultWords
	}
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || slices.Contains(normalized, w) {
			continue
		}
		normalized = append(normalized, w)
	}
	return &Detector{
		trie:  ahocorasick.NewTrieBuilder().AddStrings(normalized).Build(),
		words: normalized,
	}
}

// Words returns the configured keywords.
func (d *Detector) Words() []string {
	return slices.Clone(d.words)
}

// Detect returns the distinct keywords present in text, sorted. Matching is
// case-insensitive substring matching, so "payment" reports "pay".
func (d *Detector) Detect(text string) []string {
	if text == "" || len(d.words) == 0 {
		return nil
	}
	normalized := strings.ToLower(text)
	seen := make(map[string]struct{})
	for _, m := range d.trie.MatchString(normalized) {
		seen[string(m.Match())] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}
	found := make([]string, 0, len(seen))
	for w := range seen {
		found = append(found, w)
	}
	slices.Sort(found)
	return found
}

// IsScam reports whether any keyword is present in text.
func (d *Detector) IsScam(text string) bool {
	if text == "" || len(d.words) == 0 {
		return false
	}
	return len(d.trie.MatchString(strings.ToLower(text))) > 0
}
