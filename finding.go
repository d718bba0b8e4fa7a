package scamintel

import (
	"math"
	"strings"
)

type Finding struct {
	// Category of the rule that matched, serialized as its result key
	Category Category

	// Location Information
	// Offsets are bytes within the message, lines and columns are 1-based
	// within the resource.
	Start       int
	End         int
	StartLine   int
	EndLine     int
	StartColumn int
	EndColumn   int

	// Line is the full line content containing the finding.
	Line string `json:"-"`

	// Context is the match plus the configured number of surrounding bytes.
	Context string `json:",omitempty"`

	// Value is the verbatim matched text
	Value string

	Source string
	Path   string `json:",omitempty"`

	// unique identifier
	Fingerprint string

	Metadata map[string]string `json:",omitempty"`

	// Used for bookkeeping back to the message
	Message *Message `json:"-"`
}

// Redact removes the matched value from a finding.
func (f *Finding) Redact(percent uint) {
	value := MaskValue(f.Value, percent)
	if percent >= 100 {
		value = "REDACTED"
	}
	if f.Value != "" {
		f.Line = strings.ReplaceAll(f.Line, f.Value, value)
		f.Context = strings.ReplaceAll(f.Context, f.Value, value)
	}
	f.Value = value
}

func MaskValue(value string, percent uint) string {
	if percent > 100 {
		percent = 100
	}
	n := float64(len(value))
	if n <= 0 {
		return value
	}
	prc := float64(100 - percent)
	lth := int64(math.RoundToEven(n * prc / float64(100)))

	return value[:lth] + "..."
}
