package scan

import (
	"cmp"
	"slices"
	"sort"
	"strings"

	"github.com/scamintel/scamintel"
)

// CreateFinding creates a Finding from a message and match without location
// data. Call AddLocationToFinding to add line/column information.
func CreateFinding(msg scamintel.Message, match scamintel.Match) scamintel.Finding {
	return scamintel.Finding{
		Category: match.Category,
		Value:    match.Value,
		Start:    match.Start,
		End:      match.End,
		Source:   msg.Source,
		Path:     msg.Path,
		Metadata: msg.Metadata,
		Message:  &msg,
	}
}

// lineIndex holds the byte offsets of every '\n' in a message.
type lineIndex []int

func newLineIndex(raw string) lineIndex {
	idx := lineIndex{}
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\n' {
			idx = append(idx, i)
		}
	}
	return idx
}

// line returns the 0-based line containing offset.
func (li lineIndex) line(offset int) int {
	return sort.SearchInts(li, offset)
}

// start returns the offset of the first byte of a 0-based line.
func (li lineIndex) start(line int) int {
	if line == 0 {
		return 0
	}
	return li[line-1] + 1
}

// end returns the offset of the newline ending a 0-based line, or len(raw).
func (li lineIndex) end(line int, raw string) int {
	if line < len(li) {
		return li[line]
	}
	return len(raw)
}

// AddLocationToFinding populates location fields on a finding. Lines and
// columns are 1-based; the end column is inclusive.
func AddLocationToFinding(finding *scamintel.Finding, msg scamintel.Message, match scamintel.Match, lines lineIndex) {
	startLine := lines.line(match.Start)
	endLine := startLine
	if match.End > match.Start {
		endLine = lines.line(match.End - 1)
	}

	// Account for the message offset when a resource is split into lines.
	offset := 0
	if msg.LineOffset > 0 {
		offset = msg.LineOffset - 1
	}

	finding.StartLine = startLine + 1 + offset
	finding.EndLine = endLine + 1 + offset
	finding.StartColumn = match.Start - lines.start(startLine) + 1
	finding.EndColumn = match.End - lines.start(endLine)
	finding.Line = strings.TrimSuffix(msg.Text[lines.start(startLine):lines.end(endLine, msg.Text)], "\r")
}

// sortFindings orders findings by resource, then position, then category.
func sortFindings(findings []scamintel.Finding) {
	slices.SortStableFunc(findings, func(a, b scamintel.Finding) int {
		return cmp.Or(
			cmp.Compare(a.Source, b.Source),
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.StartLine, b.StartLine),
			cmp.Compare(a.StartColumn, b.StartColumn),
			cmp.Compare(a.Category, b.Category),
		)
	})
}
