package scamintel

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

// AddFingerprint computes and sets the fingerprint on a finding.
//
// A fingerprint is a deterministic identifier for a finding. It encodes where
// the finding was found, which category matched, and a hash of the matched
// value. Scanning the same input twice produces the same fingerprints, which
// makes them usable in ignore files and baselines.
//
// # Format
//
//	{source}!{path}!{key}!{value_hash}#L{startLine}-{endLine}#C{startCol}-{endCol}
//
// Each segment:
//
//   - source:     The source type ("stdin", "file", "text")
//   - path:       The path of the resource, empty for stdin and inline text
//   - key:        The result key of the category ("upiIds", ...)
//   - value_hash: First 8 hex chars of the XXH3 hash of the matched value
//   - #L, #C:     Line and column ranges within the resource
//
// # Examples
//
//	file!chats/2024-06-01.txt!upiIds!1f2e3d4c#L4-4#C10-20
//	stdin!!phishingLinks!9a8b7c6d#L1-1#C41-55
func AddFingerprint(finding *Finding) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s!%s!%s!%s#L%d-%d#C%d-%d",
		finding.Source,
		finding.Path,
		finding.Category.Key(),
		valueHash(finding.Value),
		finding.StartLine, finding.EndLine,
		finding.StartColumn, finding.EndColumn,
	)
	finding.Fingerprint = b.String()
}

// valueHash returns the first 8 hex characters of the XXH3-64 hash of s.
func valueHash(s string) string {
	h := xxh3.HashString(s)
	return fmt.Sprintf("%016x", h)[:8]
}
