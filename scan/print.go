package scan

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scamintel/scamintel"
)

var (
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5d445"))
	valueStyle = lipgloss.NewStyle().Bold(true).Italic(true).Foreground(lipgloss.Color("#f05c07"))
)

// PrintFinding writes a finding to w with optional color formatting.
func PrintFinding(w io.Writer, f scamintel.Finding, noColor bool) {
	f.Line = strings.TrimSpace(f.Line)

	value := f.Value
	if len(value) > 100 {
		value = value[:100] + "..."
	}

	valueInLineIdx := strings.Index(f.Line, f.Value)
	if noColor || valueInLineIdx == -1 {
		fmt.Fprintf(w, "%-12s %s\n", "Finding:", value)
	} else {
		start := f.Line[:valueInLineIdx]
		if len(start) > 20 {
			start = "..." + start[len(start)-20:]
		}
		end := f.Line[valueInLineIdx+len(f.Value):]
		if len(end) > 20 {
			end = end[:20] + "..."
		}
		fmt.Fprintf(w, "%-12s %s%s%s\n", "Finding:",
			lineStyle.Render(start), valueStyle.Render(value), lineStyle.Render(end))
	}

	fmt.Fprintf(w, "%-12s %s (%s)\n", "Category:", f.Category.Key(), f.Category)
	if f.Path != "" {
		fmt.Fprintf(w, "%-12s %s\n", "File:", f.Path)
	} else {
		fmt.Fprintf(w, "%-12s %s\n", "Source:", f.Source)
	}
	fmt.Fprintf(w, "%-12s %d\n", "Line:", f.StartLine)
	if f.Context != "" {
		fmt.Fprintf(w, "%-12s %q\n", "Context:", f.Context)
	}
	fmt.Fprintf(w, "%-12s %s\n", "Fingerprint:", f.Fingerprint)
	fmt.Fprintln(w)
}
