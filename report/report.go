package report

import (
	"fmt"
	"strings"

	"github.com/scamintel/scamintel"
)

// Report formats accepted by New.
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatResult   = "result"
	FormatIntel    = "intel"
	FormatTemplate = "template"
)

// New returns the reporter for format. A template path implies the template
// format; an empty format defaults to json.
func New(format, templatePath string) (scamintel.Reporter, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" && templatePath != "" {
		format = FormatTemplate
	}

	switch format {
	case "", FormatJSON:
		return &JsonReporter{}, nil
	case FormatCSV:
		return &CsvReporter{}, nil
	case FormatResult:
		return &ResultReporter{}, nil
	case FormatIntel:
		return &IntelReporter{}, nil
	case FormatTemplate:
		if templatePath == "" {
			return nil, fmt.Errorf("report format %q requires --report-template", format)
		}
		return NewTemplateReporter(templatePath)
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}
