package report

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/go-sprout/sprout"
	"github.com/go-sprout/sprout/group/all"

	"github.com/scamintel/scamintel"
)

type TemplateReporter struct {
	template *template.Template
}

var _ scamintel.Reporter = (*TemplateReporter)(nil)

// NewTemplateReporter parses the template at templatePath with the sprout
// function registry available.
func NewTemplateReporter(templatePath string) (*TemplateReporter, error) {
	if templatePath == "" {
		return nil, fmt.Errorf("template path cannot be empty")
	}

	file, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return newTemplateReporter(string(file))
}

func newTemplateReporter(text string) (*TemplateReporter, error) {
	handler := sprout.New()
	if err := handler.AddGroups(all.RegistryGroup()); err != nil {
		return nil, fmt.Errorf("error loading template functions: %w", err)
	}

	tmpl, err := template.New("custom").Funcs(template.FuncMap(handler.Build())).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}
	return &TemplateReporter{template: tmpl}, nil
}

// Write renders the findings with the template.
func (t *TemplateReporter) Write(w io.WriteCloser, findings []scamintel.Finding) error {
	return t.template.Execute(w, findings)
}
