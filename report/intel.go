package report

import (
	"encoding/json"
	"io"

	"github.com/scamintel/scamintel"
)

// ResultReporter writes the bare extraction result: one key per category
// with at least one match, values in order of occurrence.
type ResultReporter struct {
}

var _ scamintel.Reporter = (*ResultReporter)(nil)

func (r *ResultReporter) Write(w io.WriteCloser, findings []scamintel.Finding) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")
	return encoder.Encode(scamintel.ResultFromFindings(findings))
}

// IntelReporter writes the extraction result together with the scam keywords
// seen while scanning. Keywords and ScamDetected are filled in by the caller
// once the scan is done, since they come from messages rather than findings.
type IntelReporter struct {
	Keywords     []string
	ScamDetected bool
}

var _ scamintel.Reporter = (*IntelReporter)(nil)

func (r *IntelReporter) Write(w io.WriteCloser, findings []scamintel.Finding) error {
	intel := scamintel.Intel{
		Result:       scamintel.ResultFromFindings(findings),
		Keywords:     r.Keywords,
		ScamDetected: r.ScamDetected,
	}
	if intel.Keywords == nil {
		intel.Keywords = []string{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")
	return encoder.Encode(intel)
}
