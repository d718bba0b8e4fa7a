package report

import (
	"encoding/json"
	"io"

	"github.com/scamintel/scamintel"
)

type JsonReporter struct {
}

var _ scamintel.Reporter = (*JsonReporter)(nil)

func (t *JsonReporter) Write(w io.WriteCloser, findings []scamintel.Finding) error {
	if findings == nil {
		findings = []scamintel.Finding{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")
	return encoder.Encode(findings)
}
