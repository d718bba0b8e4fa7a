package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/scamintel/scamintel"
)

type CsvReporter struct {
}

var _ scamintel.Reporter = (*CsvReporter)(nil)

func (r *CsvReporter) Write(w io.WriteCloser, findings []scamintel.Finding) error {
	if len(findings) == 0 {
		return nil
	}

	var (
		cw  = csv.NewWriter(w)
		err error
	)
	columns := []string{"Category",
		"Value",
		"Source",
		"Path",
		"StartLine",
		"EndLine",
		"StartColumn",
		"EndColumn",
		"Context",
		"Sender",
		"Fingerprint",
	}

	if err = cw.Write(columns); err != nil {
		return err
	}
	for _, f := range findings {
		row := []string{f.Category.Key(),
			f.Value,
			f.Source,
			f.Path,
			strconv.Itoa(f.StartLine),
			strconv.Itoa(f.EndLine),
			strconv.Itoa(f.StartColumn),
			strconv.Itoa(f.EndColumn),
			f.Context,
			f.Metadata[scamintel.MetaSender],
			f.Fingerprint,
		}
		if err = cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
