package scan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scamintel/scamintel"
)

// IsNew reports whether finding is absent from the baseline.
func IsNew(finding scamintel.Finding, baseline map[string]struct{}) bool {
	_, ok := baseline[finding.Fingerprint]
	return !ok
}

// LoadBaseline reads a JSON report written by an earlier run and returns the
// fingerprints it contains.
func LoadBaseline(baselinePath string) (map[string]struct{}, error) {
	bytes, err := os.ReadFile(baselinePath)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", baselinePath, err)
	}

	var previousFindings []scamintel.Finding
	if err := json.Unmarshal(bytes, &previousFindings); err != nil {
		return nil, fmt.Errorf("the format of the file %s is not supported: %w", baselinePath, err)
	}

	baseline := make(map[string]struct{}, len(previousFindings))
	for _, f := range previousFindings {
		if f.Fingerprint != "" {
			baseline[f.Fingerprint] = struct{}{}
		}
	}
	return baseline, nil
}

// AddBaseline loads the baseline at baselinePath into the pipeline.
func (p *Pipeline) AddBaseline(baselinePath string) error {
	if baselinePath == "" {
		return nil
	}
	baseline, err := LoadBaseline(baselinePath)
	if err != nil {
		return err
	}
	p.baseline = baseline
	return nil
}
