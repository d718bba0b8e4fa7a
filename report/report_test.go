package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamintel/scamintel"
)

var testFindings = []scamintel.Finding{
	{
		Category:    scamintel.PaymentHandle,
		Value:       "scammer@sbi",
		Source:      "text",
		StartLine:   1,
		EndLine:     1,
		StartColumn: 11,
		EndColumn:   21,
		Fingerprint: "text!!upiIds!0123abcd#L1-1#C11-21",
		Metadata:    map[string]string{scamintel.MetaSender: "+919000000000"},
	},
	{
		Category:    scamintel.PhoneNumber,
		Value:       "+91-9876543210",
		Source:      "text",
		StartLine:   1,
		EndLine:     1,
		StartColumn: 31,
		EndColumn:   44,
		Fingerprint: "text!!phoneNumbers!4567cdef#L1-1#C31-44",
	},
	{
		Category:    scamintel.PaymentHandle,
		Value:       "refund.desk@okaxis",
		Source:      "text",
		StartLine:   2,
		EndLine:     2,
		StartColumn: 1,
		EndColumn:   18,
		Fingerprint: "text!!upiIds!89abef01#L2-2#C1-18",
	},
}

// write runs reporter into a temp file and returns what it wrote.
func write(t *testing.T, reporter scamintel.Reporter, findings []scamintel.Finding) string {
	t.Helper()
	tmpfile, err := os.Create(filepath.Join(t.TempDir(), "report"))
	require.NoError(t, err)
	defer tmpfile.Close()

	require.NoError(t, reporter.Write(tmpfile, findings))

	got, err := os.ReadFile(tmpfile.Name())
	require.NoError(t, err)
	return string(got)
}

func TestWriteJSON(t *testing.T) {
	got := write(t, &JsonReporter{}, testFindings)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "upiIds", decoded[0]["Category"])
	assert.Equal(t, "scammer@sbi", decoded[0]["Value"])
	assert.Equal(t, "phoneNumbers", decoded[1]["Category"])
	assert.NotContains(t, decoded[1], "Path")
	assert.NotContains(t, decoded[1], "Line")
}

func TestWriteJSONEmpty(t *testing.T) {
	got := write(t, &JsonReporter{}, nil)
	assert.Equal(t, "[]\n", got)
}

func TestWriteCSV(t *testing.T) {
	got := write(t, &CsvReporter{}, testFindings[:2])

	want := strings.Join([]string{
		"Category,Value,Source,Path,StartLine,EndLine,StartColumn,EndColumn,Context,Sender,Fingerprint",
		"upiIds,scammer@sbi,text,,1,1,11,21,,+919000000000,text!!upiIds!0123abcd#L1-1#C11-21",
		"phoneNumbers,+91-9876543210,text,,1,1,31,44,,,text!!phoneNumbers!4567cdef#L1-1#C31-44",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestWriteCSVEmpty(t *testing.T) {
	got := write(t, &CsvReporter{}, nil)
	assert.Empty(t, got)
}

func TestWriteResult(t *testing.T) {
	got := write(t, &ResultReporter{}, testFindings)

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	want := map[string][]string{
		"upiIds":       {"scammer@sbi", "refund.desk@okaxis"},
		"phoneNumbers": {"+91-9876543210"},
	}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteResultEmpty(t *testing.T) {
	got := write(t, &ResultReporter{}, nil)
	assert.Equal(t, "{}\n", got)
}

func TestWriteIntel(t *testing.T) {
	reporter := &IntelReporter{Keywords: []string{"bank", "kyc"}, ScamDetected: true}
	got := write(t, reporter, testFindings[1:2])

	var decoded struct {
		Result       map[string][]string `json:"extractedIntelligence"`
		Keywords     []string            `json:"suspiciousKeywords"`
		ScamDetected bool                `json:"scamDetected"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, map[string][]string{"phoneNumbers": {"+91-9876543210"}}, decoded.Result)
	assert.Equal(t, []string{"bank", "kyc"}, decoded.Keywords)
	assert.True(t, decoded.ScamDetected)
}

func TestWriteIntelNoKeywords(t *testing.T) {
	got := write(t, &IntelReporter{}, nil)
	assert.Contains(t, got, `"suspiciousKeywords": []`)
	assert.Contains(t, got, `"extractedIntelligence": {}`)
	assert.Contains(t, got, `"scamDetected": false`)
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markdown.tmpl")
	tmpl := "| category | value | line |\n" +
		"{{- range . }}\n| {{ .Category.Key }} | {{ .Value | toUpper }} | {{ .StartLine }} |{{ end }}\n"
	require.NoError(t, os.WriteFile(path, []byte(tmpl), 0o600))

	reporter, err := NewTemplateReporter(path)
	require.NoError(t, err)

	got := write(t, reporter, testFindings[:2])
	want := "| category | value | line |\n" +
		"| upiIds | SCAMMER@SBI | 1 |\n" +
		"| phoneNumbers | +91-9876543210 | 1 |\n"
	assert.Equal(t, want, got)
}

func TestNewTemplateReporterErrors(t *testing.T) {
	_, err := NewTemplateReporter("")
	require.Error(t, err)

	_, err = NewTemplateReporter(filepath.Join(t.TempDir(), "missing.tmpl"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{ range . }"), 0o600))
	_, err = NewTemplateReporter(path)
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	tmplPath := filepath.Join(t.TempDir(), "r.tmpl")
	require.NoError(t, os.WriteFile(tmplPath, []byte("{{ len . }}"), 0o600))

	tests := []struct {
		format       string
		templatePath string
		want         scamintel.Reporter
	}{
		{format: "", want: &JsonReporter{}},
		{format: "json", want: &JsonReporter{}},
		{format: "CSV", want: &CsvReporter{}},
		{format: "result", want: &ResultReporter{}},
		{format: "intel", want: &IntelReporter{}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := New(tt.format, tt.templatePath)
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}

	t.Run("template implied by path", func(t *testing.T) {
		got, err := New("", tmplPath)
		require.NoError(t, err)
		assert.IsType(t, &TemplateReporter{}, got)
	})

	t.Run("template without path", func(t *testing.T) {
		_, err := New("template", "")
		require.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := New("sarif", "")
		require.ErrorContains(t, err, "unknown report format")
	})
}
