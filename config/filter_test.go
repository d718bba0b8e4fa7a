package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamintel/scamintel"
)

func TestFilterKeep(t *testing.T) {
	phone := scamintel.Finding{Category: scamintel.PhoneNumber, Value: "+91-9876543210", Source: "stdin", StartLine: 3}
	bare := scamintel.Finding{Category: scamintel.PhoneNumber, Value: "9876543210", Source: "file", Path: "a.txt", StartLine: 1}
	link := scamintel.Finding{Category: scamintel.SuspiciousLink, Value: "http://evil.com", Source: "text"}

	tests := []struct {
		expr    string
		finding scamintel.Finding
		want    bool
	}{
		{`category != "phoneNumbers" || value.startsWith("+91")`, phone, true},
		{`category != "phoneNumbers" || value.startsWith("+91")`, bare, false},
		{`category != "phoneNumbers" || value.startsWith("+91")`, link, true},
		{`name == "suspicious_link" && value.contains("evil")`, link, true},
		{`source == "file" && path.endsWith(".txt") && line == 1`, bare, true},
		{`line > 2`, phone, true},
		{`size(value) > 20`, link, false},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := NewFilter(tt.expr)
			require.NoError(t, err)
			got, err := f.Keep(tt.finding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFilterErrors(t *testing.T) {
	for _, expr := range []string{`value +`, `value`, `unknown_var == 1`} {
		_, err := NewFilter(expr)
		assert.Error(t, err, expr)
	}
}
