package scan

import (
	"strings"
	"testing"
)

func TestExtractContext(t *testing.T) {
	raw := "hello aunty, your electricity bill is overdue.\nPay now to scammer@sbi or the line will be cut tonight.\nCall us back."

	match := "scammer@sbi"
	start := strings.Index(raw, match)
	end := start + len(match)

	tests := []struct {
		name  string
		bytes int
		want  string
	}{
		{
			name:  "not set",
			bytes: 0,
			want:  "",
		},
		{
			name:  "small context around match",
			bytes: 10,
			want:  raw[start-10 : end+10],
		},
		{
			name:  "large context includes everything",
			bytes: 10000,
			want:  raw,
		},
		{
			name:  "1 byte padding",
			bytes: 1,
			want:  " scammer@sbi ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractContext(raw, start, end, tt.bytes)
			if got != tt.want {
				t.Errorf("extractContext() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestExtractContext_MatchAtStart(t *testing.T) {
	raw := "9876543210 is my number, call now"
	end := len("9876543210")

	got := extractContext(raw, 0, end, 5)
	want := raw[:end+5]
	if got != want {
		t.Errorf("extractContext(start) =\n%q\nwant\n%q", got, want)
	}
}

func TestExtractContext_MatchAtEnd(t *testing.T) {
	raw := "open this link before it expires http://evil.com"
	start := strings.Index(raw, "http://")

	got := extractContext(raw, start, len(raw), 8)
	want := raw[start-8:]
	if got != want {
		t.Errorf("extractContext(end) =\n%q\nwant\n%q", got, want)
	}
}

func TestExtractContext_EmptyRaw(t *testing.T) {
	got := extractContext("", 0, 0, 10)
	if got != "" {
		t.Errorf("extractContext(empty) = %q, want empty", got)
	}
}
