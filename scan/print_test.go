package scan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scamintel/scamintel"
)

func TestPrintFinding(t *testing.T) {
	f := scamintel.Finding{
		Category:    scamintel.PhoneNumber,
		Value:       "+91-9876543210",
		Line:        "  or call +91-9876543210 now  ",
		Source:      "file",
		Path:        "chats/a.txt",
		StartLine:   4,
		Context:     "call +91-9876543210",
		Fingerprint: "file!chats/a.txt!phoneNumbers!9a8b7c6d#L4-4#C11-24",
	}

	var buf bytes.Buffer
	PrintFinding(&buf, f, true)

	want := "Finding:     +91-9876543210\n" +
		"Category:    phoneNumbers (phone_number)\n" +
		"File:        chats/a.txt\n" +
		"Line:        4\n" +
		"Context:     \"call +91-9876543210\"\n" +
		"Fingerprint: file!chats/a.txt!phoneNumbers!9a8b7c6d#L4-4#C11-24\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintFindingColor(t *testing.T) {
	f := scamintel.Finding{
		Category: scamintel.PaymentHandle,
		Value:    "scammer@sbi",
		Line:     "pay scammer@sbi",
		Source:   "stdin",
	}

	var buf bytes.Buffer
	PrintFinding(&buf, f, false)

	out := buf.String()
	assert.Contains(t, out, "scammer@sbi")
	assert.Contains(t, out, "Source:      stdin\n")
	assert.NotContains(t, out, "File:")
}
