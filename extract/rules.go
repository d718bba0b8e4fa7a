package extract

import "github.com/scamintel/scamintel"

// Rule texts. These are kept byte-for-byte compatible with the patterns
// downstream consumers were built against; do not tighten them here. Stricter
// validation belongs in a separate pass over the extracted values.
const (
	// PaymentHandlePattern matches name@provider tokens. It also matches the
	// leading part of ordinary email addresses.
	PaymentHandlePattern = `[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}`

	// PhoneNumberPattern matches ten digits with an optional "+91" (plus an
	// optional separator) and/or bare "91" prefix.
	PhoneNumberPattern = `(\+91[\-\s]?)?(91)?\d{10}`

	// SuspiciousLinkPattern matches http(s) URLs. Note that "$-_" in the
	// class is a range, so "/", ":", "?", "=" and uppercase letters are
	// accepted as well.
	SuspiciousLinkPattern = `http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(\\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`
)

// Pattern returns the rule text for c.
func Pattern(c scamintel.Category) string {
	switch c {
	case scamintel.PaymentHandle:
		return PaymentHandlePattern
	case scamintel.PhoneNumber:
		return PhoneNumberPattern
	case scamintel.SuspiciousLink:
		return SuspiciousLinkPattern
	default:
		return ""
	}
}
