package scamintel

import (
	"fmt"
	"slices"
)

// Category is one of the fixed classes of extractable artifact.
type Category int

const (
	PaymentHandle Category = iota
	PhoneNumber
	SuspiciousLink
)

// Wire-visible result keys. Downstream consumers key off these exact names.
const (
	KeyPaymentHandle  = "upiIds"
	KeyPhoneNumber    = "phoneNumbers"
	KeySuspiciousLink = "phishingLinks"
)

var categories = [...]Category{PaymentHandle, PhoneNumber, SuspiciousLink}

// Categories returns every category in scan order.
func Categories() []Category {
	return slices.Clone(categories[:])
}

func (c Category) String() string {
	switch c {
	case PaymentHandle:
		return "payment_handle"
	case PhoneNumber:
		return "phone_number"
	case SuspiciousLink:
		return "suspicious_link"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Key returns the result key used for c in a Result.
func (c Category) Key() string {
	switch c {
	case PaymentHandle:
		return KeyPaymentHandle
	case PhoneNumber:
		return KeyPhoneNumber
	case SuspiciousLink:
		return KeySuspiciousLink
	default:
		return ""
	}
}

// CategoryFromKey resolves either the result key ("upiIds") or the category
// name ("payment_handle").
func CategoryFromKey(s string) (Category, bool) {
	for _, c := range categories {
		if s == c.Key() || s == c.String() {
			return c, true
		}
	}
	return 0, false
}

func (c Category) MarshalText() ([]byte, error) {
	if c.Key() == "" {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(c.Key()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	cat, ok := CategoryFromKey(string(b))
	if !ok {
		return fmt.Errorf("unknown category %q", string(b))
	}
	*c = cat
	return nil
}
