package scamintel

import (
	"context"
	"io"
)

// Source yields messages to scan.
type Source interface {
	// Messages calls yield once per message. Returning an error from yield
	// stops the source.
	Messages(ctx context.Context, yield func(Message, error) error) error
}

// Reporter writes findings in some output format.
type Reporter interface {
	Write(w io.WriteCloser, findings []Finding) error
}
