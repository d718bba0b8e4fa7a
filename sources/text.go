package sources

import (
	"context"
	"strings"

	"github.com/scamintel/scamintel"
)

// Text is a source for in-memory messages such as command line arguments.
// Values are treated as consecutive lines of one resource, so findings in
// different values report different lines.
type Text struct {
	Values []string

	// Source defaults to "text"
	Source string

	// Sender is attached to every message as metadata when set
	Sender string
}

var _ scamintel.Source = (*Text)(nil)

// Messages yields one message per value, in order.
func (s *Text) Messages(ctx context.Context, yield func(scamintel.Message, error) error) error {
	source := s.Source
	if source == "" {
		source = "text"
	}

	line := 1
	for _, v := range s.Values {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg := scamintel.Message{Text: v, Source: source, LineOffset: line}
		line += strings.Count(v, "\n") + 1
		if s.Sender != "" {
			msg.Set(scamintel.MetaSender, s.Sender)
		}
		if err := yield(msg, nil); err != nil {
			return err
		}
	}
	return nil
}
