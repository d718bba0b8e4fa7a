package sources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamintel/scamintel"
	"github.com/scamintel/scamintel/config"
)

func TestTextMessages(t *testing.T) {
	src := &Text{Values: []string{"one", "two\nlines", "three"}, Sender: "+919000000000"}

	var msgs []scamintel.Message
	err := src.Messages(context.Background(), func(msg scamintel.Message, err error) error {
		require.NoError(t, err)
		msgs = append(msgs, msg)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "one", msgs[0].Text)
	assert.Equal(t, "text", msgs[0].Source)
	assert.Equal(t, "+919000000000", msgs[1].Get(scamintel.MetaSender))
	assert.Equal(t, []int{1, 2, 4}, []int{msgs[0].LineOffset, msgs[1].LineOffset, msgs[2].LineOffset})
}

func TestTextMessagesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := (&Text{Values: []string{"one"}}).Messages(ctx, func(scamintel.Message, error) error {
		t.Fatal("yield called after cancel")
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestShouldSkipPath(t *testing.T) {
	pathOnly, err := config.NewAllowlist("", "", nil, nil, nil, []string{`^testdata/`})
	require.NoError(t, err)
	scoped, err := config.NewAllowlist("", "", []string{"upiIds"}, nil, nil, []string{`^scoped/`})
	require.NoError(t, err)
	and, err := config.NewAllowlist("", "AND", nil, nil, []string{"sbi"}, []string{`^and/`})
	require.NoError(t, err)
	cfg := &config.Config{Allowlists: []*config.Allowlist{pathOnly, scoped, and}}

	tests := []struct {
		path string
		want bool
	}{
		{"testdata/chat.txt", true},
		{"inbox/chat.txt", false},
		{"scoped/chat.txt", false},
		{"and/chat.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldSkipPath(cfg, tt.path))
		})
	}

	assert.False(t, ShouldSkipPath(nil, "testdata/chat.txt"))
}
