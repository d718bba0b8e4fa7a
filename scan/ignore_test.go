package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ignoreContent = `# reviewed 2026-09-30
text!!upiIds!1f2e3d4c#L1-1#C11-21

file!chats/a.txt!phoneNumbers!9a8b7c6d#L4-4#C1-10
not-a-fingerprint
`

func TestLoadIgnoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), IgnoreFileName)
	require.NoError(t, os.WriteFile(path, []byte(ignoreContent), 0o600))

	ignore, err := LoadIgnoreFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"text!!upiIds!1f2e3d4c#L1-1#C11-21":                 {},
		"file!chats/a.txt!phoneNumbers!9a8b7c6d#L4-4#C1-10": {},
	}, ignore)
}

func TestLoadIgnoreFileMissing(t *testing.T) {
	_, err := LoadIgnoreFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestLoadIgnoreFiles(t *testing.T) {
	ignoreDir := t.TempDir()
	sourceDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ignoreDir, IgnoreFileName),
		[]byte("text!!upiIds!1f2e3d4c#L1-1#C11-21\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, IgnoreFileName),
		[]byte("file!a.txt!phishingLinks!00ff00ff#L2-2#C5-20\n"), 0o600))

	t.Run("directory", func(t *testing.T) {
		ignore := LoadIgnoreFiles(ignoreDir, sourceDir)
		assert.Len(t, ignore, 2)
	})

	t.Run("file", func(t *testing.T) {
		ignore := LoadIgnoreFiles(filepath.Join(ignoreDir, IgnoreFileName), "")
		assert.Contains(t, ignore, "text!!upiIds!1f2e3d4c#L1-1#C11-21")
		assert.Len(t, ignore, 1)
	})

	t.Run("nothing to load", func(t *testing.T) {
		ignore := LoadIgnoreFiles(filepath.Join(t.TempDir(), "missing"), "")
		assert.Empty(t, ignore)
	})
}
