package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfigCmd(t *testing.T, configFlag string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().String("config", "", "")
	if configFlag != "" {
		require.NoError(t, c.Flags().Set("config", configFlag))
	}
	return c
}

func TestReadConfig(t *testing.T) {
	t.Setenv("SCAMINTEL_CONFIG", "")
	t.Setenv("SCAMINTEL_CONFIG_TOML", "")

	dir := t.TempDir()
	dirConfig := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(dirConfig, []byte("[scan]\nconcurrency = 2\n"), 0o600))
	flagConfig := filepath.Join(t.TempDir(), "flag.toml")
	require.NoError(t, os.WriteFile(flagConfig, []byte("[scan]\nconcurrency = 3\n"), 0o600))

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("SCAMINTEL_CONFIG_TOML", "[scan]\nconcurrency = 4\n")
		content, path, err := readConfig(newConfigCmd(t, flagConfig), dir)
		require.NoError(t, err)
		assert.Equal(t, flagConfig, path)
		assert.Contains(t, string(content), "concurrency = 3")
	})

	t.Run("env path", func(t *testing.T) {
		t.Setenv("SCAMINTEL_CONFIG", flagConfig)
		_, path, err := readConfig(newConfigCmd(t, ""), dir)
		require.NoError(t, err)
		assert.Equal(t, flagConfig, path)
	})

	t.Run("env content", func(t *testing.T) {
		t.Setenv("SCAMINTEL_CONFIG_TOML", "[scan]\nconcurrency = 4\n")
		content, path, err := readConfig(newConfigCmd(t, ""), dir)
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Contains(t, string(content), "concurrency = 4")
	})

	t.Run("target directory", func(t *testing.T) {
		content, path, err := readConfig(newConfigCmd(t, ""), dir)
		require.NoError(t, err)
		assert.Equal(t, dirConfig, path)
		assert.Contains(t, string(content), "concurrency = 2")
	})

	t.Run("defaults", func(t *testing.T) {
		content, path, err := readConfig(newConfigCmd(t, ""), t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Empty(t, content)
	})

	t.Run("target is a file", func(t *testing.T) {
		content, _, err := readConfig(newConfigCmd(t, ""), dirConfig)
		require.NoError(t, err)
		assert.Empty(t, content)
	})

	t.Run("missing flag file", func(t *testing.T) {
		_, _, err := readConfig(newConfigCmd(t, filepath.Join(dir, "missing.toml")), dir)
		require.Error(t, err)
	})
}

func TestBytesConvert(t *testing.T) {
	tests := map[uint64]string{
		0:             "0",
		12:            "12 bytes",
		1500:          "1.50 KB",
		2_000_000:     "2 MB",
		3_250_000_000: "3.25 GB",
	}
	for in, want := range tests {
		assert.Equal(t, want, bytesConvert(in))
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.23s", FormatDuration(1234*time.Millisecond))
	assert.Equal(t, "12.3ms", FormatDuration(12345*time.Microsecond))
}
