package sources

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/mholt/archives"

	"github.com/scamintel/scamintel/config"
	"github.com/scamintel/scamintel/logging"
)

var isWindows = runtime.GOOS == "windows"

// IsArchive does a light check to see if the provided path is an archive or
// compressed file. The File source already does this, so this exists mainly
// to avoid expensive calls before sending things to the File source
func IsArchive(ctx context.Context, path string) bool {
	format, _, err := archives.Identify(ctx, path, nil)
	return err == nil && format != nil
}

// ShouldSkipPath reports whether an allowlist drops every finding under path,
// so the path need not be read at all. Only allowlists that apply to all
// categories and are satisfied by the path alone qualify.
func ShouldSkipPath(cfg *config.Config, path string) bool {
	if cfg == nil {
		logging.Trace().Str("path", path).Msg("not skipping path because config is nil")
		return false
	}

	for _, a := range cfg.Allowlists {
		if len(a.Paths) == 0 || len(a.Categories) > 0 {
			continue
		}
		if a.MatchCondition == config.AllowlistMatchAnd && (len(a.Regexes) > 0 || len(a.StopWords) > 0) {
			continue
		}
		if a.PathAllowed(path) || (isWindows && a.PathAllowed(filepath.ToSlash(path))) {
			return true
		}
	}

	return false
}
