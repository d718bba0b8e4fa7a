package scan

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/scamintel/scamintel/logging"
)

const IgnoreFileName = ".scamintelignore"

// LoadIgnoreFile loads a .scamintelignore file and returns the set of
// fingerprints to skip. Blank lines and lines starting with # are ignored.
func LoadIgnoreFile(path string) (map[string]struct{}, error) {
	ignore := make(map[string]struct{})

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Count(line, "!") != 3 {
			logging.Warn().Str("fingerprint", line).Msg("invalid ignore file entry")
			continue
		}
		ignore[line] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ignore, nil
}

// LoadIgnoreFiles loads the ignore file at ignorePath (a file, or a directory
// holding .scamintelignore) and the one in sourcePath, and merges them.
func LoadIgnoreFiles(ignorePath string, sourcePath string) map[string]struct{} {
	ignore := make(map[string]struct{})

	tryLoad := func(path string) {
		if _, err := os.Stat(path); err != nil {
			return
		}
		logging.Debug().Str("path", path).Msg("loading ignore file")
		loaded, err := LoadIgnoreFile(path)
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("failed to load ignore file")
			return
		}
		for k, v := range loaded {
			ignore[k] = v
		}
	}

	if info, err := os.Stat(ignorePath); err == nil && !info.IsDir() {
		tryLoad(ignorePath)
	} else {
		tryLoad(filepath.Join(ignorePath, IgnoreFileName))
	}
	if sourcePath != "" && sourcePath != ignorePath {
		tryLoad(filepath.Join(sourcePath, IgnoreFileName))
	}

	return ignore
}
