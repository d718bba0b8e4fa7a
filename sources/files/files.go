// Package files walks a directory tree and yields the messages of every
// readable file in it.
package files

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/fatih/semgroup"

	"github.com/scamintel/scamintel"
	"github.com/scamintel/scamintel/config"
	"github.com/scamintel/scamintel/logging"
	"github.com/scamintel/scamintel/sources"
	"github.com/scamintel/scamintel/sources/file"
)

type ScanTarget struct {
	Path    string
	Symlink string
}

// Files is a source for yielding messages from a collection of files
type Files struct {
	Config          *config.Config
	FollowSymlinks  bool
	MaxFileSize     int
	Path            string
	Sema            *semgroup.Group
	MaxArchiveDepth int

	// Lines yields every line of a file as its own message
	Lines bool
}

var _ scamintel.Source = (*Files)(nil)

// scanTargets yields scan targets to a callback func
func (s *Files) scanTargets(ctx context.Context, yield func(ScanTarget, error) error) error {
	// Symlinks are handled below so fastwalk must not follow them itself.
	conf := &fastwalk.Config{
		Follow: false,
	}

	err := fastwalk.Walk(conf, s.Path, func(path string, d fs.DirEntry, err error) error {
		scanTarget := ScanTarget{Path: path}
		logger := logging.With().Str("path", path).Logger()

		if err != nil {
			if os.IsPermission(err) {
				logger.Warn().Err(errors.New("permission denied")).Msg("skipping directory")
				return fastwalk.SkipDir
			}
			logger.Warn().Err(err).Msg("skipping")
			return nil
		}

		if d.IsDir() {
			if sources.ShouldSkipPath(s.Config, path) {
				logger.Debug().Msg("skipping directory: allowlist")
				return fastwalk.SkipDir
			}
			return nil
		}

		if d.Type() == fs.ModeSymlink {
			if !s.FollowSymlinks {
				logger.Debug().Msg("skipping symlink: follow symlinks disabled")
				return nil
			}
			realPath, err := filepath.EvalSymlinks(path)
			if err != nil {
				logger.Error().Err(err).Msg("skipping symlink: could not evaluate")
				return nil
			}
			if realPathFileInfo, err := os.Stat(realPath); err != nil || realPathFileInfo.IsDir() {
				logger.Debug().Str("target", realPath).Msg("skipping symlink: target is directory")
				return nil
			}
			scanTarget = ScanTarget{
				Path:    realPath,
				Symlink: path,
			}
		}

		if sources.ShouldSkipPath(s.Config, path) {
			logger.Debug().Msg("skipping file: allowlist")
			return nil
		}

		if d.Name() == scanIgnoreFile {
			return nil
		}

		// Only stat when a size limit is configured.
		if s.MaxFileSize > 0 {
			info, err := d.Info()
			if err != nil {
				logger.Error().Err(err).Msg("skipping file: could not get info")
				return nil
			}

			if info.Size() == 0 {
				logger.Debug().Msg("skipping empty file")
				return nil
			}

			if info.Size() > int64(s.MaxFileSize) {
				logger.Warn().Msgf(
					"skipping file: too large max_size=%dMB, size=%dMB",
					s.MaxFileSize/1_000_000, info.Size()/1_000_000,
				)
				return nil
			}
		}

		return yield(scanTarget, nil)
	})

	// A missing root is logged rather than treated as a failure.
	if err != nil && os.IsNotExist(err) {
		logging.Warn().Err(err).Str("path", s.Path).Msg("skipping")
		return nil
	}

	return err
}

// Messages yields messages from files discovered under the path. Files are
// read concurrently on Sema but yield is never called concurrently. Sema is
// waited on before returning, so it must not be shared with other work.
func (s *Files) Messages(ctx context.Context, yield func(scamintel.Message, error) error) error {
	var yieldM sync.Mutex
	sema := s.Sema
	if sema == nil {
		sema = semgroup.NewGroup(ctx, 1)
	}

	safeYield := func(msg scamintel.Message, err error) error {
		yieldM.Lock()
		defer yieldM.Unlock()
		return yield(msg, err)
	}

	err := s.scanTargets(ctx, func(scanTarget ScanTarget, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			sema.Go(func() error {
				logger := logging.With().Str("path", scanTarget.Path).Logger()
				logger.Trace().Msg("scanning path")

				f, err := os.Open(scanTarget.Path)
				if err != nil {
					if os.IsPermission(err) {
						logger.Warn().Msg("skipping file: permission denied")
					}
					return nil
				}
				defer f.Close()

				fileSource := file.File{
					Content:         f,
					Path:            scanTarget.Path,
					Source:          "file",
					Lines:           s.Lines,
					MaxArchiveDepth: s.MaxArchiveDepth,
				}
				return fileSource.Messages(ctx, func(msg scamintel.Message, err error) error {
					if scanTarget.Symlink != "" {
						msg.Set(metaSymlink, scanTarget.Symlink)
					}
					return safeYield(msg, err)
				})
			})

			return nil
		}
	})

	if werr := sema.Wait(); werr != nil && err == nil {
		err = werr
	}
	return err
}

const (
	metaSymlink    = "symlink"
	scanIgnoreFile = ".scamintelignore"
)
