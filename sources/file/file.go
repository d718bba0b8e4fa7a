// Package file reads messages from a single stream such as stdin or a file
// on disk. Compressed streams and archives are opened transparently.
package file

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/h2non/filetype"
	"github.com/mholt/archives"

	"github.com/scamintel/scamintel"
	"github.com/scamintel/scamintel/logging"
)

// InnerPathSeparator joins an archive path and the path of a file inside it.
const InnerPathSeparator = "::"

// File is a source yielding the messages in one stream.
type File struct {
	Content io.Reader

	// Path is used for format detection and reported with every message
	Path string

	// Source type, e.g. "file" or "stdin"
	Source string

	// Lines yields every non-empty line as its own message instead of the
	// whole content as one message
	Lines bool

	// MaxArchiveDepth limits how many nested archives are opened, 0 means
	// archives are not opened. Compressed streams are always decompressed.
	MaxArchiveDepth int
}

var _ scamintel.Source = (*File)(nil)

// Messages yields the messages of the stream.
func (s *File) Messages(ctx context.Context, yield func(scamintel.Message, error) error) error {
	return s.messages(ctx, s.Content, s.Path, 0, yield)
}

func (s *File) messages(ctx context.Context, r io.Reader, path string, depth int, yield func(scamintel.Message, error) error) error {
	logger := logging.With().Str("path", path).Logger()

	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err == io.EOF {
		return nil
	}

	format, stream, err := archives.Identify(ctx, path, br)
	if stream == nil {
		stream = br
	}
	switch {
	case errors.Is(err, archives.NoMatch):
		return s.read(ctx, stream, path, yield)
	case err != nil:
		return err
	}

	if dec, ok := format.(archives.Decompressor); ok {
		if _, isArchive := format.(archives.Extractor); !isArchive {
			rc, err := dec.OpenReader(stream)
			if err != nil {
				logger.Warn().Err(err).Msg("skipping file: could not decompress")
				return nil
			}
			defer rc.Close()
			return s.messages(ctx, rc, strings.TrimSuffix(path, format.Extension()), depth, yield)
		}
	}

	ex, ok := format.(archives.Extractor)
	if !ok {
		logger.Debug().Str("format", format.Extension()).Msg("skipping file: unsupported format")
		return nil
	}
	if depth >= s.MaxArchiveDepth {
		logger.Warn().Int("max_archive_depth", s.MaxArchiveDepth).Msg("skipping archive: exceeds max archive depth")
		return nil
	}
	return ex.Extract(ctx, stream, func(ctx context.Context, f archives.FileInfo) error {
		if f.IsDir() {
			return nil
		}
		innerPath := path + InnerPathSeparator + f.NameInArchive
		inner, err := f.Open()
		if err != nil {
			logging.Warn().Err(err).Str("path", innerPath).Msg("skipping archive entry: could not open")
			return nil
		}
		defer inner.Close()
		return s.messages(ctx, inner, innerPath, depth+1, yield)
	})
}

// read yields the content of an uncompressed stream.
func (s *File) read(ctx context.Context, r io.Reader, path string, yield func(scamintel.Message, error) error) error {
	br := bufio.NewReader(r)

	head, _ := br.Peek(262)
	if isBinary(head) {
		logging.Debug().Str("path", path).Msg("skipping file: binary content")
		return nil
	}

	if !s.Lines {
		content, err := io.ReadAll(br)
		if err != nil {
			return err
		}
		if len(content) == 0 {
			return nil
		}
		return yield(s.message(string(content), path, 0), nil)
	}

	lineNumber := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lineNumber++
			text := strings.TrimRight(line, "\r\n")
			if text != "" {
				if yerr := yield(s.message(text, path, lineNumber), nil); yerr != nil {
					return yerr
				}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *File) message(text, path string, lineOffset int) scamintel.Message {
	msg := scamintel.Message{
		Text:       text,
		Source:     s.Source,
		Path:       path,
		LineOffset: lineOffset,
	}
	if path != "" {
		msg.Set(scamintel.MetaPath, path)
	}
	if lineOffset > 0 {
		msg.Set(scamintel.MetaLine, strconv.Itoa(lineOffset))
	}
	return msg
}

// isBinary reports whether head looks like media or an executable, which
// never carry readable messages.
func isBinary(head []byte) bool {
	return filetype.IsImage(head) ||
		filetype.IsVideo(head) ||
		filetype.IsAudio(head) ||
		filetype.IsFont(head) ||
		filetype.IsApplication(head)
}
