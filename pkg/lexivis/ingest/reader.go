package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cognicore/lexivis/pkg/lexivis/internalerr"
)

// Reader loads chapter files and splits them into raw token streams.
// Plain text and HTML chapters are supported; the format is chosen by
// file extension.
type Reader struct {
	Logger *slog.Logger
}

// Chapter is one loaded source before sanitization
type Chapter struct {
	Path   string
	Tokens []string
}

// ReadChapters reads every path in order. The first failure aborts the
// read and is returned wrapped with the offending path. A missing file
// matches both internalerr.ErrNotFound and fs.ErrNotExist. Chapters that
// are not valid UTF-8 fail with internalerr.ErrUnsupported whatever their
// format.
func (r *Reader) ReadChapters(ctx context.Context, paths []string) ([]Chapter, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("read chapters: no paths: %w", internalerr.ErrInvalidInput)
	}

	chapters := make([]Chapter, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := r.readText(path)
		if err != nil {
			return nil, fmt.Errorf("read chapter %s: %w", path, err)
		}
		tokens := Tokenize(text)
		r.logger().Debug("chapter loaded", "path", path, "raw_tokens", len(tokens))
		chapters = append(chapters, Chapter{Path: path, Tokens: tokens})
	}
	return chapters, nil
}

// RawTokens returns the token streams of chapters, index-aligned.
func RawTokens(chapters []Chapter) [][]string {
	out := make([][]string, len(chapters))
	for i, ch := range chapters {
		out[i] = ch.Tokens
	}
	return out
}

func (r *Reader) readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", internalerr.ErrNotFound, err)
		}
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("not valid UTF-8: %w", internalerr.ErrUnsupported)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return ExtractHTMLText(bytes.NewReader(data))
	default:
		return string(data), nil
	}
}

func (r *Reader) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
