// Package docs resolves stored quote-file references into decoded text
// payloads for the extraction gateway. Bucket management, retention, and
// format parsing stay outside; the pipeline only ever sees text.
package docs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/llm"
)

// Source resolves quote files to document text.
type Source interface {
	Resolve(ctx context.Context, files []entity.QuoteFile) ([]llm.DocumentText, error)
}

// FSSource reads payloads from the local filesystem. An unreadable file is
// skipped with a warning rather than failing the batch; partial input is
// the common case. Zero readable files out of a non-empty set is an error.
type FSSource struct {
	Logger *slog.Logger
	// MaxBytes caps each payload so a large document cannot blow the
	// gateway's token budget. 0 means the default cap.
	MaxBytes int
}

const defaultMaxBytes = 50_000

func NewFSSource(logger *slog.Logger, maxBytes int) *FSSource {
	if logger == nil {
		logger = slog.Default()
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &FSSource{Logger: logger, MaxBytes: maxBytes}
}

func (s *FSSource) Resolve(ctx context.Context, files []entity.QuoteFile) ([]llm.DocumentText, error) {
	out := make([]llm.DocumentText, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ext := constants.NormalizeExt(filepath.Ext(f.StoragePath))
		if !constants.AllowedExt(ext) {
			s.Logger.Warn("docs.resolve.skipped", "path", f.StoragePath, "reason", "unsupported extension", "ext", ext)
			continue
		}
		raw, err := os.ReadFile(f.StoragePath)
		if err != nil {
			s.Logger.Warn("docs.resolve.skipped", "path", f.StoragePath, "error", err)
			continue
		}
		content := decodeText(raw, s.MaxBytes)
		if content == "" {
			s.Logger.Warn("docs.resolve.skipped", "path", f.StoragePath, "reason", "empty after decoding")
			continue
		}
		out = append(out, llm.DocumentText{
			Filename: f.Filename,
			Content:  content,
			Size:     f.FileSize,
		})
	}
	if len(files) > 0 && len(out) == 0 {
		return nil, fmt.Errorf("no readable documents among %d files", len(files))
	}
	s.Logger.Info("docs.resolved", "requested", len(files), "resolved", len(out))
	return out, nil
}

// decodeText trims the payload to the byte cap without splitting a rune
// and strips NUL bytes that confuse downstream prompting.
func decodeText(raw []byte, maxBytes int) string {
	if len(raw) > maxBytes {
		raw = raw[:maxBytes]
		for i := 0; i < utf8.UTFMax && len(raw) > 0; i++ {
			if r, size := utf8.DecodeLastRune(raw); r == utf8.RuneError && size == 1 {
				raw = raw[:len(raw)-1]
				continue
			}
			break
		}
	}
	return strings.TrimSpace(strings.ReplaceAll(string(raw), "\x00", ""))
}
