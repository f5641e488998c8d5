package docs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

func writeTemp(t *testing.T, name, content string) entity.QuoteFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return entity.QuoteFile{Filename: name, StoragePath: path, FileSize: int64(len(content))}
}

func TestResolveReadsSupportedFiles(t *testing.T) {
	s := NewFSSource(nil, 0)
	files := []entity.QuoteFile{
		writeTemp(t, "acme.txt", "Steel Beams $12.50"),
		writeTemp(t, "benton.csv", "item,price\nrebar,9.00"),
	}

	texts, err := s.Resolve(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, texts, 2)
	assert.Equal(t, "acme.txt", texts[0].Filename)
	assert.Equal(t, "Steel Beams $12.50", texts[0].Content)
}

func TestResolveSkipsUnusableFiles(t *testing.T) {
	s := NewFSSource(nil, 0)
	files := []entity.QuoteFile{
		writeTemp(t, "quote.txt", "usable"),
		writeTemp(t, "scan.pdf", "binary"),                             // unsupported extension
		writeTemp(t, "blank.txt", "   \n"),                             // empty after decoding
		{Filename: "gone.txt", StoragePath: "/nonexistent/gone.txt"}, // unreadable
	}

	texts, err := s.Resolve(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.Equal(t, "quote.txt", texts[0].Filename)
}

func TestResolveAllUnusableIsAnError(t *testing.T) {
	s := NewFSSource(nil, 0)
	files := []entity.QuoteFile{
		{Filename: "gone.txt", StoragePath: "/nonexistent/gone.txt"},
	}

	_, err := s.Resolve(context.Background(), files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no readable documents")
}

func TestResolveEmptyInput(t *testing.T) {
	s := NewFSSource(nil, 0)
	texts, err := s.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, texts)
}

func TestResolveHonorsContextCancellation(t *testing.T) {
	s := NewFSSource(nil, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Resolve(ctx, []entity.QuoteFile{writeTemp(t, "a.txt", "x")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeTextCapsWithoutSplittingRunes(t *testing.T) {
	// cap lands mid-rune: the partial rune is trimmed, not mangled
	content := strings.Repeat("a", 9) + "é"
	got := decodeText([]byte(content), 10)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 9), got)
}

func TestDecodeTextStripsNULs(t *testing.T) {
	got := decodeText([]byte("a\x00b\x00c"), 100)
	assert.Equal(t, "abc", got)
}
