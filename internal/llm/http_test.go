package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSONSetsStandardHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	raw, code, err := PostJSON(context.Background(), nil, srv.URL, map[string]any{"a": 1},
		map[string]string{"Authorization": "Bearer k"}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
}

func TestPostJSONNon2xxCarriesBodySnippet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "insufficient quota"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	_, code, err := PostJSON(context.Background(), nil, srv.URL, map[string]any{}, nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Contains(t, err.Error(), "gateway returned 403")
	assert.Contains(t, err.Error(), "insufficient quota")
}

func TestBodySnippet(t *testing.T) {
	assert.Equal(t, "(empty body)", bodySnippet(nil))
	assert.Equal(t, "a b c", bodySnippet([]byte(" a\n b\t c ")))

	long := strings.Repeat("x", 500)
	got := bodySnippet([]byte(long))
	assert.Len(t, got, 203)
	assert.True(t, strings.HasSuffix(got, "..."))
}
