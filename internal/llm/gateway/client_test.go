package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmriduhash/iq-procure-assist/internal/llm"
)

// toolResponse wraps tool-call arguments in the chat/completions envelope.
func toolResponse(arguments string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{
				"message": map[string]any{
					"tool_calls": []map[string]any{
						{
							"function": map[string]any{
								"name":      extractToolName,
								"arguments": arguments,
							},
						},
					},
				},
			},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, lenient bool, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Lenient: lenient,
	}, nil)
}

var testDocs = []llm.DocumentText{
	{Filename: "acme.txt", Content: "Steel Beams $12.50/ton"},
}

func TestExtractPricesHappyPath(t *testing.T) {
	var gotReq map[string]any
	c := newTestClient(t, false, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(toolResponse(`{
			"items": [
				{"item_name": "Steel Beams", "unit": "ton", "vendor_a_price": 12.5, "vendor_b_price": 11.8}
			],
			"vendors": [{"name": "Acme", "contact": "acme@example.com"}]
		}`)))
	})

	raw, payload, err := c.ExtractPrices(context.Background(), testDocs)
	require.NoError(t, err)
	require.Len(t, raw.Items, 1)

	assert.Equal(t, "Steel Beams", raw.Items[0].ItemName)
	assert.Equal(t, "ton", raw.Items[0].Unit)
	require.NotNil(t, raw.Items[0].VendorAPrice)
	assert.Equal(t, 12.5, *raw.Items[0].VendorAPrice)
	assert.Nil(t, raw.Items[0].VendorCPrice)
	require.Len(t, raw.Vendors, 1)
	assert.Equal(t, "Acme", raw.Vendors[0].Name)
	assert.NotEmpty(t, payload)

	// the tool call must be forced, never optional
	tc := gotReq["tool_choice"].(map[string]any)
	assert.Equal(t, "function", tc["type"])
	assert.Equal(t, extractToolName, tc["function"].(map[string]any)["name"])
}

func TestExtractPricesMissingToolCallIsAnError(t *testing.T) {
	c := newTestClient(t, true, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"I could not find any prices."}}]}`))
	})

	_, _, err := c.ExtractPrices(context.Background(), testDocs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extract_vendor_prices tool call")
}

func TestExtractPricesStrictRejectsSchemaViolations(t *testing.T) {
	c := newTestClient(t, false, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(toolResponse(`{
			"items": [{"item_name": "Steel", "vendor_a_price": "$12.50"}]
		}`)))
	})

	_, _, err := c.ExtractPrices(context.Background(), testDocs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestExtractPricesLenientSanitizesAndAccepts(t *testing.T) {
	c := newTestClient(t, true, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(toolResponse(`{
			"items": [
				{"item_name": "Steel", "vendor_a_price": "$12.50", "confidence": 0.9},
				{"unit": "ea", "vendor_b_price": 3}
			],
			"vendors": [{"name": "Acme"}],
			"notes": "extracted from two documents"
		}`)))
	})

	raw, _, err := c.ExtractPrices(context.Background(), testDocs)
	require.NoError(t, err)

	// quoted price coerced, unknown keys and the nameless row dropped
	require.Len(t, raw.Items, 1)
	require.NotNil(t, raw.Items[0].VendorAPrice)
	assert.Equal(t, 12.5, *raw.Items[0].VendorAPrice)
}

func TestExtractPricesNon2xx(t *testing.T) {
	c := newTestClient(t, true, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, _, err := c.ExtractPrices(context.Background(), testDocs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited", "the gateway's error body is surfaced")
}

func TestWriteMemo(t *testing.T) {
	c := newTestClient(t, false, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotContains(t, req, "tools", "memo is a plain completion")
		w.Write([]byte(`{"choices":[{"message":{"content":"  Recommend Benton for rebar.  "}}]}`))
	})

	memo, err := c.WriteMemo(context.Background(), llm.MemoRequest{
		Title:        "Q3 steel order",
		ItemCount:    2,
		VendorCount:  3,
		TotalDollars: "20.80",
	})
	require.NoError(t, err)
	assert.Equal(t, "Recommend Benton for rebar.", memo)
}

func TestWriteMemoEmptyContentIsAnError(t *testing.T) {
	c := newTestClient(t, false, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
	})

	_, err := c.WriteMemo(context.Background(), llm.MemoRequest{Title: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no memo content")
}
