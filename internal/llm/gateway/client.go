package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harshmriduhash/iq-procure-assist/internal/llm"
)

const extractToolName = "extract_vendor_prices"

// Client talks to an OpenAI-compatible chat/completions endpoint. It
// implements both llm.PriceExtractor (tool-forced structured output) and
// llm.MemoWriter (plain text completion).
type Client struct {
	cfg Config
	hc  *http.Client
	log *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
		log: logger,
	}
}

// ExtractPrices implements llm.PriceExtractor. The tool call is forced, so
// a response without one is a malformed payload, not a fallback path.
func (c *Client) ExtractPrices(ctx context.Context, docs []llm.DocumentText) (llm.RawExtraction, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	var textLen int
	for _, d := range docs {
		textLen += len(d.Content)
	}
	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"docs", len(docs),
		"text_len", textLen,
	)

	schema := llm.BuildExtractionJSONSchema()
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildExtractionSystemPrompt()},
			{"role": "user", "content": llm.BuildExtractionUserPrompt(docs)},
		},
		"tools": []map[string]any{
			{
				"type": "function",
				"function": map[string]any{
					"name":        extractToolName,
					"description": "Extract vendor pricing data from documents",
					"parameters":  schema,
				},
			},
		},
		"tool_choice": map[string]any{
			"type":     "function",
			"function": map[string]any{"name": extractToolName},
		},
	}

	raw, _, err := llm.PostJSON(ctx, c.hc, c.endpoint(), body, c.headers(), c.log)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawExtraction{}, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				ToolCalls []struct {
					Function struct {
						Name      string `json:"name"`
						Arguments string `json:"arguments"`
					} `json:"function"`
				} `json:"tool_calls"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawExtraction{}, raw, fmt.Errorf("decode gateway response: %w", err)
	}
	if len(cc.Choices) == 0 || len(cc.Choices[0].Message.ToolCalls) == 0 {
		c.log.Error("llm.extract.no_tool_call",
			"req_id", rid, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawExtraction{}, raw, fmt.Errorf("no %s tool call in gateway response", extractToolName)
	}
	payload := []byte(strings.TrimSpace(cc.Choices[0].Message.ToolCalls[0].Function.Arguments))

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(schema, payload); err != nil {
		if !c.cfg.Lenient {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.RawExtraction{}, payload, fmt.Errorf("schema validation failed: %w", err)
		}
		// Try a lenient sanitize: drop/normalize optional offenders and re-validate.
		cleaned, dropped, sErr := llm.SanitizePayload(payload)
		if sErr != nil {
			c.log.Error("llm.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.RawExtraction{}, payload, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.RawExtraction{}, payload, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.log.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		payload = cleaned
	}

	var out llm.RawExtraction
	if err := json.Unmarshal(payload, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawExtraction{}, payload, fmt.Errorf("unmarshal extraction: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"items", len(out.Items),
		"vendors", len(out.Vendors),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, payload, nil
}

// WriteMemo implements llm.MemoWriter via a plain chat completion.
func (c *Client) WriteMemo(ctx context.Context, req llm.MemoRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.memo.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"title", req.Title,
		"items", req.ItemCount,
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildMemoSystemPrompt()},
			{"role": "user", "content": llm.BuildMemoUserPrompt(req)},
		},
	}

	raw, _, err := llm.PostJSON(ctx, c.hc, c.endpoint(), body, c.headers(), c.log)
	if err != nil {
		c.log.Error("llm.memo.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode gateway response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in gateway response")
	}
	memo := strings.TrimSpace(cc.Choices[0].Message.Content)
	if memo == "" {
		return "", fmt.Errorf("no memo content generated")
	}

	c.log.Info("llm.memo.ok",
		"req_id", rid,
		"memo_bytes", len(memo),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return memo, nil
}

func (c *Client) endpoint() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
}

func (c *Client) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
}
