package gateway

import "time"

// Config holds the connection settings for an OpenAI-compatible
// chat/completions gateway.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
	// Lenient enables the sanitize-then-revalidate fallback when the tool
	// payload misses the strict schema on optional fields.
	Lenient bool
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Timeout <= 0 {
		c.Timeout = 45 * time.Second
	}
}
