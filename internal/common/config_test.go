package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := LoadConfig()
	cfg.Database.DSN = "postgres://localhost/procure"
	cfg.LLM.APIKey = "sk-test"
	return cfg
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, 4, cfg.Processing.Workers)
	assert.Equal(t, 10*time.Minute, cfg.Processing.StaleClaimAfter)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GRPC_ADDR", ":9999")
	t.Setenv("PROC_STALE_AFTER", "20m")
	t.Setenv("LLM_TEMPERATURE", "0.3")
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, ":9999", cfg.Server.GRPCAddr)
	assert.Equal(t, 20*time.Minute, cfg.Processing.StaleClaimAfter)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, int32(20), cfg.Database.MaxConns, "unparseable values fall back to defaults")
}

func TestValidateRequiredFields(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.LLM.APIKey = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateStaleClaimMustExceedLLMTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Processing.StaleClaimAfter = 30 * time.Second
	cfg.LLM.Timeout = 45 * time.Second
	assert.Error(t, cfg.Validate(), "a live extraction must outlast its claim window")
}
