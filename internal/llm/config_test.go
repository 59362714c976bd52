package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskScheduleDraft))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HEARTHPLAN_LLM_ENABLED", "true")
	t.Setenv("HEARTHPLAN_LLM_ENDPOINT", "http://model.local:8080")
	t.Setenv("HEARTHPLAN_LLM_MODEL", "qwen2.5")
	t.Setenv("HEARTHPLAN_LLM_TIMEOUT_MS", "5000")
	t.Setenv("HEARTHPLAN_LLM_MAX_RETRIES", "2")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://model.local:8080", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 2, cfg.MaxRetries)

	// Task-level timeout still wins over the global one.
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskScheduleDraft))
	assert.Equal(t, 5000, cfg.TaskTimeout("unknown_task"))
}
