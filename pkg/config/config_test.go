package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
moderation:
  provider: anthropic
  model: claude-3-5-haiku-latest
  review_threshold: 0.25
  blocklist:
    spam:
      - buy followers
providers:
  anthropic:
    api_key: sk-test
media:
  max_video_duration: 45s
`

func TestLoad_FileDefaultsAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0600))
	t.Setenv("RATE_LIMIT_LIMIT", "2")

	require.NoError(t, Load(dir))
	cfg := GetConfig()

	assert.Equal(t, "anthropic", cfg.Moderation.Provider)
	assert.Equal(t, 0.25, cfg.Moderation.ReviewThreshold)
	assert.Equal(t, 0.6, cfg.Moderation.RejectThreshold)
	assert.Equal(t, 3, cfg.Moderation.MinTextLength)
	assert.Equal(t, []string{"buy followers"}, cfg.Moderation.Blocklist["spam"])
	assert.Equal(t, 45*time.Second, cfg.Media.MaxVideoDuration)
	assert.Equal(t, []float64{0.05, 0.2, 0.4, 0.6, 0.8, 0.95}, cfg.Media.Safety.FrameRatios)
	assert.Equal(t, 2, cfg.RateLimit.Limit)

	creds, err := cfg.Providers.Credentials("anthropic")
	require.NoError(t, err)
	assert.Equal(t, "sk-test", creds.ApiKey)
}

func TestValidate_RejectsInvertedThresholds(t *testing.T) {
	cfg := Config{
		Moderation: ModerationConfig{ReviewThreshold: 0.7, RejectThreshold: 0.6},
		Media:      MediaConfig{Classifier: ClassifierConfig{TopK: 5}},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_TopKFloor(t *testing.T) {
	cfg := Config{
		Moderation: ModerationConfig{ReviewThreshold: 0.3, RejectThreshold: 0.6},
		Media:      MediaConfig{Classifier: ClassifierConfig{TopK: 3}},
	}
	assert.ErrorContains(t, cfg.Validate(), "top_k")
}
