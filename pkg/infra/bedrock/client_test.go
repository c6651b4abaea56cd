package bedrock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_StaticCredentials(t *testing.T) {
	cfg, err := LoadConfig(context.Background(), Options{
		AccessKey: "AKIA",
		SecretKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, defaultRegion, cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIA", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestNewRuntime_RegionOverride(t *testing.T) {
	rt, err := NewRuntime(context.Background(), Options{AccessKey: "a", SecretKey: "b", Region: "eu-west-1"})
	require.NoError(t, err)
	assert.NotNil(t, rt)
}
