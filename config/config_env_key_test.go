package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{
			"maxRequestBodySize": "5MB",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"tokenSecret": "",
		},
		"blob": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_TOKENSECRET", want: "auth.tokenSecret"},
		{envKey: "BLOB_BUCKETURL", want: "blob.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
env:
  timezone: UTC
http:
  port: 8080
mealWindows:
  - name: Breakfast
    startHour: 7
    endHour: 12
store:
  driver: memory
auth:
  tokenTTL: 1h
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600))

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "firestore")

	cfg, err := LoadWithEnv[Config]("test", dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "firestore", cfg.Store.Driver)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	require.Len(t, cfg.MealWindows, 1)
	assert.Equal(t, MealWindowConfig{Name: "Breakfast", StartHour: 7, EndHour: 12}, cfg.MealWindows[0])

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	assert.Error(t, err)
}
