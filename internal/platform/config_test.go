package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfigMissing(t *testing.T) {
	cfg, err := loadFileConfig(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, cfg)
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	data := []byte("model: gpt-4o\ntemperature: 0.2\nmax_tokens: 800\ntimeout: 10s\nbase_url: https://example.test/v1\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0600))

	cfg, err := loadFileConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 800, cfg.MaxTokens)
	assert.Equal(t, "https://example.test/v1", cfg.BaseURL)

	d, err := cfg.timeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, d)
}

func TestLoadFileConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("model: [broken"), 0600))

	_, err := loadFileConfig(dir)
	assert.Error(t, err)
}

func TestTimeoutDurationInvalid(t *testing.T) {
	cfg := fileConfig{Timeout: "not-a-duration"}
	_, err := cfg.timeoutDuration()
	assert.Error(t, err)
}

func TestResolveAIConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	data := []byte("model: file-model\nmax_tokens: 800\ntimeout: 10s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0600))

	o := defaultOptions()
	WithModel("option-model")(o)
	WithTemperature(0.9)(o)

	cfg, err := resolveAIConfig(dir, o)
	require.NoError(t, err)

	// Options beat the file.
	assert.Equal(t, "option-model", cfg.Model)
	assert.Equal(t, 0.9, cfg.Temperature)
	// The file beats the client defaults.
	assert.Equal(t, 800, cfg.MaxTokens)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	// Unset everywhere stays zero; the client applies its defaults.
	assert.Empty(t, cfg.BaseURL)
}

func TestResolveAIConfigNoFile(t *testing.T) {
	o := defaultOptions()
	cfg, err := resolveAIConfig(t.TempDir(), o)
	require.NoError(t, err)
	assert.Empty(t, cfg.Model)
	assert.Zero(t, cfg.Timeout)
}
