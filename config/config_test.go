package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"COFFEESHOP_NAME", "COFFEESHOP_LOG_LEVEL", "COFFEESHOP_LOG_DEVELOPMENT"} {
		t.Setenv(key, "unset")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "Coffee Heaven", cfg.ShopName)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.LogDevelopment)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("COFFEESHOP_NAME", "Bean There")
	t.Setenv("COFFEESHOP_LOG_LEVEL", "debug")
	t.Setenv("COFFEESHOP_LOG_DEVELOPMENT", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "Bean There", cfg.ShopName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDevelopment)
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("COFFEESHOP_LOG_DEVELOPMENT", "sometimes")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(Config{LogLevel: "error"})
	require.NoError(t, err)
	defer logger.Sync()

	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))

	_, err = NewLogger(Config{LogLevel: "chatty"})
	assert.Error(t, err)
}
