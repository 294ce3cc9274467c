package logger

import (
	"testing"

	"career-compass/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestInitialize(t *testing.T) {
	err := Initialize(config.LoggerConfig{Env: "production", Level: "debug"})
	assert.NoError(t, err)
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	err = Initialize(config.LoggerConfig{Env: "development", Level: "warn"})
	assert.NoError(t, err)
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))

	err = Initialize(config.LoggerConfig{Level: "loud"})
	assert.Error(t, err)
}
