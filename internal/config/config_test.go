package config

import (
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("LOG_LEVEL")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("LOG_LEVEL")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestApply_InvalidLevelFallsBack(t *testing.T) {
	cfg := Config{LogLevel: "nonsense"}
	cfg.Apply()
	assert.Equal(t, log.InfoLevel, log.GetLevel())

	cfg = Config{LogLevel: "warn"}
	cfg.Apply()
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	// Restore the default for other tests.
	log.SetLevel(log.InfoLevel)
}
