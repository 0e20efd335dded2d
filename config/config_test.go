package config

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.True(t, cfg.Output.CompressPDF)
	assert.Equal(t, SourceRandom, cfg.Inventory.Source)
	assert.Equal(t, "./inventory.db", cfg.Inventory.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"output dir", "LCABOT_OUTPUT_DIR", "/tmp/out", func(c Config) any { return c.Output.Dir }, "/tmp/out"},
		{"source", "LCABOT_INVENTORY_SOURCE", "sqlite", func(c Config) any { return c.Inventory.Source }, "sqlite"},
		{"compress", "LCABOT_OUTPUT_COMPRESS_PDF", "false", func(c Config) any { return c.Output.CompressPDF }, false},
		{"log level", "LCABOT_LOG_LEVEL", "debug", func(c Config) any { return c.Log.Level }, "debug"},
		{"server port", "LCABOT_SERVER_PORT", "9090", func(c Config) any { return c.Server.Port }, "9090"},
		{"platform PORT", "PORT", "7070", func(c Config) any { return c.Server.Port }, "7070"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			viper.SetEnvPrefix("LCABOT")
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			viper.AutomaticEnv()
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.field(cfg))
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	viper.Reset()
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(`
inventory:
  source: file
  file: widget.yaml
output:
  dir: reports
`)))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceFile, cfg.Inventory.Source)
	assert.Equal(t, "widget.yaml", cfg.Inventory.File)
	assert.Equal(t, "reports", cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", "json")
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	cl := ComponentLogger(logger, "runner")
	cl.Warn().Msg("kept")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "runner", entry["component"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "loud", "console")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}
