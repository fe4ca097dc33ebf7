package logger

import (
	"path/filepath"
	"testing"

	"github.com/ron-layerx/sick-rats/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		log, err := New(config.NewDefaultLogConfig())
		require.NoError(t, err)
		log.Info().Msg("smoke test")
	})

	t.Run("file logging", func(t *testing.T) {
		cfg := config.NewDefaultLogConfig()
		cfg.LogFile = filepath.Join(t.TempDir(), "logs", "app.log")
		cfg.LogFormat = "json"

		log, err := New(cfg)
		require.NoError(t, err)
		log.Info().Msg("written to file")
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		cfg := config.NewDefaultLogConfig()
		cfg.LogLevel = "definitely-not-a-level"

		_, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}

func TestLogLevelParser(t *testing.T) {
	parser := NewLogLevelParser()

	level, err := parser.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	level, err = parser.ParseLevel("bogus")
	assert.Error(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestLogFormatParser(t *testing.T) {
	parser := NewLogFormatParser()

	assert.Equal(t, FormatJSON, parser.ParseFormat("json"))
	assert.Equal(t, FormatJSON, parser.ParseFormat("JSON"))
	assert.Equal(t, FormatConsole, parser.ParseFormat("console"))
	assert.Equal(t, FormatConsole, parser.ParseFormat("other"))
}
