package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tetris "github.com/jauhararifin/termtetris"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil, lookupFrom(nil), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.width)
	assert.Equal(t, 30, cfg.height)
	assert.Equal(t, time.Second, cfg.updateInterval)
	assert.Equal(t, time.Second/30, cfg.frameInterval())
	assert.Equal(t, "termbox", cfg.backend)
	assert.False(t, cfg.debug)
	assert.Equal(t, zerolog.DebugLevel, cfg.logLevel)
	assert.Equal(t, tetris.DefaultGlyphs, cfg.glyphs())
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	env := map[string]string{
		"TETRIS_WIDTH":           "12",
		"TETRIS_HEIGHT":          "24",
		"TETRIS_UPDATE_INTERVAL": "500ms",
		"TETRIS_BACKEND":         "tcell",
		"TETRIS_PIECE_GLYPH":     "@",
	}
	cfg, err := loadConfig([]string{"-height", "18", "-fps", "60", "-block", "#", "-log-level", "warn"}, lookupFrom(env), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.width)
	assert.Equal(t, 18, cfg.height)
	assert.Equal(t, 500*time.Millisecond, cfg.updateInterval)
	assert.Equal(t, time.Second/60, cfg.frameInterval())
	assert.Equal(t, "tcell", cfg.backend)
	assert.Equal(t, zerolog.WarnLevel, cfg.logLevel)
	assert.Equal(t, tetris.Glyphs{Block: '#', Piece: '@', Empty: ' '}, cfg.glyphs())
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad env int", nil, map[string]string{"TETRIS_WIDTH": "wide"}},
		{"bad env duration", nil, map[string]string{"TETRIS_UPDATE_INTERVAL": "soon"}},
		{"bad env bool", nil, map[string]string{"TETRIS_DEBUG": "maybe"}},
		{"board too small", []string{"-width", "3"}, nil},
		{"zero fps", []string{"-fps", "0"}, nil},
		{"negative update", []string{"-update", "-1s"}, nil},
		{"wide glyph", []string{"-block", "##"}, nil},
		{"bad level", []string{"-log-level", "loud"}, nil},
		{"unknown flag", []string{"-speed", "9"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.args, lookupFrom(tt.env), io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestNewLoggerDisabled(t *testing.T) {
	cfg, err := loadConfig(nil, lookupFrom(nil), io.Discard)
	require.NoError(t, err)

	logger, closer, err := newLogger(cfg)
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNewLoggerWritesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	cfg, err := loadConfig([]string{"-log-file", path, "-log-level", "info"}, lookupFrom(nil), io.Discard)
	require.NoError(t, err)

	logger, closer, err := newLogger(cfg)
	require.NoError(t, err)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session":"`)
	assert.Contains(t, string(data), "shown")
	assert.NotContains(t, string(data), "hidden")
}
