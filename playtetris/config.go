package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/jauhararifin/termtetris/terminal"
)

type config struct {
	width, height  int
	updateInterval time.Duration
	fps            int
	seed           int64
	backend        string
	debug          bool
	logFile        string
	logLevel       zerolog.Level
	block          string
	piece          string
	empty          string
}

// loadConfig reads TETRIS_* variables through lookup for defaults and lets the
// command line override them.
func loadConfig(args []string, lookup func(string) (string, bool), output io.Writer) (config, error) {
	env := envReader{lookup: lookup}
	cfg := config{
		width:          env.int("TETRIS_WIDTH", 20),
		height:         env.int("TETRIS_HEIGHT", 30),
		updateInterval: env.duration("TETRIS_UPDATE_INTERVAL", time.Second),
		fps:            env.int("TETRIS_FPS", 30),
		seed:           int64(env.int("TETRIS_SEED", 0)),
		backend:        env.string("TETRIS_BACKEND", terminal.BackendTermbox),
		debug:          env.bool("TETRIS_DEBUG", false),
		logFile:        env.string("TETRIS_LOG_FILE", ""),
		block:          env.string("TETRIS_BLOCK_GLYPH", "X"),
		piece:          env.string("TETRIS_PIECE_GLYPH", "O"),
		empty:          env.string("TETRIS_EMPTY_GLYPH", " "),
	}
	logLevel := env.string("TETRIS_LOG_LEVEL", "debug")
	if env.err != nil {
		return config{}, env.err
	}

	fs := flag.NewFlagSet("playtetris", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.width, "width", cfg.width, "board width in cells")
	fs.IntVar(&cfg.height, "height", cfg.height, "board height in cells")
	fs.DurationVar(&cfg.updateInterval, "update", cfg.updateInterval, "gravity interval")
	fs.IntVar(&cfg.fps, "fps", cfg.fps, "frames drawn per second")
	fs.Int64Var(&cfg.seed, "seed", cfg.seed, "piece sequence seed, 0 picks one from the clock")
	fs.StringVar(&cfg.backend, "backend", cfg.backend, "terminal backend: termbox or tcell")
	fs.BoolVar(&cfg.debug, "debug", cfg.debug, "write a debug log to the temp directory")
	fs.StringVar(&cfg.logFile, "log-file", cfg.logFile, "write the log to this file")
	fs.StringVar(&logLevel, "log-level", logLevel, "log level")
	fs.StringVar(&cfg.block, "block", cfg.block, "glyph for settled blocks")
	fs.StringVar(&cfg.piece, "piece", cfg.piece, "glyph for the falling piece")
	fs.StringVar(&cfg.empty, "empty", cfg.empty, "glyph for empty cells")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return config{}, fmt.Errorf("log level: %w", err)
	}
	cfg.logLevel = level

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.width < 4 || c.height < 4 {
		return fmt.Errorf("board must be at least 4x4, got %dx%d", c.width, c.height)
	}
	if c.updateInterval <= 0 {
		return fmt.Errorf("update interval must be positive, got %v", c.updateInterval)
	}
	if c.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.fps)
	}
	for name, glyph := range map[string]string{"block": c.block, "piece": c.piece, "empty": c.empty} {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("%s glyph must be a single character, got %q", name, glyph)
		}
	}
	return nil
}

func (c config) frameInterval() time.Duration {
	return time.Second / time.Duration(c.fps)
}

type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) string(key, def string) string {
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (e *envReader) int(key string, def int) int {
	v := e.string(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return n
}

func (e *envReader) bool(key string, def bool) bool {
	v := e.string(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return b
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	v := e.string(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return d
}

func (e *envReader) fail(key string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("%s: %w", key, err)
	}
}
