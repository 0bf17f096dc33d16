package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	tetris "github.com/jauhararifin/termtetris"
	"github.com/jauhararifin/termtetris/terminal"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run plays one game and returns the process exit status. Every deferred
// teardown, the terminal restore included, runs before the status is used.
func run(args []string) int {
	_ = godotenv.Load()

	cfg, err := loadConfig(args, os.LookupEnv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "playtetris: %v\n", err)
		return 1
	}

	logger, logCloser, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "playtetris: %v\n", err)
		return 1
	}
	defer logCloser.Close()

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().
		Int("width", cfg.width).
		Int("height", cfg.height).
		Int64("seed", seed).
		Str("backend", cfg.backend).
		Msg("playtetris start")

	game := tetris.NewGame(
		tetris.WithSize(cfg.width, cfg.height),
		tetris.WithGetter(tetris.NewRandomGetter(seed)),
		tetris.WithCompleteHandler(tetris.CompleteHandlerFunc(func(rows int) {
			if rows > 0 {
				logger.Info().Int("rows", rows).Msg("rows cleared")
			}
		})),
	)

	term, err := terminal.Open(cfg.backend, logger)
	if err != nil {
		logger.Error().Err(err).Msg("open terminal")
		fmt.Fprintf(os.Stderr, "playtetris: %v\n", err)
		return 1
	}

	loop := tetris.NewLoop(game, term, term,
		tetris.WithUpdateInterval(cfg.updateInterval),
		tetris.WithFrameInterval(cfg.frameInterval()),
		tetris.WithGlyphs(cfg.glyphs()),
		tetris.WithLogger(logger),
	)
	return play(term, loop, logger, os.Stderr)
}

type runner interface {
	Run() (tetris.Outcome, error)
}

// play runs the loop and restores the terminal on every way out, a panic
// included. Diagnostics are written after the restore.
func play(term terminal.Terminal, loop runner, logger zerolog.Logger, stderr io.Writer) (status int) {
	var runErr error
	defer func() {
		r := recover()
		if closeErr := term.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("close terminal")
		}
		switch {
		case r != nil:
			logger.Error().Interface("panic", r).Msg("internal panic")
			fmt.Fprintf(stderr, "internal panic: %v\n", r)
			status = 1
		case runErr != nil:
			logger.Error().Err(runErr).Msg("internal error")
			fmt.Fprintf(stderr, "internal error: %v\n", runErr)
			status = 1
		}
	}()

	outcome, err := loop.Run()
	if err != nil {
		runErr = err
		return 1
	}
	logger.Info().Stringer("outcome", outcome).Msg("playtetris stop")
	return 0
}

func (c config) glyphs() tetris.Glyphs {
	block, _ := utf8.DecodeRuneInString(c.block)
	piece, _ := utf8.DecodeRuneInString(c.piece)
	empty, _ := utf8.DecodeRuneInString(c.empty)
	return tetris.Glyphs{Block: block, Piece: piece, Empty: empty}
}
