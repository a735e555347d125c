// Package logging is the program logger.
package logging

import (
	"io"
	"os"
	"sync"

	"pngopt/internal/domain/consts"

	"github.com/rs/zerolog"
)

var (
	// Level is the debug level; D messages above it are dropped.
	Level int

	mu     sync.Mutex
	logger = newLogger(os.Stderr, true)
)

func newLogger(w io.Writer, color bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: "15:04:05",
		FormatLevel: func(i any) string {
			tag := consts.GreenSuccess
			switch i {
			case zerolog.LevelErrorValue:
				tag = consts.RedError
			case zerolog.LevelWarnValue:
				tag = consts.YellowWarning
			case zerolog.LevelDebugValue:
				tag = consts.PurpleDebug
			case zerolog.LevelInfoValue:
				tag = consts.BlueInfo
			}
			if !color {
				return stripColor(tag)
			}
			return tag
		},
	}
	return zerolog.New(cw).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// stripColor removes the color sequences of a console tag.
func stripColor(tag string) string {
	out := make([]byte, 0, len(tag))
	for i := 0; i < len(tag); i++ {
		if tag[i] == '\033' {
			for i < len(tag) && tag[i] != 'm' {
				i++
			}
			continue
		}
		out = append(out, tag[i])
	}
	return string(out)
}

// Setup redirects log output and sets the debug level.
func Setup(w io.Writer, color bool, debugLevel int) {
	mu.Lock()
	defer mu.Unlock()

	logger = newLogger(w, color)
	Level = debugLevel
}

// SetLevel changes the debug level.
func SetLevel(debugLevel int) {
	mu.Lock()
	defer mu.Unlock()
	Level = debugLevel
}

// I logs information.
func I(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Info().Msgf(format, args...)
}

// S logs a success.
func S(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.WithLevel(zerolog.NoLevel).Msgf(format, args...)
}

// W logs a warning.
func W(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Warn().Msgf(format, args...)
}

// E logs an error.
func E(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Error().Msgf(format, args...)
}

// D logs a debug message at debug level l (1-5).
func D(l int, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l > Level {
		return
	}
	logger.Debug().Int("lvl", l).Msgf(format, args...)
}
