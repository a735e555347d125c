// Package engine defines what the settings are handed to.
package engine

import (
	"context"

	"pngopt/internal/models"
	"pngopt/internal/utils/logging"
)

// Optimizer processes files under a resolved policy.
type Optimizer interface {
	OptimizeFiles(ctx context.Context, st models.Settings, paths []string) error
}

// TextType categorizes progress messages.
type TextType int

const (
	TextInfo TextType = iota
	TextSuccess
	TextWarning
	TextError
	TextDebug
)

// Sink receives progress messages.
type Sink interface {
	Notify(tt TextType, text string)
}

// LogSink renders messages through the program logger.
type LogSink struct{}

// Notify implements Sink.
func (LogSink) Notify(tt TextType, text string) {
	switch tt {
	case TextSuccess:
		logging.S("%s", text)
	case TextWarning:
		logging.W("%s", text)
	case TextError:
		logging.E("%s", text)
	case TextDebug:
		logging.D(1, "%s", text)
	default:
		logging.I("%s", text)
	}
}
