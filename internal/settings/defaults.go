// Package settings resolves engine settings from the command line or an INI
// section, and writes them back.
package settings

import (
	"strings"

	"pngopt/internal/domain/keys"
	"pngopt/internal/models"
)

// Each source has its own defaults. They differ on purpose: a missing
// -BackupOldPngFiles flag means "no backup", while a settings file without
// the key means "backup".

// ArgDefaults returns the values used for flags absent from the command line.
func ArgDefaults() models.Settings {
	return models.Settings{}
}

// StoreDefaults returns the values used for keys absent from the INI section.
func StoreDefaults() models.Settings {
	return models.Settings{
		BackupOldPngFiles: true,
		FctlOption:        models.ChunkKeep,
		FctlDelayNum:      1,
		FctlDelayDen:      10,
	}
}

// knownFlags lists every flag read by FromArgs, case-folded.
var knownFlags = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, k := range []string{
		keys.BackupOldPngFiles,
		keys.KeepInterlacing,
		keys.AvoidGreyWithSimpleTransparency,
		keys.IgnoreAnimatedGifs,
		keys.KeepFileDate,
		keys.KeepPixels,
		keys.KeepBackgroundColor,
		keys.ForcedBackgroundColor,
		keys.KeepTextualData,
		keys.ForcedTextKeyword,
		keys.ForcedTextData,
		keys.KeepPhysicalPixelDimensions,
		keys.ForcedPixelsPerMeter,
		keys.ForcedPixelsPerInch,
		keys.KeepFrameControl,
		keys.ForcedDelayNumerator,
		keys.ForcedDelayDenominator,
	} {
		m[strings.ToLower(k)] = struct{}{}
	}
	return m
}()

// KnownFlag reports whether name is an engine settings flag.
func KnownFlag(name string) bool {
	_, ok := knownFlags[strings.ToLower(name)]
	return ok
}
