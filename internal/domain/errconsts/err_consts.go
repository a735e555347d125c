// Package errconsts holds constant error messages
package errconsts

// Settings file
const (
	SettingsLoadFail  = "failed to load settings file %q: %w"
	SettingsSaveFail  = "failed to save settings file %q: %w"
	SettingsCloseFail = "failed to close settings file %q: %w"
)

// Settings resolution
const (
	ResolveArgsFail  = "failed to resolve settings from command line: %w"
	ResolveStoreFail = "failed to resolve settings from section %q: %w"
)

// Input files
const (
	FileNotFound   = "file not found: %s"
	NoInputFiles   = "no input files given (use FILE arguments or -file)"
	FilePatternBad = "bad file pattern %q: %w"
)
