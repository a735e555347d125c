// Package keys holds the flag and setting names used on the command line,
// in the INI settings file and in Viper.
package keys

// Engine settings (command-line flag name == INI key name).
const (
	BackupOldPngFiles               string = "BackupOldPngFiles"
	KeepInterlacing                 string = "KeepInterlacing"
	AvoidGreyWithSimpleTransparency string = "AvoidGreyWithSimpleTransparency"
	IgnoreAnimatedGifs              string = "IgnoreAnimatedGifs"
	KeepFileDate                    string = "KeepFileDate"
	KeepPixels                      string = "KeepPixels"

	KeepBackgroundColor   string = "KeepBackgroundColor"
	ForcedBackgroundColor string = "ForcedBackgroundColor"

	KeepTextualData   string = "KeepTextualData"
	ForcedTextKeyword string = "ForcedTextKeyword"
	ForcedTextData    string = "ForcedTextData"

	KeepPhysicalPixelDimensions string = "KeepPhysicalPixelDimensions"
	ForcedPixelsPerMeter        string = "ForcedPixelsPerMeter"
	ForcedPixelsPerInch         string = "ForcedPixelsPerInch" // Command line only

	KeepFrameControl       string = "KeepFrameControl"
	ForcedDelayNumerator   string = "ForcedDelayNumerator"
	ForcedDelayDenominator string = "ForcedDelayDenominator"
)

// Command-line only flags.
const (
	File         string = "file"
	Recurs       string = "recurs"
	Help         string = "help"
	Version      string = "version"
	SettingsFlag string = "settings" // -settings[:PATH] reads the INI file instead
	Debug        string = "debug"    // -debug:N overrides the debug level
)

// Viper keys (env: PNGOPT_DEBUG_LEVEL, ...).
const (
	EnvPrefix       string = "PNGOPT"
	DebugLevel      string = "debug-level"
	SettingsFile    string = "settings-file"
	SettingsSection string = "settings-section"
)
