// Package consts holds program-wide constant strings.
package consts

// Colors
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[96m"
	ColorWhite  = "\033[37m"
)

// Console tags
const (
	RedError      string = ColorRed + "[ERROR]" + ColorReset
	YellowWarning string = ColorYellow + "[Warning]" + ColorReset
	GreenSuccess  string = ColorGreen + "[Success]" + ColorReset
	PurpleDebug   string = ColorPurple + "[Debug]" + ColorReset
	BlueInfo      string = ColorCyan + "[Info]" + ColorReset
)

// Program
const (
	ProgramName      = "pngopt"
	ProgramVersion   = "2.6.2"
	DefaultSection   = "Engine"
	DefaultIniFile   = "PngOptimizer.ini"
	IniHeaderLine1   = "pngopt engine settings"
	IniHeaderLine2   = "Chunk options: 0=Remove, 1=Keep, 2=Force"
	SupportedExtGlob = "*.png|*.gif|*.bmp|*.tga"
)
