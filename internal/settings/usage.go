package settings

import (
	"fmt"
	"io"

	"pngopt/internal/domain/keys"
	"pngopt/internal/models"
	"pngopt/internal/parsing"
	"pngopt/internal/units"
)

// Usage writes the settings flag synopsis, one line per group.
func Usage(w io.Writer, indent string) {
	lines := []string{
		"[-" + keys.BackupOldPngFiles + "]",
		"[-" + keys.KeepInterlacing + "]",
		"[-" + keys.AvoidGreyWithSimpleTransparency + "]",
		"[-" + keys.IgnoreAnimatedGifs + "]",
		"[-" + keys.KeepFileDate + "]",
		"[-" + keys.KeepPixels + "]",
		"[-" + keys.KeepBackgroundColor + "][:R|K|F] [-" + keys.ForcedBackgroundColor + ":RRGGBB]",
		"[-" + keys.KeepTextualData + "][:R|K|F]     [-" + keys.ForcedTextKeyword + ":Foo] [-" + keys.ForcedTextData + ":Bar]",
		"[-" + keys.KeepPhysicalPixelDimensions + "][:R|K|F] [-" + keys.ForcedPixelsPerMeter + ":3000x2500]",
		"                                       [-" + keys.ForcedPixelsPerInch + ":72x72]",
		"[-" + keys.KeepFrameControl + "][:R|K|F]    [-" + keys.ForcedDelayNumerator + ":1] [-" + keys.ForcedDelayDenominator + ":30]",
	}
	for _, l := range lines {
		fmt.Fprintln(w, indent+l)
	}
}

// Describe renders st as "Name: value" lines for display.
func Describe(st models.Settings) []string {
	out := []string{
		fmt.Sprintf("%s: %t", keys.BackupOldPngFiles, st.BackupOldPngFiles),
		fmt.Sprintf("%s: %t", keys.KeepInterlacing, st.KeepInterlacing),
		fmt.Sprintf("%s: %t", keys.AvoidGreyWithSimpleTransparency, st.AvoidGreyWithSimpleTransparency),
		fmt.Sprintf("%s: %t", keys.IgnoreAnimatedGifs, st.IgnoreAnimatedGifs),
		fmt.Sprintf("%s: %t", keys.KeepFileDate, st.KeepFileDate),
		fmt.Sprintf("%s: %t", keys.KeepPixels, st.KeepPixels),
		fmt.Sprintf("%s: %v", keys.KeepBackgroundColor, st.BkgdOption),
	}

	if st.BkgdOption == models.ChunkForce {
		out = append(out, fmt.Sprintf("  %s: %s", keys.ForcedBackgroundColor, st.BkgdColor.Hex()))
	}

	out = append(out, fmt.Sprintf("%s: %v", keys.KeepTextualData, st.TextOption))
	if st.TextOption == models.ChunkForce {
		out = append(out,
			fmt.Sprintf("  %s: %q", keys.ForcedTextKeyword, st.TextKeyword),
			fmt.Sprintf("  %s: %q", keys.ForcedTextData, st.TextData))
	}

	out = append(out, fmt.Sprintf("%s: %v", keys.KeepPhysicalPixelDimensions, st.PhysOption))
	if st.PhysOption == models.ChunkForce {
		out = append(out, fmt.Sprintf("  %s: %s (%s ppi)", keys.ForcedPixelsPerMeter,
			parsing.FormatDimensions(st.PhysPpmX, st.PhysPpmY),
			parsing.FormatDimensions(units.PpiFromPpm(st.PhysPpmX), units.PpiFromPpm(st.PhysPpmY))))
	}

	out = append(out, fmt.Sprintf("%s: %v", keys.KeepFrameControl, st.FctlOption))
	if st.FctlOption == models.ChunkForce {
		out = append(out, fmt.Sprintf("  delay: %d/%d s", st.FctlDelayNum, st.FctlDelayDen))
	}
	return out
}
