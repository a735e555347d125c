package settings

import (
	"fmt"

	"pngopt/internal/argv"
	"pngopt/internal/domain/errconsts"
	"pngopt/internal/domain/keys"
	"pngopt/internal/models"
	"pngopt/internal/parsing"
	"pngopt/internal/units"
)

// argReader stops reading once a field fails.
type argReader struct {
	a   *argv.Args
	err error
}

// chunkOption resolves a Keep* flag: absent → def, bare → Keep, else parsed.
func (r *argReader) chunkOption(name string, def models.ChunkOption) models.ChunkOption {
	if r.err != nil || !r.a.HasFlag(name) {
		return def
	}
	raw := r.a.FlagString(name)
	if raw == "" {
		return models.ChunkKeep
	}
	o, err := parsing.ParseChunkOption(name, raw)
	if err != nil {
		r.err = err
		return def
	}
	return o
}

func (r *argReader) color(name string, def models.RGB) models.RGB {
	if r.err != nil || !r.a.HasFlag(name) {
		return def
	}
	c, err := parsing.ParseHexColor(name, r.a.FlagString(name))
	if err != nil {
		r.err = err
		return def
	}
	return c
}

func (r *argReader) dimensions(name string) (x, y uint32, ok bool) {
	if r.err != nil || !r.a.HasFlag(name) {
		return 0, 0, false
	}
	x, y, err := parsing.ParseDimensions(name, r.a.FlagString(name))
	if err != nil {
		r.err = err
		return 0, 0, false
	}
	return x, y, true
}

func (r *argReader) number(name string, def uint32) uint32 {
	if r.err != nil || !r.a.HasFlag(name) {
		return def
	}
	v, err := parsing.ParseUint(name, r.a.FlagString(name))
	if err != nil {
		r.err = err
		return def
	}
	return v
}

// FromArgs resolves settings from a parsed command line.
//
// Boolean fields are true when their flag is present. A Force chunk option
// reads its Forced* flags; otherwise those flags are ignored. When both
// -ForcedPixelsPerMeter and -ForcedPixelsPerInch are given, per-meter wins.
// Unrecognized flags are ignored.
//
// On a malformed value the error wraps a *parsing.FieldError and the returned
// Settings is the zero value.
func FromArgs(a *argv.Args) (models.Settings, error) {
	st := ArgDefaults()
	r := &argReader{a: a}

	st.BackupOldPngFiles = a.HasFlag(keys.BackupOldPngFiles)
	st.KeepInterlacing = a.HasFlag(keys.KeepInterlacing)
	st.AvoidGreyWithSimpleTransparency = a.HasFlag(keys.AvoidGreyWithSimpleTransparency)
	st.IgnoreAnimatedGifs = a.HasFlag(keys.IgnoreAnimatedGifs)
	st.KeepFileDate = a.HasFlag(keys.KeepFileDate)
	st.KeepPixels = a.HasFlag(keys.KeepPixels)

	st.BkgdOption = r.chunkOption(keys.KeepBackgroundColor, st.BkgdOption)
	if st.BkgdOption == models.ChunkForce {
		st.BkgdColor = r.color(keys.ForcedBackgroundColor, st.BkgdColor)
	}

	st.TextOption = r.chunkOption(keys.KeepTextualData, st.TextOption)
	if st.TextOption == models.ChunkForce {
		st.TextKeyword = a.FlagString(keys.ForcedTextKeyword)
		st.TextData = a.FlagString(keys.ForcedTextData)
	}

	st.PhysOption = r.chunkOption(keys.KeepPhysicalPixelDimensions, st.PhysOption)
	if st.PhysOption == models.ChunkForce {
		if x, y, ok := r.dimensions(keys.ForcedPixelsPerMeter); ok {
			st.PhysPpmX, st.PhysPpmY = x, y
		} else if x, y, ok := r.dimensions(keys.ForcedPixelsPerInch); ok {
			st.PhysPpmX, st.PhysPpmY = units.PpmFromPpi(x), units.PpmFromPpi(y)
		}
	}

	st.FctlOption = r.chunkOption(keys.KeepFrameControl, st.FctlOption)
	if st.FctlOption == models.ChunkForce {
		st.FctlDelayNum = r.number(keys.ForcedDelayNumerator, st.FctlDelayNum)
		st.FctlDelayDen = r.number(keys.ForcedDelayDenominator, st.FctlDelayDen)
	}

	if r.err != nil {
		return models.Settings{}, fmt.Errorf(errconsts.ResolveArgsFail, r.err)
	}
	return st, nil
}

// UnknownFlags returns the flags of a that are neither settings flags nor
// listed in extra.
func UnknownFlags(a *argv.Args, extra ...string) []string {
	var out []string
	for _, name := range a.FlagNames() {
		if KnownFlag(name) || containsFold(extra, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
