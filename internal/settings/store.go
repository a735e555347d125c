package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pngopt/internal/domain/errconsts"
	"pngopt/internal/domain/keys"
	"pngopt/internal/inistore"
	"pngopt/internal/models"
	"pngopt/internal/parsing"
)

// storeReader stops reading once a field fails.
type storeReader struct {
	s   *inistore.Store
	err error
}

func (r *storeReader) boolean(key string, def bool) bool {
	if r.err != nil {
		return def
	}
	v, err := r.s.GetBool(key, def)
	if err != nil {
		r.err = err
		return def
	}
	return v
}

func (r *storeReader) number(key string, def uint32) uint32 {
	if r.err != nil {
		return def
	}
	v, err := r.s.GetUint(key, def)
	if err != nil {
		r.err = err
		return def
	}
	return v
}

// raw returns the value of key, or "" when absent or failed earlier.
func (r *storeReader) raw(key string) string {
	if r.err != nil {
		return ""
	}
	return strings.TrimSpace(r.s.GetString(key, ""))
}

func (r *storeReader) chunkOption(key string, def models.ChunkOption) models.ChunkOption {
	raw := r.raw(key)
	if raw == "" {
		return def
	}
	o, err := parsing.ParseChunkOption(key, raw)
	if err != nil {
		r.err = err
		return def
	}
	return o
}

func (r *storeReader) color(key string, def models.RGB) models.RGB {
	raw := r.raw(key)
	if raw == "" {
		return def
	}
	c, err := parsing.ParseHexColor(key, raw)
	if err != nil {
		r.err = err
		return def
	}
	return c
}

func (r *storeReader) dimensions(key string, defX, defY uint32) (uint32, uint32) {
	raw := r.raw(key)
	if raw == "" {
		return defX, defY
	}
	x, y, err := parsing.ParseDimensions(key, raw)
	if err != nil {
		r.err = err
		return defX, defY
	}
	return x, y
}

// FromStore resolves settings from the store's section.
//
// Missing keys take StoreDefaults values. Every stored value is read,
// whatever its chunk option. Chunk options are stored as 0|1|2; the R|K|F
// aliases are accepted as well.
//
// On a malformed value the error wraps a *parsing.FieldError and the returned
// Settings is the zero value.
func FromStore(s *inistore.Store) (models.Settings, error) {
	st := StoreDefaults()
	r := &storeReader{s: s}

	st.BackupOldPngFiles = r.boolean(keys.BackupOldPngFiles, st.BackupOldPngFiles)
	st.KeepInterlacing = r.boolean(keys.KeepInterlacing, st.KeepInterlacing)
	st.AvoidGreyWithSimpleTransparency = r.boolean(keys.AvoidGreyWithSimpleTransparency, st.AvoidGreyWithSimpleTransparency)
	st.IgnoreAnimatedGifs = r.boolean(keys.IgnoreAnimatedGifs, st.IgnoreAnimatedGifs)
	st.KeepFileDate = r.boolean(keys.KeepFileDate, st.KeepFileDate)
	st.KeepPixels = r.boolean(keys.KeepPixels, st.KeepPixels)

	st.BkgdOption = r.chunkOption(keys.KeepBackgroundColor, st.BkgdOption)
	st.BkgdColor = r.color(keys.ForcedBackgroundColor, st.BkgdColor)

	st.TextOption = r.chunkOption(keys.KeepTextualData, st.TextOption)
	if r.err == nil {
		st.TextKeyword = s.GetString(keys.ForcedTextKeyword, st.TextKeyword)
		st.TextData = s.GetString(keys.ForcedTextData, st.TextData)
	}

	// Only pixels per meter are stored
	st.PhysOption = r.chunkOption(keys.KeepPhysicalPixelDimensions, st.PhysOption)
	st.PhysPpmX, st.PhysPpmY = r.dimensions(keys.ForcedPixelsPerMeter, st.PhysPpmX, st.PhysPpmY)

	st.FctlOption = r.chunkOption(keys.KeepFrameControl, st.FctlOption)
	st.FctlDelayNum = r.number(keys.ForcedDelayNumerator, st.FctlDelayNum)
	st.FctlDelayDen = r.number(keys.ForcedDelayDenominator, st.FctlDelayDen)

	if r.err != nil {
		return models.Settings{}, fmt.Errorf(errconsts.ResolveStoreFail, s.Section(), r.err)
	}
	return st, nil
}

// ToStore writes every field of st into the store's section.
//
// Forced values are written even when their option is not Force, so that
// FromStore(ToStore(st)) == st for any st.
func ToStore(st models.Settings, s *inistore.Store) {
	s.SetBool(keys.BackupOldPngFiles, st.BackupOldPngFiles)
	s.SetBool(keys.KeepInterlacing, st.KeepInterlacing)
	s.SetBool(keys.AvoidGreyWithSimpleTransparency, st.AvoidGreyWithSimpleTransparency)
	s.SetBool(keys.IgnoreAnimatedGifs, st.IgnoreAnimatedGifs)
	s.SetBool(keys.KeepFileDate, st.KeepFileDate)
	s.SetBool(keys.KeepPixels, st.KeepPixels)

	s.SetString(keys.KeepBackgroundColor, st.BkgdOption.Code())
	s.SetString(keys.ForcedBackgroundColor, st.BkgdColor.Hex())

	s.SetString(keys.KeepTextualData, st.TextOption.Code())
	s.SetString(keys.ForcedTextKeyword, st.TextKeyword)
	s.SetString(keys.ForcedTextData, st.TextData)

	s.SetString(keys.KeepPhysicalPixelDimensions, st.PhysOption.Code())
	s.SetString(keys.ForcedPixelsPerMeter, parsing.FormatDimensions(st.PhysPpmX, st.PhysPpmY))

	s.SetString(keys.KeepFrameControl, st.FctlOption.Code())
	s.SetUint(keys.ForcedDelayNumerator, st.FctlDelayNum)
	s.SetUint(keys.ForcedDelayDenominator, st.FctlDelayDen)
}

// LoadFile reads settings from section of the INI file at path.
func LoadFile(path, section string) (models.Settings, error) {
	s, err := inistore.Load(path, section)
	if err != nil {
		return models.Settings{}, err
	}
	return FromStore(s)
}

// SaveFile writes st into section of the INI file at path.
//
// Other sections of an existing file are kept.
func SaveFile(st models.Settings, path, section string, comment ...string) error {
	s, err := inistore.Load(path, section)
	if errors.Is(err, os.ErrNotExist) {
		s = inistore.New(section)
	} else if err != nil {
		return err
	}

	if len(comment) > 0 {
		s.SetComment(comment...)
	}
	ToStore(st, s)
	return s.Save(path)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
