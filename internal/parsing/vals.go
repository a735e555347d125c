package parsing

import (
	"strconv"
	"strings"

	"pngopt/internal/models"
)

// chunkOptionAliases maps every accepted spelling (upper case) to its option.
var chunkOptionAliases = map[string]models.ChunkOption{
	"0": models.ChunkRemove,
	"R": models.ChunkRemove,
	"1": models.ChunkKeep,
	"K": models.ChunkKeep,
	"2": models.ChunkForce,
	"F": models.ChunkForce,
}

// boolAliases is the set of accepted boolean spellings (lower case).
var boolAliases = map[string]bool{
	"1":     true,
	"true":  true,
	"yes":   true,
	"on":    true,
	"0":     false,
	"false": false,
	"no":    false,
	"off":   false,
}

// ParseChunkOption parses 0|1|2 or R|K|F, case-insensitively.
// Surrounding whitespace is not part of the grammar.
func ParseChunkOption(field, raw string) (models.ChunkOption, error) {
	if o, ok := chunkOptionAliases[strings.ToUpper(raw)]; ok {
		return o, nil
	}
	return models.ChunkRemove, fieldErr(field, raw, "want one of 0|1|2|R|K|F")
}

// ParseHexColor parses six hex digits, two per channel in R, G, B order.
func ParseHexColor(field, raw string) (models.RGB, error) {
	if len(raw) != 6 {
		return models.RGB{}, fieldErr(field, raw, "want 6 hex digits (RRGGBB)")
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(raw[i*2:i*2+2], 16, 8)
		if err != nil {
			return models.RGB{}, fieldErr(field, raw, "want 6 hex digits (RRGGBB)")
		}
		ch[i] = uint8(v)
	}
	return models.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseDimensions parses an "<X>x<Y>" pair of unsigned integers.
func ParseDimensions(field, raw string) (x, y uint32, err error) {
	xs, ys, found := strings.Cut(raw, "x")
	if !found {
		return 0, 0, fieldErr(field, raw, "want <X>x<Y>")
	}

	xv, errX := strconv.ParseUint(xs, 10, 32)
	yv, errY := strconv.ParseUint(ys, 10, 32)
	if errX != nil || errY != nil {
		return 0, 0, fieldErr(field, raw, "want <X>x<Y> with unsigned integers")
	}
	return uint32(xv), uint32(yv), nil
}

// FormatDimensions is the inverse of ParseDimensions.
func FormatDimensions(x, y uint32) string {
	return strconv.FormatUint(uint64(x), 10) + "x" + strconv.FormatUint(uint64(y), 10)
}

// ParseUint parses a decimal unsigned 32-bit integer.
func ParseUint(field, raw string) (uint32, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fieldErr(field, raw, "want an unsigned integer")
	}
	return uint32(v), nil
}

// ParseBool parses 1|0, true|false, yes|no or on|off, case-insensitively.
func ParseBool(field, raw string) (bool, error) {
	if b, ok := boolAliases[strings.ToLower(raw)]; ok {
		return b, nil
	}
	return false, fieldErr(field, raw, "want a boolean")
}
