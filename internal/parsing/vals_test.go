package parsing_test

import (
	"errors"
	"testing"

	"pngopt/internal/models"
	"pngopt/internal/parsing"

	"github.com/stretchr/testify/require"
)

func TestParseChunkOption_Aliases(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		numeric, letter string
		want            models.ChunkOption
	}{
		{"0", "R", models.ChunkRemove},
		{"1", "K", models.ChunkKeep},
		{"2", "F", models.ChunkForce},
	}

	for _, p := range pairs {
		for _, raw := range []string{p.numeric, p.letter} {
			got, err := parsing.ParseChunkOption("KeepTextualData", raw)
			require.NoError(t, err, "raw %q", raw)
			require.Equal(t, p.want, got, "raw %q", raw)
		}
	}

	// Letters are case-insensitive
	for _, raw := range []string{"r", "k", "f"} {
		_, err := parsing.ParseChunkOption("KeepTextualData", raw)
		require.NoError(t, err, "raw %q", raw)
	}
}

func TestParseChunkOption_Unknown(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"9", "3", "Keep", "X", "", " 1", "F "} {
		_, err := parsing.ParseChunkOption("KeepBackgroundColor", raw)
		require.Error(t, err, "raw %q", raw)

		var fe *parsing.FieldError
		require.True(t, errors.As(err, &fe))
		require.Equal(t, "KeepBackgroundColor", fe.Field)
		require.Equal(t, raw, fe.Value)
		require.ErrorIs(t, err, parsing.ErrInvalidValue)
	}
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	c, err := parsing.ParseHexColor("ForcedBackgroundColor", "a1b2c3")
	require.NoError(t, err)
	require.Equal(t, models.RGB{R: 0xa1, G: 0xb2, B: 0xc3}, c)

	c, err = parsing.ParseHexColor("ForcedBackgroundColor", "FF0080")
	require.NoError(t, err)
	require.Equal(t, models.RGB{R: 0xff, G: 0x00, B: 0x80}, c)

	for _, raw := range []string{"", "#a1b2c3", "a1b2c", "a1b2c3d4", "zz0000", "0x1234", "+1+2+3"} {
		_, err := parsing.ParseHexColor("ForcedBackgroundColor", raw)
		require.ErrorIs(t, err, parsing.ErrInvalidValue, "raw %q", raw)
	}
}

func TestParseDimensions(t *testing.T) {
	t.Parallel()

	x, y, err := parsing.ParseDimensions("ForcedPixelsPerMeter", "2000x1000")
	require.NoError(t, err)
	require.Equal(t, uint32(2000), x)
	require.Equal(t, uint32(1000), y)

	x, y, err = parsing.ParseDimensions("ForcedPixelsPerMeter", "0x0")
	require.NoError(t, err)
	require.Zero(t, x)
	require.Zero(t, y)

	for _, raw := range []string{"", "2000", "2000X1000", "2000x", "x1000", "-1x5", "1x2x3", "axb", "4294967296x1"} {
		_, _, err := parsing.ParseDimensions("ForcedPixelsPerMeter", raw)
		require.ErrorIs(t, err, parsing.ErrInvalidValue, "raw %q", raw)
	}
}

func TestFormatDimensions(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2000x1000", parsing.FormatDimensions(2000, 1000))
	require.Equal(t, "0x0", parsing.FormatDimensions(0, 0))
}

func TestParseUint(t *testing.T) {
	t.Parallel()

	v, err := parsing.ParseUint("ForcedDelayNumerator", "30")
	require.NoError(t, err)
	require.Equal(t, uint32(30), v)

	for _, raw := range []string{"", "-1", "abc", "1.5", " 30"} {
		_, err := parsing.ParseUint("ForcedDelayNumerator", raw)
		require.ErrorIs(t, err, parsing.ErrInvalidValue, "raw %q", raw)
	}
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]bool{
		"1": true, "TRUE": true, "yes": true, "On": true,
		"0": false, "false": false, "No": false, "off": false,
	} {
		got, err := parsing.ParseBool("KeepFileDate", raw)
		require.NoError(t, err, "raw %q", raw)
		require.Equal(t, want, got, "raw %q", raw)
	}

	_, err := parsing.ParseBool("KeepFileDate", "maybe")
	require.ErrorIs(t, err, parsing.ErrInvalidValue)
}
