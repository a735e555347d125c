package cfg

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"pngopt/internal/domain/keys"
	"pngopt/internal/models"
	"pngopt/internal/parsing"
	"pngopt/internal/settings"
	"pngopt/internal/utils/logging"

	"github.com/stretchr/testify/require"
)

type fakeOptimizer struct {
	calls int
	st    models.Settings
	paths []string
}

func (f *fakeOptimizer) OptimizeFiles(_ context.Context, st models.Settings, paths []string) error {
	f.calls++
	f.st = st
	f.paths = paths
	return nil
}

func run(t *testing.T, opt *fakeOptimizer, args ...string) (string, error) {
	t.Helper()

	v := NewViper()
	v.Set(keys.SettingsFile, filepath.Join(t.TempDir(), "default.ini"))

	var out bytes.Buffer
	cmd := NewRootCmd(context.Background(), v, opt)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_HelpWithoutInput(t *testing.T) {
	opt := &fakeOptimizer{}
	out, err := run(t, opt)
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "-KeepTextualData")
	require.Zero(t, opt.calls)
}

func TestRoot_Version(t *testing.T) {
	out, err := run(t, &fakeOptimizer{}, "-Version")
	require.NoError(t, err)
	require.Contains(t, out, "pngopt ")
}

func TestRoot_PassesSettingsAndFiles(t *testing.T) {
	opt := &fakeOptimizer{}
	_, err := run(t, opt, "a.png", "-KeepBackgroundColor:F", "-ForcedBackgroundColor:ff8000", "-Unknown", "b.gif")
	require.NoError(t, err)

	require.Equal(t, 1, opt.calls)
	require.Equal(t, []string{"a.png", "b.gif"}, opt.paths)
	require.Equal(t, models.ChunkForce, opt.st.BkgdOption)
	require.Equal(t, models.RGB{R: 0xff, G: 0x80, B: 0x00}, opt.st.BkgdColor)
}

func TestRoot_DebugFlag(t *testing.T) {
	defer logging.SetLevel(0)

	opt := &fakeOptimizer{}
	_, err := run(t, opt, "a.png", "-debug:3")
	require.NoError(t, err)
	require.Equal(t, 3, logging.Level)
	require.Equal(t, []string{"a.png"}, opt.paths)
}

func TestRoot_InvalidFlagValue(t *testing.T) {
	opt := &fakeOptimizer{}
	_, err := run(t, opt, "a.png", "-KeepTextualData:X")
	require.ErrorIs(t, err, parsing.ErrInvalidValue)
	require.Zero(t, opt.calls)
}

func TestRoot_FilePattern(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	opt := &fakeOptimizer{}
	_, err := run(t, opt, "-file:"+filepath.Join(dir, "*.*"))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.png")}, opt.paths)

	_, err = run(t, opt, "-file:"+filepath.Join(dir, "*.bmp"))
	require.Error(t, err)
	require.Equal(t, 1, opt.calls)
}

func TestSettings_SaveShowAndUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.ini")

	_, err := run(t, &fakeOptimizer{}, "settings", "save", path, "-KeepPixels", "-KeepPhysicalPixelDimensions:F", "-ForcedPixelsPerInch:72x72")
	require.NoError(t, err)

	want, err := settings.LoadFile(path, "Engine")
	require.NoError(t, err)
	require.True(t, want.KeepPixels)
	require.Equal(t, uint32(2834), want.PhysPpmX)

	out, err := run(t, &fakeOptimizer{}, "settings", "show", path)
	require.NoError(t, err)
	require.Contains(t, out, "KeepPixels: true")
	require.Contains(t, out, "2834x2834")

	opt := &fakeOptimizer{}
	_, err = run(t, opt, "-settings:"+path, "a.png", "-KeepPixels:0")
	require.NoError(t, err)
	require.Equal(t, want, opt.st)
}

func TestSettings_ShowMissingFile(t *testing.T) {
	_, err := run(t, &fakeOptimizer{}, "settings", "show", filepath.Join(t.TempDir(), "none.ini"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewViper_Env(t *testing.T) {
	t.Setenv("PNGOPT_SETTINGS_SECTION", "Custom")

	v := NewViper()
	require.Equal(t, "Custom", v.GetString(keys.SettingsSection))
	require.Equal(t, 0, v.GetInt(keys.DebugLevel))
}
