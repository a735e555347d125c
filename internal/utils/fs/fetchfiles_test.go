package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch(t, filepath.Join(root, "a.png"))
	touch(t, filepath.Join(root, "B.PNG"))
	touch(t, filepath.Join(root, "c.bmp"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "sub", "d.png"))
	touch(t, filepath.Join(root, "sub", "e.gif"))

	tests := []struct {
		name      string
		explicit  []string
		pattern   string
		recursive bool
		want      []string
	}{
		{
			name:     "explicit only",
			explicit: []string{"x.png", "y.png"},
			want:     []string{"x.png", "y.png"},
		},
		{
			name:    "single glob",
			pattern: filepath.Join(root, "*.png"),
			want:    []string{filepath.Join(root, "B.PNG"), filepath.Join(root, "a.png")},
		},
		{
			name:    "alternatives",
			pattern: filepath.Join(root, "*.png|*.bmp"),
			want:    []string{filepath.Join(root, "B.PNG"), filepath.Join(root, "a.png"), filepath.Join(root, "c.bmp")},
		},
		{
			name:    "star matches supported files only",
			pattern: filepath.Join(root, "*"),
			want:    []string{filepath.Join(root, "B.PNG"), filepath.Join(root, "a.png"), filepath.Join(root, "c.bmp")},
		},
		{
			name:      "recursive",
			pattern:   filepath.Join(root, "*.png"),
			recursive: true,
			want:      []string{filepath.Join(root, "B.PNG"), filepath.Join(root, "a.png"), filepath.Join(root, "sub", "d.png")},
		},
		{
			name:     "directory only is recursive",
			explicit: []string{"first.png"},
			pattern:  root + string(filepath.Separator),
			want: []string{
				"first.png",
				filepath.Join(root, "B.PNG"),
				filepath.Join(root, "a.png"),
				filepath.Join(root, "c.bmp"),
				filepath.Join(root, "sub", "d.png"),
				filepath.Join(root, "sub", "e.gif"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectFiles(tt.explicit, tt.pattern, tt.recursive)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCollectFiles_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := CollectFiles(nil, filepath.Join(t.TempDir(), "nope", "*.png"), false)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestHasMatch(t *testing.T) {
	t.Parallel()

	require.True(t, HasMatch("Icon.PNG", []string{"*.png"}))
	require.True(t, HasMatch("icon.tga", []string{"*.png", "*.tga"}))
	require.False(t, HasMatch("icon.jpg", []string{"*.png", "*.tga"}))
	require.False(t, HasMatch("icon.png", nil))
}
