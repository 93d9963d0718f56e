package tool

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedWriter(fs afero.Fs) *MediaWriter {
	w := NewMediaWriter(fs, "/out")
	w.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 890_000_000, time.UTC) }
	return w
}

func TestPaths(t *testing.T) {
	w := fixedWriter(afero.NewMemMapFs())

	tests := []struct {
		name     string
		explicit string
		n        int
		want     []string
	}{
		{"auto single", "", 1, []string{"/out/image-2025-03-04T05-06-07-890Z.png"}},
		{"auto several", "", 2, []string{"/out/image-2025-03-04T05-06-07-890Z_0.png", "/out/image-2025-03-04T05-06-07-890Z_1.png"}},
		{"explicit with extension", "/tmp/cat.jpg", 1, []string{"/tmp/cat.jpg"}},
		{"explicit without extension", "/tmp/cat", 1, []string{"/tmp/cat.png"}},
		{"explicit several", "/tmp/cat.png", 3, []string{"/tmp/cat_0.png", "/tmp/cat_1.png", "/tmp/cat_2.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Paths(tt.explicit, "image", "png", tt.n))
		})
	}
}

func TestWrite_CreatesParentDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := fixedWriter(fs)

	require.NoError(t, w.Write("/out/nested/a.png", []byte("data")))

	got, err := afero.ReadFile(fs, "/out/nested/a.png")
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
}

func TestWrite_FailureIsSaveError(t *testing.T) {
	w := fixedWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	err := w.Write("/out/a.png", []byte("data"))

	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, "/out/a.png", saveErr.Path)
	assert.True(t, isLocal(err))
}
