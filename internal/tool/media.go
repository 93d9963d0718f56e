package tool

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// MediaWriter persists generated media under an output directory.
type MediaWriter struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// NewMediaWriter creates a MediaWriter rooted at dir.
func NewMediaWriter(fs afero.Fs, dir string) *MediaWriter {
	return &MediaWriter{fs: fs, dir: dir, now: time.Now}
}

// Paths returns where n payloads are written.
//
// With no explicit path the name is {dir}/{prefix}-{timestamp}.{ext}, the
// timestamp being ISO 8601 with ':' and '.' replaced by '-'. An explicit path
// without an extension gets ext. When n > 1 every path gets an _{i} suffix
// before the extension.
func (w *MediaWriter) Paths(explicit, prefix, ext string, n int) []string {
	base := explicit
	if base == "" {
		ts := w.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
		ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
		base = filepath.Join(w.dir, fmt.Sprintf("%s-%s.%s", prefix, ts, ext))
	} else if filepath.Ext(base) == "" {
		base += "." + ext
	}

	if n <= 1 {
		return []string{base}
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s_%d%s", stem, i, filepath.Ext(base))
	}
	return paths
}

// Write stores data at path, creating parent directories.
func (w *MediaWriter) Write(path string, data []byte) error {
	if err := w.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &SaveError{Path: path, Cause: err}
	}
	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		return &SaveError{Path: path, Cause: err}
	}
	return nil
}
