package filereader

import (
	"fmt"
	"io"

	"github.com/IgorBayerl/unicov/internal/filesystem"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Reader reads coverage reports through a Filesystem.
type Reader struct {
	fs filesystem.Filesystem
}

// New creates a Reader. A nil fsys uses the host filesystem.
func New(fsys filesystem.Filesystem) *Reader {
	if fsys == nil {
		fsys = filesystem.DefaultFS{}
	}
	return &Reader{fs: fsys}
}

// Exists reports whether path names an existing file.
func (r *Reader) Exists(path string) bool {
	return filesystem.Exists(r.fs, path)
}

// ReadText reads a whole report and returns it as UTF-8 text. A UTF-8 BOM is
// stripped and UTF-16 (LE/BE) content with a BOM is transcoded, since .NET
// and Windows tools commonly emit both. Content without a BOM is taken as
// UTF-8.
func (r *Reader) ReadText(path string) (string, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
