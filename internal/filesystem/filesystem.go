package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Filesystem is the subset of host filesystem access the loaders need. It
// lets tests simulate missing or unreadable reports.
type Filesystem interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (fs.File, error)
	Abs(path string) (string, error)
}

// DefaultFS implements the Filesystem interface using the standard `os` and `filepath` packages.
type DefaultFS struct{}

func (DefaultFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (DefaultFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (DefaultFS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Exists reports whether name exists and is a regular file or symlink to one.
func Exists(fsys Filesystem, name string) bool {
	info, err := fsys.Stat(name)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsNotExist reports whether err means the file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
