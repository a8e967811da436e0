package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/spf13/afero"
)

// FS is the filesystem capability consumed by the reconciliation engine.
type FS interface {
	// Exists reports whether anything exists at path.
	Exists(path string) (bool, error)

	// IsDir reports whether path is a directory. A missing path is not an
	// error; any other failure to stat is.
	IsDir(path string) (bool, error)

	// Stat returns file info for path.
	Stat(path string) (os.FileInfo, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// RemoveAll removes a path and all its contents.
	RemoveAll(path string) error

	// WriteFile writes data to path, creating or truncating it.
	WriteFile(path string, data []byte) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadDirNames returns the sorted names of the entries directly under path.
	ReadDirNames(path string) ([]string, error)
}

// AferoFS implements FS on top of an afero.Fs.
type AferoFS struct {
	fs afero.Fs
}

// New wraps an afero filesystem.
func New(fs afero.Fs) *AferoFS {
	return &AferoFS{fs: fs}
}

// NewOS returns an FS backed by the real operating system filesystem.
func NewOS() *AferoFS {
	return New(afero.NewOsFs())
}

// Afero exposes the underlying afero filesystem.
func (a *AferoFS) Afero() afero.Fs {
	return a.fs
}

// Exists reports whether anything exists at path.
func (a *AferoFS) Exists(path string) (bool, error) {
	ok, err := afero.Exists(a.fs, path)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return ok, nil
}

// IsDir reports whether path is a directory.
func (a *AferoFS) IsDir(path string) (bool, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("inspecting %s: %w", path, err)
	}
	return info.IsDir(), nil
}

// Stat returns file info for path.
func (a *AferoFS) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

// MkdirAll creates a directory and all parent directories.
func (a *AferoFS) MkdirAll(path string) error {
	return a.fs.MkdirAll(path, DirPerm)
}

// RemoveAll removes a path and all its contents.
func (a *AferoFS) RemoveAll(path string) error {
	return a.fs.RemoveAll(path)
}

// WriteFile writes data to path, creating or truncating it.
func (a *AferoFS) WriteFile(path string, data []byte) error {
	return afero.WriteFile(a.fs, path, data, FilePerm)
}

// ReadFile reads the entire contents of a file.
func (a *AferoFS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// ReadDirNames returns the sorted names of the entries directly under path.
func (a *AferoFS) ReadDirNames(path string) ([]string, error) {
	entries, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
