package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/inix-labs/inix/internal/manifest"
	"github.com/spf13/afero"
)

// loadDir reads the template called name from dir. found is false when dir
// holds neither a shell.nix nor an .envrc.
func loadDir(fsys afero.Fs, dir, name, origin string) (tmpl Template, found bool, err error) {
	tmpl = Template{Name: name, Origin: origin}

	for _, fileName := range fileOrder {
		data, err := readOptional(fsys, filepath.Join(dir, fileName))
		if err != nil {
			return Template{}, false, err
		}
		if data != nil {
			tmpl.Files = append(tmpl.Files, File{Name: fileName, Contents: data})
		}
	}
	if len(tmpl.Files) == 0 {
		return Template{}, false, nil
	}

	manifestPath := filepath.Join(dir, manifest.FileName)
	data, err := readOptional(fsys, manifestPath)
	if err != nil {
		return Template{}, false, err
	}
	if data != nil {
		m, err := manifest.Load(data, manifestPath)
		if err != nil {
			return Template{}, false, err
		}
		if m.Name != name {
			return Template{}, false, fmt.Errorf("manifest %s names template %q, but its directory is %q", manifestPath, m.Name, name)
		}
		tmpl.Manifest = m
	}

	return tmpl, true, nil
}

// readOptional returns nil data for a missing file or a directory.
func readOptional(fsys afero.Fs, path string) ([]byte, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
