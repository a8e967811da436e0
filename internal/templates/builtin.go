package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/spf13/afero"
)

//go:embed all:builtin
var builtinFS embed.FS

var (
	builtinOnce  sync.Once
	builtinTable map[string]Template
	builtinNames []string
	builtinErr   error
)

func loadBuiltins() {
	builtinOnce.Do(func() {
		sub, err := fs.Sub(builtinFS, "builtin")
		if err != nil {
			builtinErr = fmt.Errorf("opening built-in templates: %w", err)
			return
		}
		fsys := afero.FromIOFS{FS: sub}

		entries, err := fs.ReadDir(sub, ".")
		if err != nil {
			builtinErr = fmt.Errorf("listing built-in templates: %w", err)
			return
		}

		table := make(map[string]Template, len(entries))
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			tmpl, found, err := loadDir(fsys, entry.Name(), entry.Name(), OriginBuiltin)
			if err != nil {
				builtinErr = fmt.Errorf("loading built-in template %q: %w", entry.Name(), err)
				return
			}
			if found {
				table[tmpl.Name] = tmpl
				builtinNames = append(builtinNames, tmpl.Name)
			}
		}
		sort.Strings(builtinNames)
		builtinTable = table
	})
}

// Builtin returns the built-in template with the given name.
func Builtin(name string) (Template, bool, error) {
	loadBuiltins()
	if builtinErr != nil {
		return Template{}, false, builtinErr
	}
	t, ok := builtinTable[name]
	return t, ok, nil
}

// BuiltinNames returns the sorted names of all built-in templates.
func BuiltinNames() ([]string, error) {
	loadBuiltins()
	if builtinErr != nil {
		return nil, builtinErr
	}
	return append([]string(nil), builtinNames...), nil
}
