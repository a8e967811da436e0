package templates

import (
	"fmt"
	"strings"

	"github.com/inix-labs/inix/internal/manifest"
)

// File names a template may contain.
const (
	EnvrcFile    = ".envrc"
	ShellNixFile = "shell.nix"
)

// fileOrder is the order in which template files are written.
var fileOrder = []string{EnvrcFile, ShellNixFile}

// OriginBuiltin is the Origin of templates compiled into the binary.
const OriginBuiltin = "built-in"

// File is a single file of a template, relative to the template directory.
type File struct {
	Name     string
	Contents []byte
}

// Template is a resolved template. Templates are values: once resolved they
// are not modified.
type Template struct {
	Name     string
	Origin   string // OriginBuiltin or the directory it was loaded from
	Files    []File
	Manifest *manifest.TemplateManifest
}

// Builtin reports whether the template was compiled into the binary.
func (t Template) Builtin() bool {
	return t.Origin == OriginBuiltin
}

// Description returns the manifest description, or "" without a manifest.
func (t Template) Description() string {
	if t.Manifest == nil {
		return ""
	}
	return t.Manifest.Description
}

// Names returns the names of templates in order.
func Names(ts []Template) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	return names
}

// ValidateName rejects names that cannot be used as a single directory name.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("template name must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("%q is not a valid template name", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("template name %q must not contain path separators", name)
	}
	return nil
}
