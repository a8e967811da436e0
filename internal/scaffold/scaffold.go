package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/inix-labs/inix/internal/templates"
)

//go:embed all:base
var baseFS embed.FS

const baseDir = "base"

// BaseData holds all variables available to the base templates.
type BaseData struct {
	CLIName     string   // e.g., "inix"
	ScaffoldDir string   // e.g., "inix"
	Templates   []string // template directories present after reconciliation
}

// Renderer renders the base files for a scaffold directory.
type Renderer struct {
	cliName     string
	scaffoldDir string
}

// NewRenderer creates a Renderer. Rendered files refer to template
// directories as ./<scaffoldDir>/<name>.
func NewRenderer(cliName, scaffoldDir string) *Renderer {
	return &Renderer{cliName: cliName, scaffoldDir: scaffoldDir}
}

// Render produces the base files for the given template names, in file name
// order. It has the shape of reconcile.BaseFilesFunc.
func (r *Renderer) Render(names []string) ([]templates.File, error) {
	data := &BaseData{
		CLIName:     r.cliName,
		ScaffoldDir: r.scaffoldDir,
		Templates:   names,
	}

	entries, err := fs.ReadDir(baseFS, baseDir)
	if err != nil {
		return nil, fmt.Errorf("reading base templates: %w", err)
	}

	var files []templates.File
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		tmplBytes, err := fs.ReadFile(baseFS, path.Join(baseDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Option("missingkey=error").Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		files = append(files, templates.File{
			Name:     strings.TrimSuffix(entry.Name(), ".tmpl"),
			Contents: buf.Bytes(),
		})
	}

	return files, nil
}
