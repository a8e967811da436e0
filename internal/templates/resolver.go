package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inix-labs/inix/internal/manifest"
	"github.com/spf13/afero"
)

// Location is a directory searched for user templates. Problem is empty when
// the location is usable and otherwise explains why it was skipped.
type Location struct {
	Path    string
	Problem string
}

// Location problems.
const (
	ProblemNotFound    = "but it doesn't exist"
	ProblemNotDir      = "which exists, but is not a directory (it's probably a file!)"
	ProblemNoConfigDir = "but I don't know where your user configuration directory is"
)

// Usable reports whether the location can be searched.
func (l Location) Usable() bool {
	return l.Problem == ""
}

func (l Location) String() string {
	if l.Problem == "" {
		return l.Path
	}
	return fmt.Sprintf("%s (%s)", l.Path, l.Problem)
}

// Probe inspects path and returns it as a Location.
func Probe(fsys afero.Fs, path string) Location {
	info, err := fsys.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Location{Path: path, Problem: ProblemNotFound}
	case err != nil:
		return Location{Path: path, Problem: fmt.Sprintf("which I could not read: %v", err)}
	case !info.IsDir():
		return Location{Path: path, Problem: ProblemNotDir}
	}
	return Location{Path: path}
}

// UnresolvedError lists requested templates that could not be found.
type UnresolvedError struct {
	Names     []string
	Locations []Location
}

func (e *UnresolvedError) Error() string {
	var b strings.Builder
	b.WriteString("I couldn't find these templates:\n")
	for _, name := range e.Names {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	b.WriteString("\nI looked (or tried to look) in these places:\n")
	for _, loc := range e.Locations {
		fmt.Fprintf(&b, "- %s\n", loc)
	}
	b.WriteString("- the built-in templates")
	return b.String()
}

// Resolver turns template names into templates. Locations are searched in
// order, and built-in templates are consulted last.
type Resolver struct {
	fs         afero.Fs
	locations  []Location
	cliVersion string
}

// NewResolver creates a resolver over the given locations.
func NewResolver(fsys afero.Fs, locations []Location, cliVersion string) *Resolver {
	return &Resolver{
		fs:         fsys,
		locations:  locations,
		cliVersion: cliVersion,
	}
}

// Locations returns the locations the resolver searches.
func (r *Resolver) Locations() []Location {
	return append([]Location(nil), r.locations...)
}

// Resolve loads one template per requested name, preserving order and
// duplicates. If any name cannot be found, it returns an *UnresolvedError
// naming every miss; no partial result is returned.
func (r *Resolver) Resolve(names []string) ([]Template, error) {
	var (
		resolved []Template
		missing  []string
	)

	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return nil, err
		}

		tmpl, found, err := r.lookup(name)
		if err != nil {
			return nil, err
		}
		if !found {
			missing = append(missing, name)
			continue
		}
		if err := manifest.CheckCompatibility(tmpl.Manifest, r.cliVersion); err != nil {
			return nil, err
		}
		resolved = append(resolved, tmpl)
	}

	if len(missing) > 0 {
		return nil, &UnresolvedError{Names: missing, Locations: r.Locations()}
	}
	return resolved, nil
}

func (r *Resolver) lookup(name string) (Template, bool, error) {
	for _, loc := range r.locations {
		if !loc.Usable() {
			continue
		}
		dir := filepath.Join(loc.Path, name)
		tmpl, found, err := loadDir(r.fs, dir, name, dir)
		if err != nil {
			return Template{}, false, fmt.Errorf("loading template %q: %w", name, err)
		}
		if found {
			return tmpl, true, nil
		}
	}
	return Builtin(name)
}

// Available returns every template the resolver can find, sorted by name.
// A name found in several places is reported once, from the location that
// would win in Resolve.
func (r *Resolver) Available() ([]Template, error) {
	seen := make(map[string]bool)
	var out []Template

	for _, loc := range r.locations {
		if !loc.Usable() {
			continue
		}
		entries, err := afero.ReadDir(r.fs, loc.Path)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", loc.Path, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if !entry.IsDir() || seen[name] {
				continue
			}
			dir := filepath.Join(loc.Path, name)
			tmpl, found, err := loadDir(r.fs, dir, name, dir)
			if err != nil {
				return nil, fmt.Errorf("loading template %q: %w", name, err)
			}
			if found {
				seen[name] = true
				out = append(out, tmpl)
			}
		}
	}

	names, err := BuiltinNames()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if seen[name] {
			continue
		}
		tmpl, _, err := Builtin(name)
		if err != nil {
			return nil, err
		}
		out = append(out, tmpl)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
