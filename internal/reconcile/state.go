package reconcile

import (
	"fmt"
	"path/filepath"

	"github.com/inix-labs/inix/internal/platform"
)

// DirState is a snapshot of the scaffold directory taken before anything is
// written. It is computed once per run and never refreshed.
type DirState struct {
	Target string // the project directory
	Path   string // the scaffold directory inside Target
	Exists bool

	// Collisions and Present are only meaningful when Exists is true.
	Collisions Collisions
	Present    []string // template directories already in Path, sorted
}

// Inspect looks at <target>/<scaffoldDir> and classifies the requested names
// against it. It only reads; filesystem errors are returned, never treated
// as "does not exist".
func Inspect(fsys platform.FS, target, scaffoldDir string, requested []string) (DirState, error) {
	state := DirState{
		Target: target,
		Path:   filepath.Join(target, scaffoldDir),
	}

	isDir, err := fsys.IsDir(state.Path)
	if err != nil {
		return DirState{}, fmt.Errorf("inspecting %s: %w", state.Path, err)
	}
	if !isDir {
		return state, nil
	}
	state.Exists = true

	entries, err := fsys.ReadDirNames(state.Path)
	if err != nil {
		return DirState{}, fmt.Errorf("reading %s: %w", state.Path, err)
	}
	for _, name := range entries {
		isDir, err := fsys.IsDir(filepath.Join(state.Path, name))
		if err != nil {
			return DirState{}, fmt.Errorf("inspecting %s: %w", filepath.Join(state.Path, name), err)
		}
		if isDir {
			state.Present = append(state.Present, name)
		}
	}

	var colliding []string
	for _, name := range distinct(requested) {
		isDir, err := fsys.IsDir(filepath.Join(state.Path, name))
		if err != nil {
			return DirState{}, fmt.Errorf("inspecting %s: %w", filepath.Join(state.Path, name), err)
		}
		if isDir {
			colliding = append(colliding, name)
		}
	}
	state.Collisions = Classify(requested, colliding)

	return state, nil
}

// dirLabel is how the scaffold directory is named in messages, e.g. "inix".
func (s DirState) dirLabel() string {
	return filepath.Base(s.Path)
}

// Describe explains the state in one sentence.
func (s DirState) Describe() string {
	if !s.Exists {
		return fmt.Sprintf("The %s directory (%q) does not exist.", s.dirLabel(), s.Path)
	}

	switch s.Collisions.Kind {
	case CollisionNone:
		return fmt.Sprintf("The %s directory (%q) already exists, but none of the new templates conflict with existing subdirectories.",
			s.dirLabel(), s.Path)
	case CollisionAll:
		return fmt.Sprintf("The %s directory (%q) already exists, and it contains all of the templates that you're trying to add (%s).",
			s.dirLabel(), s.Path, joinQuoted(s.Collisions.Names))
	case CollisionSome:
		return fmt.Sprintf("The %s directory (%q) already exists, and the following templates you're trying to add already exist in it: %s.",
			s.dirLabel(), s.Path, joinQuoted(s.Collisions.Names))
	}
	return ""
}
