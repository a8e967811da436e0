package reconcile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/inix-labs/inix/internal/platform"
	"github.com/inix-labs/inix/internal/prompt"
	"github.com/inix-labs/inix/internal/templates"
	"github.com/spf13/afero"
)

const target = "/project"

var scaffoldPath = filepath.Join(target, "inix")

// tmpl builds a template with a shell.nix whose contents name the template.
func tmpl(name string) templates.Template {
	return templates.Template{
		Name:   name,
		Origin: templates.OriginBuiltin,
		Files: []templates.File{
			{Name: templates.ShellNixFile, Contents: []byte("# new " + name)},
		},
	}
}

func tmpls(names ...string) []templates.Template {
	out := make([]templates.Template, len(names))
	for i, n := range names {
		out[i] = tmpl(n)
	}
	return out
}

// newFS returns an in-memory filesystem with the project directory and the
// given existing template directories. With no names, inix/ is not created.
func newFS(t *testing.T, existing ...string) (*platform.AferoFS, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll(target, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range existing {
		dir := filepath.Join(scaffoldPath, name)
		if err := mem.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(mem, filepath.Join(dir, templates.ShellNixFile), []byte("# old "+name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return platform.New(mem), mem
}

// snapshot maps every path under root to its contents ("<dir>" for directories).
func snapshot(t *testing.T, mem afero.Fs, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := afero.Walk(mem, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			out[path] = "<dir>"
			return nil
		}
		data, err := afero.ReadFile(mem, path)
		if err != nil {
			return err
		}
		out[path] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return out
}

func readString(t *testing.T, mem afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(mem, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertExists(t *testing.T, mem afero.Fs, path string, want bool) {
	t.Helper()
	ok, err := afero.Exists(mem, path)
	if err != nil {
		t.Fatal(err)
	}
	if ok != want {
		t.Errorf("exists(%s) = %v, want %v", path, ok, want)
	}
}

func assertStrings(t *testing.T, what string, got, want []string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

func behaviorPtr(b ConflictBehavior) *ConflictBehavior {
	return &b
}

// failingFS wraps an FS and fails every call touching failPath.
type failingFS struct {
	platform.FS
	failPath string
}

var errDisk = errors.New("permission denied")

func (f *failingFS) IsDir(path string) (bool, error) {
	if path == f.failPath {
		return false, errDisk
	}
	return f.FS.IsDir(path)
}

func (f *failingFS) ReadDirNames(path string) ([]string, error) {
	if path == f.failPath {
		return nil, errDisk
	}
	return f.FS.ReadDirNames(path)
}

func (f *failingFS) MkdirAll(path string) error {
	if path == f.failPath {
		return errDisk
	}
	return f.FS.MkdirAll(path)
}

func (f *failingFS) WriteFile(path string, data []byte) error {
	if path == f.failPath {
		return errDisk
	}
	return f.FS.WriteFile(path, data)
}

// scriptedInput is a prompt.LineReader that replays answers, then reports
// the configured error (ErrInputClosed by default).
type scriptedInput struct {
	answers []string
	end     error
	prompts int
}

func (s *scriptedInput) ReadLine(string) (string, error) {
	s.prompts++
	if len(s.answers) == 0 {
		if s.end == nil {
			return "", prompt.ErrInputClosed
		}
		return "", s.end
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

// fixedAsker always answers with behavior (or err).
type fixedAsker struct {
	behavior ConflictBehavior
	err      error
	calls    int
	got      Collisions
}

func (f *fixedAsker) Ask(_ string, c Collisions) (ConflictBehavior, error) {
	f.calls++
	f.got = c
	return f.behavior, f.err
}
