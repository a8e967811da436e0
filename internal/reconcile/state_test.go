package reconcile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestInspect_DoesNotExist(t *testing.T) {
	fsys, _ := newFS(t)

	state, err := Inspect(fsys, target, "inix", []string{"rust"})
	if err != nil {
		t.Fatalf("Inspect error: %v", err)
	}
	if state.Exists {
		t.Error("expected Exists = false")
	}
	if state.Path != scaffoldPath {
		t.Errorf("Path = %q, want %q", state.Path, scaffoldPath)
	}
}

func TestInspect_FileIsNotADirectory(t *testing.T) {
	fsys, mem := newFS(t)
	if err := afero.WriteFile(mem, scaffoldPath, []byte("oops"), 0644); err != nil {
		t.Fatal(err)
	}

	state, err := Inspect(fsys, target, "inix", []string{"rust"})
	if err != nil {
		t.Fatalf("Inspect error: %v", err)
	}
	if state.Exists {
		t.Error("a regular file named inix is not a scaffold directory")
	}
}

func TestInspect_Collisions(t *testing.T) {
	tests := []struct {
		name      string
		existing  []string
		requested []string
		kind      CollisionKind
		names     []string
	}{
		{"none", []string{"node"}, []string{"rust"}, CollisionNone, nil},
		{"all", []string{"node", "rust"}, []string{"rust"}, CollisionAll, []string{"rust"}},
		{"some", []string{"node"}, []string{"node", "rust"}, CollisionSome, []string{"node"}},
		{"empty request", []string{"node"}, nil, CollisionNone, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys, _ := newFS(t, tt.existing...)

			state, err := Inspect(fsys, target, "inix", tt.requested)
			if err != nil {
				t.Fatalf("Inspect error: %v", err)
			}
			if !state.Exists {
				t.Fatal("expected Exists = true")
			}
			if state.Collisions.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", state.Collisions.Kind, tt.kind)
			}
			assertStrings(t, "Names", state.Collisions.Names, tt.names)
			assertStrings(t, "Present", state.Present, tt.existing)
		})
	}
}

func TestInspect_IgnoresFilesWithTemplateNames(t *testing.T) {
	fsys, mem := newFS(t, "node")
	if err := afero.WriteFile(mem, filepath.Join(scaffoldPath, "rust"), []byte("file"), 0644); err != nil {
		t.Fatal(err)
	}

	state, err := Inspect(fsys, target, "inix", []string{"rust"})
	if err != nil {
		t.Fatalf("Inspect error: %v", err)
	}
	if state.Collisions.Kind != CollisionNone {
		t.Errorf("Kind = %v, want none", state.Collisions.Kind)
	}
	assertStrings(t, "Present", state.Present, []string{"node"})
}

func TestInspect_PropagatesErrors(t *testing.T) {
	for _, failPath := range []string{scaffoldPath, filepath.Join(scaffoldPath, "rust")} {
		t.Run(failPath, func(t *testing.T) {
			base, _ := newFS(t, "node")
			fsys := &failingFS{FS: base, failPath: failPath}

			_, err := Inspect(fsys, target, "inix", []string{"rust"})
			if !errors.Is(err, errDisk) {
				t.Fatalf("expected the filesystem error to propagate, got %v", err)
			}
		})
	}
}

func TestDirState_Describe(t *testing.T) {
	tests := []struct {
		state DirState
		want  string
	}{
		{DirState{Path: scaffoldPath}, "does not exist"},
		{DirState{Path: scaffoldPath, Exists: true}, "none of the new templates conflict"},
		{DirState{Path: scaffoldPath, Exists: true, Collisions: Collisions{Kind: CollisionAll, Names: []string{"rust"}}}, `contains all of the templates that you're trying to add ("rust")`},
		{DirState{Path: scaffoldPath, Exists: true, Collisions: Collisions{Kind: CollisionSome, Names: []string{"a", "b"}}}, `already exist in it: "a" and "b".`},
	}
	for _, tt := range tests {
		got := tt.state.Describe()
		if !strings.Contains(got, tt.want) {
			t.Errorf("Describe() = %q, want it to contain %q", got, tt.want)
		}
		if !strings.Contains(got, "The inix directory") {
			t.Errorf("Describe() = %q, want it to name the inix directory", got)
		}
	}
}

func TestJoinQuoted(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" and "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", and "c"`},
	}
	for _, tt := range tests {
		if got := joinQuoted(tt.in); got != tt.want {
			t.Errorf("joinQuoted(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
