package scaffold

import (
	"strings"
	"testing"

	"github.com/inix-labs/inix/internal/templates"
)

func TestRender(t *testing.T) {
	files, err := NewRenderer("inix", "inix").Render([]string{"node", "rust"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	assertFiles(t, files, []string{".envrc", "shell.nix"})

	nix := fileContents(t, files, "shell.nix")
	assertContains(t, nix, "pkgs.mkShell {")
	assertContains(t, nix, "(fromTemplate ./inix/node/shell.nix)")
	assertContains(t, nix, "(fromTemplate ./inix/rust/shell.nix)")
	if strings.Index(nix, "/node/") > strings.Index(nix, "/rust/") {
		t.Error("templates should be listed in the order given")
	}

	envrc := fileContents(t, files, ".envrc")
	assertContains(t, envrc, "use nix")
	assertContains(t, envrc, "source_env_if_exists inix/node/.envrc")
	assertContains(t, envrc, "source_env_if_exists inix/rust/.envrc")
}

func TestRenderNoTemplates(t *testing.T) {
	files, err := NewRenderer("inix", "inix").Render(nil)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	nix := fileContents(t, files, "shell.nix")
	assertContains(t, nix, "inputsFrom = builtins.concatLists [\n  ];")
	assertNotContains(t, nix, "fromTemplate ./")

	envrc := fileContents(t, files, ".envrc")
	assertNotContains(t, envrc, "source_env_if_exists")
}

func TestRenderGuardsMissingShellNix(t *testing.T) {
	// An .envrc-only template has no shell.nix to import.
	files, err := NewRenderer("inix", "inix").Render([]string{"direnvonly", "go"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	nix := fileContents(t, files, "shell.nix")
	assertContains(t, nix, "builtins.pathExists path")
	for _, line := range strings.Split(nix, "\n") {
		if strings.Contains(line, "./inix/") && !strings.Contains(line, "(fromTemplate ./inix/") {
			t.Errorf("template import is not guarded: %q", line)
		}
	}
	assertNotContains(t, nix, "(import ./inix/")
}

func TestRenderCustomScaffoldDir(t *testing.T) {
	files, err := NewRenderer("devenv", "envs").Render([]string{"go"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	nix := fileContents(t, files, "shell.nix")
	assertContains(t, nix, "Generated by devenv.")
	assertContains(t, nix, "./envs/go/shell.nix")
	assertContains(t, fileContents(t, files, ".envrc"), "envs/go/.envrc")
}

func fileContents(t *testing.T, files []templates.File, name string) string {
	t.Helper()
	for _, f := range files {
		if f.Name == name {
			return string(f.Contents)
		}
	}
	t.Fatalf("file %q not rendered", name)
	return ""
}

func assertFiles(t *testing.T, files []templates.File, expected []string) {
	t.Helper()
	if len(files) != len(expected) {
		t.Fatalf("got %d files, want %d", len(files), len(expected))
	}
	for i, f := range files {
		if f.Name != expected[i] {
			t.Errorf("files[%d] = %q, want %q", i, f.Name, expected[i])
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("expected content NOT to contain %q", substr)
	}
}
