//go:build integration

package integration_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inix-labs/inix/internal/platform"
	"github.com/inix-labs/inix/internal/prompt"
	"github.com/inix-labs/inix/internal/reconcile"
	"github.com/inix-labs/inix/internal/scaffold"
	"github.com/inix-labs/inix/internal/templates"
	"github.com/spf13/afero"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigDir  string // INIX_CONFIG_DIR, holds user templates
	ProjectDir string // the project being scaffolded
}

// setupTestEnv creates isolated temp directories and points INIX_CONFIG_DIR
// at one of them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ConfigDir:  t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("INIX_CONFIG_DIR", env.ConfigDir)
	return env
}

// engine wires the real filesystem, the user template directory, and an
// input script for the prompt.
func (env *testEnv) engine(t *testing.T, answers string, out io.Writer) *reconcile.Engine {
	t.Helper()

	osFs := afero.NewOsFs()
	resolver := templates.NewResolver(osFs, []templates.Location{templates.Probe(osFs, env.ConfigDir)}, "1.0.0")

	return &reconcile.Engine{
		FS:          platform.New(osFs),
		Resolver:    resolver,
		Asker:       reconcile.NewPrompter(prompt.NewTerminal(context.Background(), strings.NewReader(answers), io.Discard), io.Discard),
		BaseFiles:   scaffold.NewRenderer("inix", "inix").Render,
		ScaffoldDir: "inix",
		Out:         out,
	}
}

// writeUserTemplate creates a user template in the config directory.
func writeUserTemplate(t *testing.T, env *testEnv, name string, files map[string]string) {
	t.Helper()
	for file, contents := range files {
		writeFile(t, filepath.Join(env.ConfigDir, name, file), contents)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected path to not exist: %s", path)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}

// treeSnapshot maps every path under root to its contents.
func treeSnapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		if info.IsDir() {
			out[rel] = "<dir>"
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return out
}
