// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	ConfigDir   string `yaml:"config_dir"`
	ScaffoldDir string `yaml:"scaffold_dir"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "inix",
			DisplayName: "Inix",
			Description: "Scaffold Nix and direnv environments from reusable templates",
			EnvPrefix:   "INIX",
			ConfigDir:   "inix",
			ScaffoldDir: "inix",
			GoModule:    "github.com/inix-labs/inix",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "inix").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Inix").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "INIX").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigDir returns the directory name used under the user configuration
// directory, both for config.yaml and for user templates.
func ConfigDir() string { load(); return defaults.ConfigDir }

// ScaffoldDir returns the name of the subdirectory created inside target
// projects (e.g., "inix").
func ScaffoldDir() string { load(); return defaults.ScaffoldDir }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("on_conflict") → "INIX_ON_CONFLICT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
