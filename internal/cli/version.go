package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/inix-labs/inix/internal/branding"
	"github.com/inix-labs/inix/internal/manifest"
	"github.com/inix-labs/inix/internal/templates"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

// buildInfo describes what this binary scaffolds as well as how it was built.
type buildInfo struct {
	Version          string   `json:"version"`
	Commit           string   `json:"commit"`
	Date             string   `json:"date"`
	ScaffoldDir      string   `json:"scaffold_dir"`
	BuiltinTemplates []string `json:"builtin_templates"`
	EnforcesRequires bool     `json:"enforces_requires"`
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version and template catalog info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and built-in template information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		names, err := templates.BuiltinNames()
		if err != nil {
			return fmt.Errorf("loading built-in templates: %w", err)
		}
		info := buildInfo{
			Version:          buildVersion,
			Commit:           buildCommit,
			Date:             buildDate,
			ScaffoldDir:      branding.ScaffoldDir(),
			BuiltinTemplates: names,
			EnforcesRequires: manifest.EnforcesRequires(buildVersion),
		}

		if versionJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		printVersion(out, info)
		return nil
	},
}

func printVersion(w io.Writer, info buildInfo) {
	fmt.Fprintf(w, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
	fmt.Fprintf(w, "scaffold directory: %s/\n", info.ScaffoldDir)
	fmt.Fprintf(w, "built-in templates: %s\n", strings.Join(info.BuiltinTemplates, ", "))
	if !info.EnforcesRequires {
		printDim(w, "Development build: template version requirements are not checked.")
	}
}
