package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/inix-labs/inix/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long:  `List every template that can be added, from the configured template directories, the user configuration directory, and the built-in set.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents an available template for display.
type listEntry struct {
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	if err := config.Load(); err != nil {
		return err
	}

	ts, err := newResolver(afero.NewOsFs()).Available()
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}

	entries := make([]listEntry, 0, len(ts))
	for _, t := range ts {
		entry := listEntry{
			Name:        t.Name,
			Origin:      t.Origin,
			Description: t.Description(),
		}
		if t.Manifest != nil {
			entry.Version = t.Manifest.Version
		}
		entries = append(entries, entry)
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates available.")
		return nil
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tORIGIN\tDESCRIPTION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, version, e.Origin, e.Description)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
