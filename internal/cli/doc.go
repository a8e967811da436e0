// Package cli defines the Cobra command tree for the inix CLI. The root
// command reconciles templates into a project; list, config, and version
// are registered from their own files. Command implementations delegate to
// internal packages for business logic and only handle flag parsing, I/O
// formatting, and user interaction.
package cli
