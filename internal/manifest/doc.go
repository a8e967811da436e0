// Package manifest handles the optional template.yaml file that can sit next
// to a template's shell.nix and .envrc. It parses the manifest, validates it
// against an embedded JSON Schema, and checks the template's declared inix
// version constraint.
package manifest
