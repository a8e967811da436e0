// Package templates resolves template names to their files. A template is a
// directory holding a shell.nix, an .envrc, or both, plus an optional
// template.yaml manifest. Templates are looked up in user locations first and
// then in the set of built-in templates compiled into the binary.
package templates
