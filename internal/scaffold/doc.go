// Package scaffold renders the base environment files (shell.nix and .envrc)
// written at the project root. They pull in every template directory under
// the scaffold directory so a single `nix-shell` or direnv load picks up all
// of them.
package scaffold
