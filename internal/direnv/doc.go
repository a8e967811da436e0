// Package direnv runs `direnv allow` on a project after its base .envrc has
// been written, so the environment loads without a manual approval step.
package direnv
