package direnv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultBinary is the direnv executable looked up on PATH.
const DefaultBinary = "direnv"

// ErrNotInstalled is returned when the direnv binary cannot be found.
var ErrNotInstalled = errors.New("direnv is not installed or not on PATH")

// Output captures the result of a direnv invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Allower runs `direnv allow`.
type Allower struct {
	// Binary overrides DefaultBinary; useful in tests.
	Binary string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Allow runs `direnv allow <dir>`. A missing binary returns ErrNotInstalled;
// a non-zero exit returns an error carrying direnv's stderr.
func (a *Allower) Allow(ctx context.Context, dir string) (*Output, error) {
	name := a.Binary
	if name == "" {
		name = DefaultBinary
	}

	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotInstalled, err)
	}

	cmd := exec.CommandContext(ctx, bin, "allow", dir)
	cmd.Dir = dir

	stdout := a.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := a.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()
	out := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, fmt.Errorf("direnv allow exited with code %d: %s", out.ExitCode, strings.TrimSpace(out.Stderr))
		}
		return out, fmt.Errorf("running direnv: %w", err)
	}

	return out, nil
}
