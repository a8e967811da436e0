package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrInputClosed is returned when the input stream ends before a line is read.
	ErrInputClosed = errors.New("input closed")

	// ErrInterrupted is returned when the context is cancelled (e.g. Ctrl+C)
	// while waiting for input.
	ErrInterrupted = errors.New("interrupted")
)

// LineReader asks the user for one line of input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Terminal is a LineReader over an input stream. It blocks until a full line,
// end of input, or cancellation of its context.
type Terminal struct {
	ctx    context.Context
	reader *bufio.Reader
	w      io.Writer
}

// NewTerminal creates a Terminal reading from r and writing prompts to w.
// Cancelling ctx makes a pending ReadLine return ErrInterrupted.
func NewTerminal(ctx context.Context, r io.Reader, w io.Writer) *Terminal {
	return &Terminal{
		ctx:    ctx,
		reader: bufio.NewReader(r),
		w:      w,
	}
}

type readResult struct {
	line string
	err  error
}

// ReadLine writes prompt and returns the next line without its line ending.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	if err := t.ctx.Err(); err != nil {
		return "", ErrInterrupted
	}

	fmt.Fprint(t.w, prompt)

	ch := make(chan readResult, 1)
	go func() {
		line, err := t.reader.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-t.ctx.Done():
		fmt.Fprintln(t.w)
		return "", ErrInterrupted
	case res := <-ch:
		if res.err != nil {
			// A final line without a trailing newline still counts.
			if errors.Is(res.err, io.EOF) && res.line != "" {
				return trimLine(res.line), nil
			}
			if errors.Is(res.err, io.EOF) {
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("reading input: %w", res.err)
		}
		return trimLine(res.line), nil
	}
}

func trimLine(s string) string {
	return strings.TrimRight(s, "\r\n")
}
