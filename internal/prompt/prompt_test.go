package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestTerminal_ReadLine(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(context.Background(), strings.NewReader("a\r\nb\nlast"), &out)

	for _, want := range []string{"a", "b", "last"} {
		got, err := term.ReadLine(">> ")
		if err != nil {
			t.Fatalf("ReadLine error: %v", err)
		}
		if got != want {
			t.Errorf("ReadLine = %q, want %q", got, want)
		}
	}

	if _, err := term.ReadLine(">> "); !errors.Is(err, ErrInputClosed) {
		t.Errorf("expected ErrInputClosed after input is exhausted, got %v", err)
	}

	if got := strings.Count(out.String(), ">> "); got != 4 {
		t.Errorf("prompt written %d times, want 4", got)
	}
}

func TestTerminal_EmptyInput(t *testing.T) {
	term := NewTerminal(context.Background(), strings.NewReader(""), io.Discard)
	if _, err := term.ReadLine("> "); !errors.Is(err, ErrInputClosed) {
		t.Errorf("expected ErrInputClosed, got %v", err)
	}
}

func TestTerminal_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	defer pw.Close()

	term := NewTerminal(ctx, pr, io.Discard)

	done := make(chan error, 1)
	go func() {
		_, err := term.ReadLine("> ")
		done <- err
	}()

	cancel()
	if err := <-done; !errors.Is(err, ErrInterrupted) {
		t.Errorf("expected ErrInterrupted, got %v", err)
	}
}

func TestTerminal_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	term := NewTerminal(ctx, strings.NewReader("a\n"), &out)
	if _, err := term.ReadLine("> "); !errors.Is(err, ErrInterrupted) {
		t.Errorf("expected ErrInterrupted, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written once cancelled, got %q", out.String())
	}
}
