package reconcile

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user aborts while being asked how to
// resolve a conflict. Nothing has been written when it is returned.
var ErrCancelled = errors.New("operation cancelled")

// ErrNoAsker is returned when a conflict needs a decision but there is no
// way to ask the user.
var ErrNoAsker = errors.New("the scaffold directory already exists; choose a conflict behavior")

// Source records where the effective behavior came from.
type Source int

const (
	// SourceExplicit means the caller asked for the behavior.
	SourceExplicit Source = iota + 1
	// SourceNoConflict means the directory did not exist, so there was
	// nothing to resolve. The behavior is Cancel but nothing is aborted.
	SourceNoConflict
	// SourcePrompt means the user picked the behavior interactively.
	SourcePrompt
)

func (s Source) String() string {
	switch s {
	case SourceExplicit:
		return "explicit"
	case SourceNoConflict:
		return "no-conflict"
	case SourcePrompt:
		return "prompt"
	}
	return "unknown"
}

// Resolution is the effective behavior and where it came from.
type Resolution struct {
	Behavior ConflictBehavior
	Source   Source
}

// UserCancelled reports whether the user explicitly chose to cancel.
func (r Resolution) UserCancelled() bool {
	return r.Behavior == Cancel && r.Source == SourcePrompt
}

// Asker asks the user how to handle collisions.
type Asker interface {
	Ask(description string, collisions Collisions) (ConflictBehavior, error)
}

// Resolve picks the effective behavior. An explicit behavior always wins. A
// missing directory needs no decision. Otherwise the asker decides.
func Resolve(state DirState, explicit *ConflictBehavior, asker Asker) (Resolution, error) {
	if explicit != nil {
		if !explicit.Valid() {
			return Resolution{}, fmt.Errorf("invalid conflict behavior %v", *explicit)
		}
		return Resolution{Behavior: *explicit, Source: SourceExplicit}, nil
	}

	if !state.Exists {
		return Resolution{Behavior: Cancel, Source: SourceNoConflict}, nil
	}

	if asker == nil {
		return Resolution{}, ErrNoAsker
	}

	b, err := asker.Ask(state.Describe(), state.Collisions)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Behavior: b, Source: SourcePrompt}, nil
}
