package reconcile

import (
	"fmt"
	"strings"
)

// ConflictBehavior is what to do when the scaffold directory already exists.
// The zero value is not a valid behavior.
type ConflictBehavior int

const (
	// Overwrite removes the scaffold directory and recreates it.
	Overwrite ConflictBehavior = iota + 1
	// MergeKeep adds new templates and keeps existing ones with the same name.
	MergeKeep
	// MergeReplace adds new templates and replaces existing ones with the same name.
	MergeReplace
	// Cancel writes nothing.
	Cancel
)

// Behaviors lists every behavior in declaration order.
var Behaviors = []ConflictBehavior{Overwrite, MergeKeep, MergeReplace, Cancel}

func (b ConflictBehavior) String() string {
	switch b {
	case Overwrite:
		return "overwrite"
	case MergeKeep:
		return "merge-keep"
	case MergeReplace:
		return "merge-replace"
	case Cancel:
		return "cancel"
	}
	return fmt.Sprintf("ConflictBehavior(%d)", int(b))
}

// Valid reports whether b is one of the declared behaviors.
func (b ConflictBehavior) Valid() bool {
	return b >= Overwrite && b <= Cancel
}

// phrase describes the behavior as an action, for dry-run output.
func (b ConflictBehavior) phrase() string {
	switch b {
	case Overwrite:
		return "completely overwrite the existing directory"
	case MergeKeep:
		return "merge the two directories, keeping existing templates on collisions"
	case MergeReplace:
		return "merge the two directories, replacing existing templates on collisions"
	case Cancel:
		return "cancel the operation and exit"
	}
	return b.String()
}

// ParseConflictBehavior parses the command-line spelling of a behavior.
func ParseConflictBehavior(s string) (ConflictBehavior, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, b := range Behaviors {
		if b.String() == norm {
			return b, nil
		}
	}
	names := make([]string, len(Behaviors))
	for i, b := range Behaviors {
		names[i] = b.String()
	}
	return 0, fmt.Errorf("invalid conflict behavior %q: must be one of %s", s, strings.Join(names, ", "))
}

// BehaviorValue is an optional ConflictBehavior that satisfies pflag.Value.
// Unset means "decide for me".
type BehaviorValue struct {
	behavior ConflictBehavior
	set      bool
}

// Set parses s into the value.
func (v *BehaviorValue) Set(s string) error {
	b, err := ParseConflictBehavior(s)
	if err != nil {
		return err
	}
	v.behavior = b
	v.set = true
	return nil
}

func (v *BehaviorValue) String() string {
	if !v.set {
		return ""
	}
	return v.behavior.String()
}

// Type is the type name shown in flag usage.
func (v *BehaviorValue) Type() string {
	return "behavior"
}

// Get returns the behavior, or nil when it was never set.
func (v *BehaviorValue) Get() *ConflictBehavior {
	if !v.set {
		return nil
	}
	b := v.behavior
	return &b
}
