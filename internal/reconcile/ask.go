package reconcile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/inix-labs/inix/internal/prompt"
)

// showOptions re-displays the menu.
const showOptions = "?"

type option struct {
	key         string
	description string
	label       string
	behavior    ConflictBehavior
}

// optionsFor returns the menu for a collision kind, ordered by key. Each
// kind only offers the choices that make a difference for it.
func optionsFor(kind CollisionKind) []option {
	switch kind {
	case CollisionNone:
		return []option{
			{"A", "Merge the two directories, adding your new templates to the existing directory", "merge", MergeKeep},
			{"B", "Overwrite the whole directory, removing everything that's in it and replacing it with the new templates", "overwrite", Overwrite},
			{"C", "Cancel the operation", "cancel", Cancel},
		}
	case CollisionAll:
		return []option{
			{"A", "Overwrite the entire directory, removing anything that exists there already", "overwrite", Overwrite},
			{"B", "Add your templates to the directory, overwriting any templates that are there already, but leaving other templates untouched", "merge-replace", MergeReplace},
			{"C", "Cancel the operation", "cancel", Cancel},
		}
	case CollisionSome:
		return []option{
			{"A", "Overwrite the entire directory, removing anything that exists there already", "overwrite", Overwrite},
			{"B", "Add your templates to the directory, overwriting any templates that are there already, but leaving other templates untouched", "merge-replace", MergeReplace},
			{"C", "Add your templates to the directory, but leave any templates that exist already", "merge-keep", MergeKeep},
			{"D", "Cancel the operation", "cancel", Cancel},
		}
	}
	return nil
}

// Prompter is the interactive Asker.
type Prompter struct {
	in  prompt.LineReader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in and writing the
// menu to out.
func NewPrompter(in prompt.LineReader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Ask shows the menu for collisions and reads answers until one matches an
// option. End of input or an interrupt returns ErrCancelled.
func (p *Prompter) Ask(description string, collisions Collisions) (ConflictBehavior, error) {
	options := optionsFor(collisions.Kind)
	menu := renderMenu(description, options)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, menu)

	for {
		fmt.Fprintln(p.out)
		fmt.Fprintf(p.out, "Tip: You can enter %q to display the options again.\n", showOptions)

		line, err := p.in.ReadLine(">> ")
		if err != nil {
			if errors.Is(err, prompt.ErrInputClosed) || errors.Is(err, prompt.ErrInterrupted) {
				fmt.Fprintln(p.out, "\nUnderstood. I'll cancel the operation.")
				return 0, fmt.Errorf("%w: %w", ErrCancelled, err)
			}
			// A broken stream fails again on every read; give up instead of re-asking.
			return 0, fmt.Errorf("reading answer: %w", err)
		}

		answer := strings.TrimSpace(line)
		if answer == showOptions {
			fmt.Fprintln(p.out, menu)
			continue
		}

		for _, opt := range options {
			if strings.EqualFold(answer, opt.key) {
				return opt.behavior, nil
			}
		}

		fmt.Fprintln(p.out, "\nSorry, I don't understand what you mean. Please use only the character corresponding to the option you want.")
	}
}

func renderMenu(description string, options []option) string {
	var b strings.Builder
	b.WriteString(description)
	b.WriteString("\n\nHow would you like to proceed?\n")

	keys := make([]string, len(options))
	for i, opt := range options {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", opt.key, opt.description, opt.label)
		keys[i] = opt.key
	}

	fmt.Fprintf(&b, "\nPlease enter exactly one option (one of %s [case-insensitive]).", joinQuoted(keys))
	return b.String()
}
