package reconcile

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inix-labs/inix/internal/templates"
)

// OpKind is a primitive filesystem action.
type OpKind int

const (
	OpCreateDir OpKind = iota + 1
	OpWriteFile
	OpRemoveAll
)

func (k OpKind) String() string {
	switch k {
	case OpCreateDir:
		return "create directory"
	case OpWriteFile:
		return "write file"
	case OpRemoveAll:
		return "remove directory"
	}
	return "unknown"
}

// Operation is one step of a plan. Template is empty for steps that do not
// belong to a single template.
type Operation struct {
	Kind     OpKind
	Path     string
	Data     []byte
	Template string
}

func (o Operation) String() string {
	return fmt.Sprintf("%s %s", o.Kind, o.Path)
}

// BaseFilesFunc renders the files written at the project root for the given
// template names.
type BaseFilesFunc func(names []string) ([]templates.File, error)

// Plan is the outcome of reconciliation: the operations to run and the
// narrative that describes them.
type Plan struct {
	State      DirState
	Resolution Resolution

	Written  []string // templates (re)written, in request order
	Kept     []string // requested templates left as they are
	Replaced []string // existing templates that are removed and rewritten
	Removed  bool     // the whole scaffold directory is removed first
	Created  bool     // the scaffold directory is created
	Base     []string // paths of base files written at the project root
	Final    []string // template directories present afterwards, sorted

	Ops []Operation

	narrative []string
}

// Empty reports whether applying the plan changes nothing.
func (p *Plan) Empty() bool {
	return len(p.Ops) == 0
}

// Describe returns the dry-run narrative.
func (p *Plan) Describe() string {
	lines := append([]string{"So here's the plan:", p.State.Describe()}, p.narrative...)
	return strings.Join(lines, "\n")
}

// Summary returns the narrative without the state preamble.
func (p *Plan) Summary() string {
	return strings.Join(p.narrative, "\n")
}

// BuildPlan derives the operations and narrative for state and res. It has
// no side effects. base may be nil, in which case no base files are planned.
func BuildPlan(state DirState, res Resolution, ts []templates.Template, base BaseFilesFunc) (*Plan, error) {
	p := &Plan{State: state, Resolution: res}
	requested := distinct(templates.Names(ts))
	label := state.dirLabel()
	collisions := state.Collisions

	switch {
	case !state.Exists:
		p.Created = true
		p.Written = requested
		p.say("I will create the %q directory.", state.Path)
		if len(requested) == 0 {
			p.say("I will not add any templates to it.")
		} else {
			p.say("I will then add the %s template(s) to that directory.", joinQuoted(requested))
		}
		if res.Source == SourceExplicit {
			p.say("If the directory were to be created in the meantime, I would %s.", res.Behavior.phrase())
		}

	case len(requested) == 0:
		// Nothing to scaffold; never touch an existing directory.
		p.say("You have not asked for any templates, so I will leave the %s directory (%q) as it is.", label, state.Path)

	default:
		switch res.Behavior {
		case Overwrite:
			p.Removed = true
			p.Created = true
			p.Written = requested
			p.say("Because you have chosen to overwrite the %s directory on conflicts, I will delete the existing directory (%q) and recreate it with the templates you have chosen (%s).",
				label, state.Path, joinQuoted(requested))

		case MergeKeep:
			const intro = "Because you have chosen the merge (keep) option, I will merge the old and the new directories."
			switch collisions.Kind {
			case CollisionNone:
				p.Written = requested
				p.say("%s There are no template collisions, so I will add these new templates: %s", intro, joinQuoted(requested))
			case CollisionSome:
				p.Kept = collisions.Names
				for _, name := range requested {
					if !contains(collisions.Names, name) {
						p.Written = append(p.Written, name)
					}
				}
				p.say("%s These new templates will be added: %s", intro, joinQuoted(p.Written))
			case CollisionAll:
				p.Kept = requested
				p.say("%s However, all the templates you are trying to add (%s) already exist in the %s directory (%q), so I will not do anything.",
					intro, joinQuoted(requested), label, state.Path)
			}

		case MergeReplace:
			const intro = "Because you have chosen the merge (replace) option, I will merge the old and the new directories."
			p.Written = requested
			switch collisions.Kind {
			case CollisionNone:
				p.say("%s There are no template collisions, so I will add these new templates: %s", intro, joinQuoted(requested))
			case CollisionSome:
				p.Replaced = collisions.Names
				p.say("%s These templates will be overwritten: %s. When I'm done, all these templates will have been added or updated: %s",
					intro, joinQuoted(collisions.Names), joinQuoted(requested))
			case CollisionAll:
				p.Replaced = requested
				p.say("%s All the templates you are trying to add already exist in the %s directory (%q), so I will overwrite all of them: %s",
					intro, label, state.Path, joinQuoted(requested))
			}

		case Cancel:
			p.say("Because you have chosen the cancel option and the %s directory (%q) already exists, I will not do anything.", label, state.Path)

		default:
			return nil, fmt.Errorf("invalid conflict behavior %v", res.Behavior)
		}
	}

	p.Final = finalTemplates(p)
	p.buildOps(ts)

	if base != nil && !p.Empty() {
		files, err := base(p.Final)
		if err != nil {
			return nil, fmt.Errorf("rendering base files: %w", err)
		}
		for _, f := range files {
			path := filepath.Join(state.Target, f.Name)
			p.Base = append(p.Base, path)
			p.Ops = append(p.Ops, Operation{Kind: OpWriteFile, Path: path, Data: f.Contents})
		}
		if len(files) > 0 {
			names := make([]string, len(files))
			for i, f := range files {
				names[i] = f.Name
			}
			p.say("I will also write %s in %q so your environment loads these templates: %s.",
				joinQuoted(names), state.Target, joinQuoted(p.Final))
		}
	}

	return p, nil
}

func (p *Plan) say(format string, args ...interface{}) {
	p.narrative = append(p.narrative, fmt.Sprintf(format, args...))
}

// finalTemplates lists the template directories that exist after the plan.
func finalTemplates(p *Plan) []string {
	var names []string
	if p.Removed || !p.State.Exists {
		names = append(names, p.Written...)
	} else {
		names = append(names, p.State.Present...)
		for _, n := range p.Written {
			if !contains(names, n) {
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}

// buildOps turns the decision into operations. Templates are written in
// request order; a name requested twice is written twice.
func (p *Plan) buildOps(ts []templates.Template) {
	scaffold := p.State.Path

	if p.Removed {
		p.Ops = append(p.Ops, Operation{Kind: OpRemoveAll, Path: scaffold})
	}
	if p.Created {
		p.Ops = append(p.Ops, Operation{Kind: OpCreateDir, Path: scaffold})
	}

	removed := make(map[string]bool)
	for _, t := range ts {
		if !contains(p.Written, t.Name) {
			continue
		}
		dir := filepath.Join(scaffold, t.Name)
		if contains(p.Replaced, t.Name) && !removed[t.Name] {
			removed[t.Name] = true
			p.Ops = append(p.Ops, Operation{Kind: OpRemoveAll, Path: dir, Template: t.Name})
		}
		p.Ops = append(p.Ops, Operation{Kind: OpCreateDir, Path: dir, Template: t.Name})
		for _, f := range t.Files {
			p.Ops = append(p.Ops, Operation{
				Kind:     OpWriteFile,
				Path:     filepath.Join(dir, f.Name),
				Data:     f.Contents,
				Template: t.Name,
			})
		}
	}
}
