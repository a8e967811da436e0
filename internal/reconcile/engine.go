package reconcile

import (
	"context"
	"fmt"
	"io"

	"github.com/aymanbagabas/go-udiff"
	"github.com/inix-labs/inix/internal/platform"
	"github.com/inix-labs/inix/internal/templates"
)

// Resolver loads templates by name.
type Resolver interface {
	Resolve(names []string) ([]templates.Template, error)
}

// Engine wires the reconciliation steps to their collaborators.
type Engine struct {
	FS          platform.FS
	Resolver    Resolver
	Asker       Asker         // nil disables prompting
	BaseFiles   BaseFilesFunc // nil skips base files
	ScaffoldDir string
	Out         io.Writer // receives the dry-run narrative
}

// Request is one reconciliation.
type Request struct {
	TargetDir string
	Names     []string
	Explicit  *ConflictBehavior
	DryRun    bool
}

// Result describes what a reconciliation decided and whether it was applied.
type Result struct {
	Templates []templates.Template
	Plan      *Plan
	Applied   bool
}

// Reconcile resolves the requested templates, inspects the target, settles
// the conflict behavior, and either prints the plan (dry run) or applies it.
// A dry run never writes to the filesystem.
func (e *Engine) Reconcile(ctx context.Context, req Request) (*Result, error) {
	ts, err := e.Resolver.Resolve(req.Names)
	if err != nil {
		return nil, err
	}

	state, err := Inspect(e.FS, req.TargetDir, e.ScaffoldDir, templates.Names(ts))
	if err != nil {
		return nil, err
	}

	res, err := Resolve(state, req.Explicit, e.Asker)
	if err != nil {
		return nil, err
	}

	plan, err := BuildPlan(state, res, ts, e.BaseFiles)
	if err != nil {
		return nil, err
	}

	result := &Result{Templates: ts, Plan: plan}

	if req.DryRun {
		if e.Out != nil {
			fmt.Fprintln(e.Out, plan.Describe())
			diffs, err := BaseDiffs(e.FS, plan)
			if err != nil {
				return nil, err
			}
			for _, d := range diffs {
				fmt.Fprintln(e.Out)
				fmt.Fprint(e.Out, d)
			}
		}
		return result, nil
	}

	// An interrupt after the prompt still stops the run before any write.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	if err := Apply(ctx, e.FS, plan); err != nil {
		return nil, err
	}
	result.Applied = true
	return result, nil
}

// BaseDiffs returns a unified diff for every existing base file the plan
// would change. Files that would be created, or rewritten with identical
// contents, produce no diff.
func BaseDiffs(fsys platform.FS, p *Plan) ([]string, error) {
	var diffs []string
	for _, op := range p.Ops {
		if op.Kind != OpWriteFile || !contains(p.Base, op.Path) {
			continue
		}
		exists, err := fsys.Exists(op.Path)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}
		old, err := fsys.ReadFile(op.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", op.Path, err)
		}
		if string(old) == string(op.Data) {
			continue
		}
		diffs = append(diffs, udiff.Unified(op.Path, op.Path+" (planned)", string(old), string(op.Data)))
	}
	return diffs, nil
}
