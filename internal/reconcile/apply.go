package reconcile

import (
	"context"
	"fmt"

	"github.com/inix-labs/inix/internal/platform"
)

// OpError reports the operation that stopped a plan.
type OpError struct {
	Op  Operation
	Err error
}

func (e *OpError) Error() string {
	if e.Op.Template != "" {
		return fmt.Sprintf("I was unable to %s %q for the %q template: %v", e.Op.Kind, e.Op.Path, e.Op.Template, e.Err)
	}
	return fmt.Sprintf("I was unable to %s %q: %v", e.Op.Kind, e.Op.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Apply runs the plan's operations in order. The first failure stops the run
// and is returned as an *OpError; operations that already ran stay applied.
// A cancelled context stops the run before the next operation.
func Apply(ctx context.Context, fsys platform.FS, p *Plan) error {
	for _, op := range p.Ops {
		if err := ctx.Err(); err != nil {
			return &OpError{Op: op, Err: fmt.Errorf("interrupted: %w", err)}
		}

		var err error
		switch op.Kind {
		case OpCreateDir:
			err = fsys.MkdirAll(op.Path)
		case OpWriteFile:
			err = fsys.WriteFile(op.Path, op.Data)
		case OpRemoveAll:
			err = fsys.RemoveAll(op.Path)
		default:
			err = fmt.Errorf("unknown operation kind %d", op.Kind)
		}
		if err != nil {
			return &OpError{Op: op, Err: err}
		}
	}
	return nil
}
