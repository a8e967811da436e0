// Package reconcile decides what happens to a project's scaffold directory.
//
// It inspects the directory once, classifies how the requested templates
// collide with what is already there, settles on a conflict behavior (from
// the caller, by default, or by asking the user), and turns that into a Plan:
// an ordered list of filesystem operations plus the narrative printed for a
// dry run. Both are derived from the same decision, so a dry run always
// describes exactly what a real run does.
//
// Nothing is written before the plan is applied, and applying is not
// transactional: a failed operation stops the run and leaves earlier
// operations in place.
package reconcile
