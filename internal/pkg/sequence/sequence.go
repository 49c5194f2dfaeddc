// Package sequence executes multi-statement mutations as explicit best-effort
// sequences. The underlying persistence collaborator commits one statement per
// call, so there is no real transaction boundary: each step commits on its
// own, and compensation for already-committed steps is a per-step policy, not
// a guarantee.
//
// A step may carry an undo operation. When a later step fails, the undo
// operations of all previously completed steps are attempted in reverse
// order. Steps without an undo are deliberately left in place and reported,
// which mirrors the source system's behavior of surfacing partial creates
// (such as an address without its person) rather than hiding them.
package sequence

import (
	"context"
	"fmt"
)

// Op is one forward or compensating operation.
type Op func(ctx context.Context) error

// Step pairs a forward operation with an optional undo.
type Step struct {
	// Name identifies the step in results and error messages.
	Name string

	// Run performs the forward mutation.
	Run Op

	// Undo compensates for Run after a later step fails. Nil means the
	// step's effect is intentionally kept and reported as an orphan.
	Undo Op
}

// Sequence is an ordered list of steps.
type Sequence struct {
	steps []Step
}

// New creates an empty sequence.
func New() *Sequence {
	return &Sequence{}
}

// Add appends a step and returns the sequence for chaining.
func (s *Sequence) Add(step Step) *Sequence {
	s.steps = append(s.steps, step)
	return s
}

// Result describes the outcome of an Execute call.
type Result struct {
	// Completed lists the names of steps whose forward op succeeded.
	Completed []string

	// FailedStep is the name of the step that failed, empty on success.
	FailedStep string

	// Err is the forward error of the failed step.
	Err error

	// UndoErrs holds compensation failures, keyed by step name.
	UndoErrs map[string]error

	// Orphans lists completed steps that had no undo when a later step
	// failed; their effects remain in storage.
	Orphans []string
}

// Failed reports whether the sequence stopped before completing all steps.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Error implements error so a failed result can be returned directly.
func (r *Result) Error() string {
	msg := fmt.Sprintf("step %s failed: %s", r.FailedStep, r.Err)
	if len(r.Orphans) > 0 {
		msg += fmt.Sprintf(" (kept without compensation: %v)", r.Orphans)
	}
	for name, err := range r.UndoErrs {
		msg += fmt.Sprintf(" (undo of %s failed: %s)", name, err)
	}
	return msg
}

// Unwrap exposes the forward error of the failed step for errors.Is/As.
func (r *Result) Unwrap() error {
	return r.Err
}

// Execute runs the steps in order. On the first forward failure it attempts
// the undo of every already-completed step in reverse order, records orphans
// for steps without an undo, and returns the failed result. On success the
// result carries the completed step names and a nil Err.
func (s *Sequence) Execute(ctx context.Context) *Result {
	result := &Result{UndoErrs: make(map[string]error)}

	for i, step := range s.steps {
		if err := step.Run(ctx); err != nil {
			result.FailedStep = step.Name
			result.Err = err
			s.compensate(ctx, i, result)
			return result
		}
		result.Completed = append(result.Completed, step.Name)
	}

	return result
}

func (s *Sequence) compensate(ctx context.Context, failedIdx int, result *Result) {
	for i := failedIdx - 1; i >= 0; i-- {
		step := s.steps[i]
		if step.Undo == nil {
			result.Orphans = append(result.Orphans, step.Name)
			continue
		}
		if err := step.Undo(ctx); err != nil {
			result.UndoErrs[step.Name] = err
		}
	}
}
