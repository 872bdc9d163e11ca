package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds of a classification run. Match them with errors.Is.
var (
	// ErrExtraction marks a per-file extraction failure. The file's symbols
	// are omitted and the run continues.
	ErrExtraction = errors.New("extraction failed")
	// ErrVersionControl marks a failure to query the version-control system
	// before anything was modified.
	ErrVersionControl = errors.New("version control query failed")
	// ErrStateSwitch marks a failure to shelve and rewind the working tree.
	// The tree was not modified.
	ErrStateSwitch = errors.New("could not switch to the last committed state")
	// ErrStateCorruption marks a failure to restore the working tree. The tree
	// may differ from its state before the run.
	ErrStateCorruption = errors.New("working tree was not restored")
	// ErrInvalidState marks a misuse of the prior-state scope, such as
	// entering it twice.
	ErrInvalidState = errors.New("invalid state")
)

// Phase names the step of a run an error happened in.
type Phase string

// Run phases, in execution order.
const (
	PhaseListChanges   Phase = "list changes"
	PhaseExtractAfter  Phase = "extract current surface"
	PhaseEnterPrior    Phase = "enter committed state"
	PhaseExtractBefore Phase = "extract committed surface"
	PhaseExitPrior     Phase = "restore pending state"
	PhaseReport        Phase = "report"
)

// RunError is a fatal error of a classification run.
type RunError struct {
	Phase Phase
	// Kind is one of the Err* sentinels.
	Kind error
	Err  error
	// Shelve identifies the version-control shelve holding the user's
	// pending changes, when one exists.
	Shelve string
}

func (e *RunError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %v", e.Phase, e.Kind)

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	if errors.Is(e.Kind, ErrStateCorruption) {
		b.WriteString("\n")
		b.WriteString(e.Remediation())
	}

	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *RunError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// Remediation returns instructions for recovering the user's pending
// changes by hand. Empty unless the run left the tree in doubt.
func (e *RunError) Remediation() string {
	if !errors.Is(e.Kind, ErrStateCorruption) {
		return ""
	}

	if e.Shelve == "" {
		return "Your working tree may not match its state before the run. " +
			"Inspect it with `git status` and `git stash list` before continuing."
	}

	return fmt.Sprintf("Your working tree may not match its state before the run. "+
		"Your pending changes are kept in the stash entry named %q: "+
		"find it with `git stash list`, then run `git stash pop --index stash@{N}` "+
		"and re-stage the files you had staged.", e.Shelve)
}

func newRunError(phase Phase, kind, err error) *RunError {
	return &RunError{Phase: phase, Kind: kind, Err: err}
}

// extractionError wraps a per-file failure with ErrExtraction.
func extractionError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrExtraction, path, err)
}
