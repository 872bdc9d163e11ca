package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := newRunError(PhaseEnterPrior, ErrStateSwitch, cause)

	assert.ErrorIs(t, err, ErrStateSwitch)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "enter committed state: could not switch to the last committed state: exit status 1", err.Error())
	assert.Empty(t, err.Remediation())
}

func TestRunError_Corruption(t *testing.T) {
	err := &RunError{Phase: PhaseExitPrior, Kind: ErrStateCorruption, Err: errors.New("conflict"), Shelve: "commitkind-shelve-7"}

	assert.Contains(t, err.Error(), "restore pending state: working tree was not restored: conflict")
	assert.Contains(t, err.Error(), "git stash list")
	assert.Contains(t, err.Error(), "commitkind-shelve-7")

	withoutShelve := &RunError{Phase: PhaseExitPrior, Kind: ErrStateCorruption}
	assert.Contains(t, withoutShelve.Remediation(), "git stash list")
}

func TestExtractionError(t *testing.T) {
	cause := errors.New("unexpected indent")
	err := extractionError("pkg/a.py", cause)

	assert.ErrorIs(t, err, ErrExtraction)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "extraction failed: pkg/a.py: unexpected indent", err.Error())
}
