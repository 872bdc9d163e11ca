package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/commitkind/commitkind/internal/adapter"
	m "github.com/commitkind/commitkind/internal/model"
)

// RepositoryStateGuard gives scoped access to the last committed state of a
// working tree and puts the pending changes back when the scope ends.
//
// At most one scope may be active per guard. Entering again before exiting
// fails with ErrInvalidState.
type RepositoryStateGuard struct {
	vcs    adapter.VersionControl
	active atomic.Bool

	token   adapter.ShelveToken
	pending []m.ChangeRecord
}

// NewRepositoryStateGuard creates a guard over vcs.
func NewRepositoryStateGuard(vcs adapter.VersionControl) *RepositoryStateGuard {
	return &RepositoryStateGuard{vcs: vcs}
}

// Enter shelves the pending changes and rewinds the tree to the last commit.
// On error the tree is left as it was, except when the error is
// ErrStateCorruption: the changes were shelved and could not be put back.
func (g *RepositoryStateGuard) Enter(ctx context.Context) error {
	if !g.active.CompareAndSwap(false, true) {
		return newRunError(PhaseEnterPrior, ErrInvalidState, errors.New("committed state already entered"))
	}

	pending, err := g.vcs.ListChangedPaths(ctx)
	if err != nil {
		g.active.Store(false)
		return newRunError(PhaseEnterPrior, ErrStateSwitch, err)
	}

	token, err := g.vcs.ShelveAndRewind(ctx)
	if errors.Is(err, adapter.ErrShelveUnconfirmed) {
		return g.abortEnter(ctx, pending, token, err)
	}

	if err != nil {
		g.active.Store(false)
		return newRunError(PhaseEnterPrior, ErrStateSwitch, err)
	}

	g.pending = pending
	g.token = token

	slog.Debug("entered committed state", "shelve", token.ID, "pending", len(pending))

	return nil
}

// abortEnter puts back changes that may have been shelved by a failed Enter.
// A successful restore leaves the tree as it was, so the failure stays a
// state switch error; otherwise the corruption from Exit is returned.
func (g *RepositoryStateGuard) abortEnter(ctx context.Context, pending []m.ChangeRecord, token adapter.ShelveToken, shelveErr error) error {
	g.pending = pending
	g.token = token

	slog.Warn("shelve not confirmed, restoring", "shelve", token.ID, "error", shelveErr)

	if err := g.Exit(ctx); err != nil {
		return errors.Join(err, shelveErr)
	}

	return newRunError(PhaseEnterPrior, ErrStateSwitch, shelveErr)
}

// Exit restores the shelved changes and checks that the change list matches
// the one seen on Enter. It runs to completion even when ctx is canceled.
func (g *RepositoryStateGuard) Exit(ctx context.Context) error {
	if !g.active.Load() {
		return newRunError(PhaseExitPrior, ErrInvalidState, errors.New("committed state not entered"))
	}
	defer g.active.Store(false)

	ctx = context.WithoutCancel(ctx)

	corrupted := func(err error) error {
		slog.Error("working tree not restored", "shelve", g.token.ID, "error", err)

		runErr := newRunError(PhaseExitPrior, ErrStateCorruption, err)
		if !g.token.Empty {
			runErr.Shelve = g.token.ID
		}

		return runErr
	}

	if err := g.vcs.RestoreFromShelve(ctx, g.token); err != nil {
		return corrupted(err)
	}

	restored, err := g.vcs.ListChangedPaths(ctx)
	if err != nil {
		return corrupted(fmt.Errorf("verifying restored changes: %w", err))
	}

	if !slices.Equal(g.pending, restored) {
		return corrupted(fmt.Errorf("restored change list differs: had %d paths, now %d", len(g.pending), len(restored)))
	}

	slog.Debug("restored pending state", "shelve", g.token.ID)

	return nil
}

// Do runs fn inside the committed-state scope. The pending state is restored
// on every exit path, panics included. A restore failure takes precedence
// over fn's error, which is kept alongside it.
func (g *RepositoryStateGuard) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if err := g.Enter(ctx); err != nil {
		return err
	}

	defer func() {
		if exitErr := g.Exit(ctx); exitErr != nil {
			err = errors.Join(exitErr, err)
		}
	}()

	return fn(ctx)
}

// Active reports whether a committed-state scope is open.
func (g *RepositoryStateGuard) Active() bool {
	return g.active.Load()
}
