package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/commitkind/commitkind/internal/adapter"
	m "github.com/commitkind/commitkind/internal/model"
)

// DefaultParallel is the number of files extracted concurrently.
const DefaultParallel = 4

// Side names which snapshot a file was extracted for.
type Side string

// Snapshot sides.
const (
	SideBefore Side = "before"
	SideAfter  Side = "after"
)

// FileFailure records a file whose symbols were left out of a snapshot.
type FileFailure struct {
	Path m.Path
	Side Side
	Err  error
}

// RunContext holds everything one classification run learns. It is owned by
// the run and discarded with it.
type RunContext struct {
	// Changes is the pending change set as reported by version control.
	Changes []m.ChangeRecord
	// Analyzed is the subset of Changes the extractor was run on.
	Analyzed []m.ChangeRecord
	// Skipped lists changed paths that were excluded or unsupported.
	Skipped []m.Path
	// Failures lists per-file extraction failures.
	Failures []FileFailure

	Before m.Surface
	After  m.Surface
}

// SnapshotPipeline produces the before and after surfaces of the pending
// change set.
type SnapshotPipeline interface {
	// Run lists the pending changes, extracts the current surface, switches
	// to the last committed state, extracts the committed surface and
	// restores the pending state.
	Run(ctx context.Context) (*RunContext, error)

	// Current lists the pending changes and extracts only the current
	// surface. The working tree is never modified.
	Current(ctx context.Context) (*RunContext, error)
}

// PipelineOption configures a SnapshotPipeline.
type PipelineOption func(*snapshotPipeline)

// WithParallel bounds the number of concurrent extractions.
func WithParallel(n int) PipelineOption {
	return func(p *snapshotPipeline) {
		if n > 0 {
			p.parallel = n
		}
	}
}

// WithPathFilter excludes changed paths matching filter.
func WithPathFilter(filter *PathFilter) PipelineOption {
	return func(p *snapshotPipeline) {
		p.filter = filter
	}
}

type snapshotPipeline struct {
	vcs       adapter.VersionControl
	extractor adapter.SymbolExtractor
	guard     *RepositoryStateGuard
	filter    *PathFilter
	parallel  int
}

// NewSnapshotPipeline creates a SnapshotPipeline.
func NewSnapshotPipeline(
	vcs adapter.VersionControl,
	extractor adapter.SymbolExtractor,
	opts ...PipelineOption,
) SnapshotPipeline {
	p := &snapshotPipeline{
		vcs:       vcs,
		extractor: extractor,
		guard:     NewRepositoryStateGuard(vcs),
		parallel:  DefaultParallel,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *snapshotPipeline) Run(ctx context.Context) (*RunContext, error) {
	rc, err := p.Current(ctx)
	if err != nil {
		return nil, err
	}

	if len(rc.Analyzed) == 0 {
		slog.Info("no analyzable changes, skipping committed state")
		return rc, nil
	}

	err = p.guard.Do(ctx, func(ctx context.Context) error {
		before, err := p.extractAll(ctx, rc, SideBefore)
		if err != nil {
			return newRunError(PhaseExtractBefore, err, nil)
		}

		rc.Before = before

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("snapshots extracted",
		"changes", len(rc.Changes),
		"analyzed", len(rc.Analyzed),
		"before_types", rc.Before.Len(),
		"after_types", rc.After.Len(),
		"failures", len(rc.Failures),
	)

	return rc, nil
}

func (p *snapshotPipeline) Current(ctx context.Context) (*RunContext, error) {
	changes, err := p.vcs.ListChangedPaths(ctx)
	if err != nil {
		return nil, newRunError(PhaseListChanges, ErrVersionControl, err)
	}

	rc := &RunContext{Changes: changes}
	p.selectRecords(rc)

	after, err := p.extractAll(ctx, rc, SideAfter)
	if err != nil {
		return nil, newRunError(PhaseExtractAfter, err, nil)
	}

	rc.After = after

	return rc, nil
}

// selectRecords splits rc.Changes into analyzed records and skipped paths.
func (p *snapshotPipeline) selectRecords(rc *RunContext) {
	for _, record := range rc.Changes {
		switch {
		case p.filter.ExcludedRecord(record):
			slog.Debug("skipping excluded path", "path", record.Path)
		case !p.supported(record):
			slog.Debug("skipping unsupported path", "path", record.Path)
		default:
			rc.Analyzed = append(rc.Analyzed, record)
			continue
		}

		rc.Skipped = append(rc.Skipped, record.Path)
	}
}

func (p *snapshotPipeline) supported(record m.ChangeRecord) bool {
	if after, ok := record.AfterPath(); ok && p.extractor.Supports(after) {
		return true
	}

	if before, ok := record.BeforePath(); ok && p.extractor.Supports(before) {
		return true
	}

	return false
}

type extraction struct {
	path  m.Path
	decls []m.TypeDecl
	err   error
}

// extractAll runs the extractor over the analyzed records for one side and
// merges the results in record order. Per-file failures are recorded in rc
// and do not fail the call; only cancellation does.
func (p *snapshotPipeline) extractAll(ctx context.Context, rc *RunContext, side Side) (m.Surface, error) {
	results := make([]extraction, len(rc.Analyzed))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.parallel)

	for i, record := range rc.Analyzed {
		path, ok := record.AfterPath()
		if side == SideBefore {
			path, ok = record.BeforePath()
		}

		if !ok || !p.extractor.Supports(path) {
			continue
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			decls, err := p.extractor.Extract(groupCtx, path)
			results[i] = extraction{path: path, decls: decls, err: err}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.Surface{}, err
	}

	if err := ctx.Err(); err != nil {
		return m.Surface{}, err
	}

	builder := m.NewSurfaceBuilder()

	for _, result := range results {
		if result.path == "" {
			continue
		}

		err := result.err
		if err == nil {
			err = builder.Add(result.decls...)
		}

		if err != nil {
			p.recordFailure(rc, result.path, side, err)
		}
	}

	return builder.Build(), nil
}

func (p *snapshotPipeline) recordFailure(rc *RunContext, path m.Path, side Side, err error) {
	if !errors.Is(err, ErrExtraction) {
		err = extractionError(string(path), err)
	}

	slog.Warn("omitting file from snapshot", "path", path, "side", side, "error", err)

	rc.Failures = append(rc.Failures, FileFailure{Path: path, Side: side, Err: err})
}

// String renders the failure for display.
func (f FileFailure) String() string {
	return fmt.Sprintf("%s (%s): %v", f.Path, f.Side, f.Err)
}
