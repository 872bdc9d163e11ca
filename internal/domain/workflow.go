package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/commitkind/commitkind/internal/controller"
	m "github.com/commitkind/commitkind/internal/model"
)

// ClassifyArgs holds the arguments of one classification run.
type ClassifyArgs struct {
	// CurrentVersion, when set, is bumped according to the verdict.
	CurrentVersion string
	// IncludeSurfaces fills Report.Before and Report.After.
	IncludeSurfaces bool
}

// Workflow drives the user-facing commands.
type Workflow interface {
	// Classify runs the snapshot pipeline, classifies the pending change set
	// and displays the report.
	Classify(ctx context.Context, args ClassifyArgs) (m.Report, error)
	// Surface displays the current API surface of the changed files without
	// touching the working tree.
	Surface(ctx context.Context) error
}

type workflow struct {
	SnapshotPipeline
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(pipeline SnapshotPipeline, ui controller.UI) Workflow {
	return &workflow{
		SnapshotPipeline: pipeline,
		UI:               ui,
	}
}

func (w *workflow) Classify(ctx context.Context, args ClassifyArgs) (m.Report, error) {
	rc, err := w.Run(ctx)
	if err != nil {
		slog.Error("classification run failed", "error", err)
		w.DisplayError(ctx, err)

		return m.Report{}, err
	}

	report, err := BuildReport(rc, args)
	if err != nil {
		err = newRunError(PhaseReport, err, nil)
		w.DisplayError(ctx, err)

		return m.Report{}, err
	}

	slog.Info("classified pending changes",
		"classification", report.Classification,
		"findings", len(report.Findings),
		"skipped", len(report.Skipped),
		"failures", len(report.Failures),
	)

	if err := w.DisplayReport(ctx, report); err != nil {
		return report, fmt.Errorf("display: %w", err)
	}

	return report, nil
}

func (w *workflow) Surface(ctx context.Context) error {
	rc, err := w.Current(ctx)
	if err != nil {
		w.DisplayError(ctx, err)
		return err
	}

	for _, failure := range rc.Failures {
		slog.Warn("file missing from surface", "path", failure.Path, "error", failure.Err)
	}

	if err := w.DisplaySurface(ctx, rc.After); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// BuildReport classifies the snapshots of rc into a Report.
func BuildReport(rc *RunContext, args ClassifyArgs) (m.Report, error) {
	classification := Classify(rc.Before, rc.After)
	findings := Explain(rc.Before, rc.After)

	if verdict := Verdict(findings); verdict != classification {
		// Explain and Classify walk the same rules; a mismatch is a bug.
		slog.Error("findings disagree with classification", "classification", classification, "findings", verdict)
	}

	report := m.Report{
		Classification: classification,
		Findings:       findings,
		Changes:        rc.Changes,
		Skipped:        rc.Skipped,
	}

	for _, failure := range rc.Failures {
		report.Failures = append(report.Failures, m.FileError{
			Path:  failure.Path,
			Side:  string(failure.Side),
			Error: failure.Err.Error(),
		})
	}

	if args.CurrentVersion != "" {
		next, err := NextVersion(args.CurrentVersion, classification)
		if err != nil {
			return m.Report{}, err
		}

		report.CurrentVersion = args.CurrentVersion
		report.NextVersion = next
	}

	if args.IncludeSurfaces {
		report.Before = rc.Before.Lines()
		report.After = rc.After.Lines()
	}

	return report, nil
}
