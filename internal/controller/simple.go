package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/commitkind/commitkind/internal/model"
)

// SimpleUI implements UI with plain text, JSON or YAML written to the
// command's output.
type SimpleUI struct {
	cmd *cobra.Command
	cfg Config
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, cfg Config) *SimpleUI {
	if cfg.format == "" {
		cfg.format = FormatText
	}

	return &SimpleUI{cmd: cmd, cfg: cfg}
}

// DisplayReport prints the verdict, followed by the details and diff when
// enabled.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.cfg.format {
	case FormatJSON:
		return writeJSON(s.out(), report)
	case FormatYAML:
		return writeYAML(s.out(), report)
	}

	s.printf("%s\n", report.Classification)

	if report.NextVersion != "" {
		s.printf("next version: %s (from %s)\n", report.NextVersion, report.CurrentVersion)
	}

	if s.cfg.details {
		s.printf("%s", renderDetails(report))
	}

	if s.cfg.diff {
		diff, err := renderSurfaceDiff(report.Before, report.After)
		if err != nil {
			return fmt.Errorf("rendering surface diff: %w", err)
		}

		s.printf("%s", diff)
	}

	return nil
}

// DisplaySurface prints one line per type member.
func (s *SimpleUI) DisplaySurface(ctx context.Context, surface m.Surface) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := surface.Lines()

	switch s.cfg.format {
	case FormatJSON:
		return writeJSON(s.out(), surfaceDocument{Surface: lines})
	case FormatYAML:
		return writeYAML(s.out(), surfaceDocument{Surface: lines})
	}

	for _, line := range lines {
		s.printf("%s\n", line)
	}

	return nil
}

// DisplayError prints err to the command's error stream.
func (s *SimpleUI) DisplayError(_ context.Context, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "error: %v\n", err)
}

func (s *SimpleUI) out() io.Writer {
	return s.cmd.OutOrStdout()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out(), format, args...)
}

type surfaceDocument struct {
	Surface []string `json:"surface" yaml:"surface"`
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return encoder.Close()
}

func renderDetails(report m.Report) string {
	var b bytes.Buffer

	if len(report.Findings) == 0 {
		b.WriteString("\nno API surface changes\n")
	} else {
		b.WriteString("\n")
		b.WriteString(renderFindingsTable(report.Findings))
	}

	if len(report.Skipped) > 0 {
		fmt.Fprintf(&b, "\nskipped %d path(s):\n", len(report.Skipped))

		for _, path := range report.Skipped {
			fmt.Fprintf(&b, "  %s\n", path)
		}
	}

	if len(report.Failures) > 0 {
		fmt.Fprintf(&b, "\nnot analyzed %d file(s):\n", len(report.Failures))

		for _, failure := range report.Failures {
			fmt.Fprintf(&b, "  %s (%s): %s\n", failure.Path, failure.Side, failure.Error)
		}
	}

	return b.String()
}

func renderFindingsTable(findings []m.Finding) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Change", "Symbol", "Severity"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, finding := range findings {
		table.Append([]string{string(finding.Kind), finding.Subject(), finding.Severity.String()})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(findings)), "", ""})
	table.Render()

	return tableBuffer.String()
}

func renderSurfaceDiff(before, after []string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        diffLines(before),
		B:        diffLines(after),
		FromFile: "committed",
		ToFile:   "pending",
		Context:  2,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", err
	}

	if text == "" {
		return "\nsurfaces are identical\n", nil
	}

	return "\n" + text, nil
}

func diffLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}

	return out
}
