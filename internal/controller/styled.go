package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "github.com/commitkind/commitkind/internal/model"
)

var (
	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	verdictColors = map[m.Classification]lipgloss.Color{
		m.Fix:   lipgloss.Color("2"), // green
		m.Feat:  lipgloss.Color("3"), // yellow
		m.Major: lipgloss.Color("1"), // red
	}

	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// StyledUI renders text output with colors for interactive terminals.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command, cfg Config) *StyledUI {
	cfg.format = FormatText
	return &StyledUI{SimpleUI: NewSimpleUI(cmd, cfg)}
}

// DisplayReport prints a colored verdict badge and the optional sections.
func (s *StyledUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	badge := badgeStyle.Background(verdictColors[report.Classification]).Render(report.Classification.String())
	s.printf("%s\n", badge)

	if report.NextVersion != "" {
		s.printf("%s\n", faintStyle.Render(fmt.Sprintf("next version: %s (from %s)", report.NextVersion, report.CurrentVersion)))
	}

	if s.cfg.details {
		s.printf("%s", renderDetails(report))
	}

	if s.cfg.diff {
		diff, err := renderSurfaceDiff(report.Before, report.After)
		if err != nil {
			return fmt.Errorf("rendering surface diff: %w", err)
		}

		s.printf("%s", colorizeDiff(diff))
	}

	return nil
}

// DisplayError prints err in bold red.
func (s *StyledUI) DisplayError(_ context.Context, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s %v\n", errorStyle.Render("error:"), err)
}

func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			lines[i] = faintStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}
