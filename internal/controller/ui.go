// Package controller provides output adapters for displaying classification results.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/commitkind/commitkind/internal/model"
)

// Format selects how a report is written.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Option is a functional option for NewUI.
type Option func(*Config)

// Config holds the display settings shared by UI implementations.
type Config struct {
	format  Format
	details bool
	diff    bool
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(c *Config) {
		c.format = format
	}
}

// WithDetails lists every finding, skipped path and failed file under the
// verdict in text output.
func WithDetails(details bool) Option {
	return func(c *Config) {
		c.details = details
	}
}

// WithDiff prints a unified diff of the rendered surfaces in text output.
func WithDiff(diff bool) Option {
	return func(c *Config) {
		c.diff = diff
	}
}

// UI defines how classification results reach the user.
// Implementations can use different output methods (plain text, styled terminal).
type UI interface {
	// DisplayReport writes the verdict. In text mode the first line is
	// always the bare classification name.
	DisplayReport(ctx context.Context, report m.Report) error
	// DisplaySurface writes the rendered API surface of the current tree.
	DisplaySurface(ctx context.Context, surface m.Surface) error
	// DisplayError writes a fatal run error to stderr.
	DisplayError(ctx context.Context, err error)
}

// NewUI picks the UI for cmd's output: StyledUI for text on a terminal,
// SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool, opts ...Option) UI {
	cfg := Config{format: FormatText}
	for _, opt := range opts {
		opt(&cfg)
	}

	if isTTY && cfg.format == FormatText {
		return NewStyledUI(cmd, cfg)
	}

	return NewSimpleUI(cmd, cfg)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
