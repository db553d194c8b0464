// Package ui provides terminal styling for issuegate diagnostics.
//
// Hooks frequently run with stderr attached to a pipe rather than a
// terminal, so all styling is optional: callers decide based on TTY
// detection, and the colorprofile writer degrades colors to what the
// terminal actually supports.
package ui

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Writer wraps w so that styled output is downsampled to the color
// support of the attached terminal.
func Writer(w io.Writer) io.Writer {
	return colorprofile.NewWriter(w, os.Environ())
}

// Renderer formats status lines, plainly or with color.
type Renderer struct {
	styled bool
}

// NewRenderer creates a Renderer. When styled is false all output is plain
// text, suitable for non-terminal destinations.
func NewRenderer(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// OK renders a passing status line.
func (r *Renderer) OK(msg string) string {
	if r.styled {
		return successStyle.Render("✓") + " " + msg
	}
	return "✓ " + msg
}

// Fail renders a failing status line.
func (r *Renderer) Fail(msg string) string {
	if r.styled {
		return errorStyle.Render("✗") + " " + msg
	}
	return "✗ " + msg
}

// Warn renders a warning status line.
func (r *Renderer) Warn(msg string) string {
	if r.styled {
		return warnStyle.Render("!") + " " + msg
	}
	return "! " + msg
}

// Error renders an error message.
func (r *Renderer) Error(msg string) string {
	if r.styled {
		return errorStyle.Render(msg)
	}
	return msg
}

// Muted renders secondary text.
func (r *Renderer) Muted(msg string) string {
	if r.styled {
		return mutedStyle.Render(msg)
	}
	return msg
}

// Bold renders emphasized text.
func (r *Renderer) Bold(msg string) string {
	if r.styled {
		return boldStyle.Render(msg)
	}
	return msg
}
