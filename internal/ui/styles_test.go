package ui

import (
	"strings"
	"testing"
)

func TestRendererPlain(t *testing.T) {
	t.Parallel()

	r := NewRenderer(false)
	if got := r.OK("hooks installed"); got != "✓ hooks installed" {
		t.Errorf("OK = %q, want plain checkmark line", got)
	}
	if got := r.Fail("git not found"); got != "✗ git not found" {
		t.Errorf("Fail = %q, want plain cross line", got)
	}
	if got := r.Error("boom"); got != "boom" {
		t.Errorf("Error = %q, want unstyled text", got)
	}
}

func TestRendererStyledKeepsText(t *testing.T) {
	t.Parallel()

	r := NewRenderer(true)
	checks := map[string]string{
		r.OK("hooks installed"): "hooks installed",
		r.Fail("git not found"): "git not found",
		r.Warn("not installed"): "not installed",
		r.Error("boom"):         "boom",
		r.Muted("details"):      "details",
		r.Bold("issuegate"):     "issuegate",
	}
	for got, want := range checks {
		if !strings.Contains(got, want) {
			t.Errorf("styled output %q lost its message %q", got, want)
		}
	}
}
