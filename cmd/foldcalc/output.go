package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	w io.Writer

	// label for the "line N:" prefix of diagnostics
	label lipgloss.Style
	// errText for the diagnostic itself
	errText lipgloss.Style
	// echo for input lines printed with --echo
	echo lipgloss.Style
}

// newStyles creates styles for diagnostics written to w. The renderer detects
// whether w is a terminal, so styling disappears when output is redirected.
func newStyles(w io.Writer, plain bool) *styles {
	if plain {
		return &styles{
			w:       w,
			label:   lipgloss.NewStyle(),
			errText: lipgloss.NewStyle(),
			echo:    lipgloss.NewStyle(),
		}
	}
	r := lipgloss.NewRenderer(w)
	return &styles{
		w: w,
		label: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
		errText: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		echo: r.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// diagnostic writes one error for input line n.
func (s *styles) diagnostic(n int, err error) {
	fmt.Fprintf(s.w, "%s %s\n", s.label.Render(fmt.Sprintf("line %d:", n)), s.errText.Render(err.Error()))
}
