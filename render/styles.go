// Package render draws a solved pipe field for the terminal: loop pipes
// as box-drawing glyphs, enclosed cells as I and everything outside dimmed.
package render

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	LoopColor    = lipgloss.Color("#8BC34A") // lime
	StartColor   = lipgloss.Color("#FFC107") // amber
	InsideColor  = lipgloss.Color("#2196F3") // blue
	OutsideColor = lipgloss.Color("#2a3850") // muted
)

// Styles holds one style per kind of cell.
type Styles struct {
	Loop    lipgloss.Style
	Start   lipgloss.Style
	Inside  lipgloss.Style
	Outside lipgloss.Style
}

// DefaultStyles returns the colored palette bound to r.
// A nil renderer means lipgloss.DefaultRenderer().
func DefaultStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Loop:    r.NewStyle().Foreground(LoopColor).Bold(true),
		Start:   r.NewStyle().Foreground(StartColor).Bold(true),
		Inside:  r.NewStyle().Foreground(InsideColor),
		Outside: r.NewStyle().Foreground(OutsideColor).Faint(true),
	}
}

// PlainStyles returns styles that add no escape sequences.
func PlainStyles() Styles {
	return Styles{
		Loop:    lipgloss.NewStyle(),
		Start:   lipgloss.NewStyle(),
		Inside:  lipgloss.NewStyle(),
		Outside: lipgloss.NewStyle(),
	}
}
