// Package theme is the Color/Theme subsystem's concrete realization
// (spec.md §2 component 8, §3's Configuration, §5's "Color sets are
// retrieved by name once per screen construction and held as shared
// read-only references"). spec.md treats the theme subsystem as mostly an
// external collaborator; this package supplies the minimal interface it
// describes — named, swappable WindowColors sets — built on lipgloss the
// way the teacher repo styles its TUI (brianmcjilton-nnav/cmd/nnav/tui.go).
package theme

import "github.com/charmbracelet/lipgloss"

// WindowColors is the set of styles one screen needs: header chrome, body
// text, the highlighted row, and error popups.
type WindowColors struct {
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Text      lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
}

// registry maps each theme name (the value a Configuration's Theme field
// selects) to its palette.
type registry map[string]WindowColors

var themes = registry{
	"dark": {
		Header:    lipgloss.NewStyle().Bold(true),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight: lipgloss.NewStyle().Reverse(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"light": {
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Highlight: lipgloss.NewStyle().Reverse(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	},
}

// Get returns the named theme's WindowColors, falling back to "dark" for
// an unknown name — the viewer should never refuse to start over a typo in
// --theme.
func Get(name string) WindowColors {
	if wc, ok := themes[name]; ok {
		return wc
	}
	return themes["dark"]
}
