// Package line implements the Line Model (spec.md §3, §4.3): the unit the
// Scrollable Region displays. A Line knows only how to render itself into
// attributed segments within a width bound and what happens when ENTER is
// pressed on it; it never knows about its position in the document.
package line

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Pair is one (optional color attribute, text segment) tuple. A nil Style
// means "persist whatever attribute was active on the previous pair" per
// spec.md §4.3.
type Pair struct {
	Style *lipgloss.Style
	Text  string
}

// PairVec is an ordered sequence of Pairs whose combined glyph width must
// not exceed the width bound passed to AsPairs.
type PairVec []Pair

// Width returns the total glyph width of v, using go-runewidth so wide
// runes never desync fixed-width columns.
func (v PairVec) Width() int {
	w := 0
	for _, p := range v {
		w += runewidth.StringWidth(p.Text)
	}
	return w
}

// Truncate trims text (right-truncating, the common case for this viewer's
// fixed-width detail columns) so its width fits within max glyph columns.
// Left-truncation (used for file names) is TruncateLeft, since it needs to
// preserve the right-hand tail, not the left.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= max {
		return text
	}
	return runewidth.Truncate(text, max, "")
}

// TruncateLeft keeps the right-hand tail of text, dropping characters from
// the left until it fits within max glyph columns. Used for file paths
// (spec.md §4.7 — "left-truncated if too long").
func TruncateLeft(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	for len(runes) > 0 && runewidth.StringWidth(string(runes)) > max {
		runes = runes[1:]
	}
	return string(runes)
}

// Screen is an opaque handle to a pushable screen. The concrete type is
// owned by package ui; line deliberately does not know its shape so that
// field/details/exe can hand back "a screen to push" without importing ui
// (which would create an import cycle, since ui itself displays Lines).
type Screen interface{}

// NewScreenFunc is invoked when ENTER is pressed on a line whose action is
// ActionNewWindow. It has already captured whatever byte region/FieldMap it
// needs via closure, so it takes no arguments (spec.md §4.3's "NewWindow(handler)").
type NewScreenFunc func() (Screen, error)

// ExpandFunc builds the child lines spliced in just below an Expandable row
// when it transitions from collapsed to expanded (spec.md §4.5 ENTER handling).
type ExpandFunc func() ([]Line, error)

// ActionKind is the tag of the Action union (spec.md §4.3).
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionNewWindow
	ActionExpandable
)

// Action is the tagged union a Line reports via ActionType(). Only the
// fields relevant to Kind are meaningful.
type Action struct {
	Kind ActionKind

	// ActionNewWindow
	NewScreen NewScreenFunc

	// ActionExpandable
	Expand ExpandFunc
	Indent int
}

// Prefix returns the single left-column glyph the Scrollable Region paints
// at column 0 for a line with this action, given whether an Expandable row
// is currently expanded (spec.md §4.3: "+"/"-"/"="/blank).
func (a Action) Prefix(expanded bool) byte {
	switch a.Kind {
	case ActionNewWindow:
		return '='
	case ActionExpandable:
		if expanded {
			return '-'
		}
		return '+'
	default:
		return ' '
	}
}

// Line is the unit consumed by the Scrollable Region (spec.md §4.3).
type Line interface {
	// AsPairs produces attributed segments whose summed glyph width is
	// <= maxCols. Truncation is the line's own responsibility.
	AsPairs(maxCols int) (PairVec, error)

	// ActionType reports the line's current action kind.
	ActionType() Action
}
