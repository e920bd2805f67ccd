// Package region implements the Scrollable Region (spec.md §4.5), the
// central viewport owning the document of lines and all navigation state.
//
// The design generalizes the teacher's flattened-tree-plus-cursor-plus-scroll
// model (brianmcjilton-nnav/cmd/nnav/tui.go: recompute/adjustScroll/flatten)
// from a static tree walk into a mutable, spliceable line vector: expansion
// inserts a contiguous run of child Rows right after their parent, collapse
// removes exactly that run, so unrelated expanded regions elsewhere in the
// list keep correct positions (spec.md §3's ExpansionRecord invariant).
package region

import "ncexe/internal/line"

// Size is a viewport's dimensions, excluding header and footer chrome.
type Size struct {
	Rows int
	Cols int
}

// Row is the region's wrapper around a Line (spec.md §3's
// ScrollableRegionLine): the owned Line, its current action state, and the
// left indent applied when rendering it.
type Row struct {
	Line   line.Line
	Indent int

	// ExpandedCount is the number of contiguously-following child rows
	// currently spliced in just below this row. 0 when collapsed or when
	// the row is not Expandable.
	ExpandedCount int
}

// RenderedRow is one line ready to paint: the prefix glyph, indent, pairs,
// and whether this is the highlighted row.
type RenderedRow struct {
	Prefix      byte
	Indent      int
	Pairs       line.PairVec
	Highlighted bool
}

// ScrollableRegion is the central viewport (spec.md §3).
type ScrollableRegion struct {
	rows   []Row
	size   Size
	topIdx int
	winIdx int
}

// New takes ownership of lines, wrapping each with its initial (collapsed)
// action state.
func New(lines []line.Line) *ScrollableRegion {
	rows := make([]Row, len(lines))
	for i, l := range lines {
		rows[i] = Row{Line: l}
	}
	return &ScrollableRegion{rows: rows}
}

// Len returns the number of rows currently in the document.
func (r *ScrollableRegion) Len() int { return len(r.rows) }

// TopIdx and WinIdx expose the viewport position for tests and for the
// owning Screen's indicator rendering.
func (r *ScrollableRegion) TopIdx() int { return r.topIdx }
func (r *ScrollableRegion) WinIdx() int { return r.winIdx }

// ShowsTopIndicator reports whether the scroll-up indicator (⇑) should be
// drawn on row 0 (spec.md §4.5).
func (r *ScrollableRegion) ShowsTopIndicator() bool { return r.topIdx > 0 }

// ShowsBottomIndicator reports whether the scroll-down indicator (⇓) should
// be drawn on the last visible row.
func (r *ScrollableRegion) ShowsBottomIndicator() bool {
	return r.topIdx+r.size.Rows < len(r.rows)
}

// Show initializes the viewport to size; top_idx and win_idx both start at 0.
func (r *ScrollableRegion) Show(size Size) {
	r.size = size
	r.topIdx = 0
	r.winIdx = 0
	r.clamp()
}

// Resize grows or shrinks the viewport. The absolute highlighted row
// (top_idx + win_idx) is preserved where possible: win_idx is clamped to
// the new viewport height first, then top_idx is recomputed so the same
// row stays highlighted rather than jumping to whatever row now sits at
// the old top_idx (spec.md §4.5, §8 boundary behaviour: "Resize shrinking
// below current win_idx: win_idx clamped to new last row").
func (r *ScrollableRegion) Resize(size Size) {
	absolute := r.topIdx + r.winIdx
	r.size = size

	maxWin := size.Rows - 1
	if maxWin < 0 {
		maxWin = 0
	}
	newWinIdx := r.winIdx
	if newWinIdx > maxWin {
		newWinIdx = maxWin
	}
	r.topIdx = absolute - newWinIdx
	r.winIdx = newWinIdx
	r.clamp()
}

// visibleCount is the number of rows actually occupying the viewport right
// now: min(size.Rows, len-topIdx), floored at 0.
func (r *ScrollableRegion) visibleCount() int {
	n := len(r.rows) - r.topIdx
	if r.size.Rows < n {
		n = r.size.Rows
	}
	if n < 0 {
		n = 0
	}
	return n
}

// clamp restores the invariants of spec.md §3 after any mutation: both
// indices in range, and win_idx within the current viewport height.
func (r *ScrollableRegion) clamp() {
	if len(r.rows) == 0 {
		r.topIdx, r.winIdx = 0, 0
		return
	}
	maxTop := len(r.rows) - 1
	if r.size.Rows > 0 && len(r.rows) >= r.size.Rows {
		if t := len(r.rows) - r.size.Rows; t < maxTop {
			maxTop = t
		}
	}
	if r.topIdx > maxTop {
		r.topIdx = maxTop
	}
	if r.topIdx < 0 {
		r.topIdx = 0
	}
	vis := r.visibleCount()
	if vis <= 0 {
		r.winIdx = 0
		return
	}
	if r.winIdx >= vis {
		r.winIdx = vis - 1
	}
	if r.winIdx < 0 {
		r.winIdx = 0
	}
}

// Key is a logical navigation keystroke (spec.md §9's "the terminal
// abstraction delivers logical PageUp/Down, Home, End, Resize, Enter,
// Character(c) events").
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// HandleKey dispatches a non-Enter navigation key per the table in
// spec.md §4.5.
func (r *ScrollableRegion) HandleKey(k Key) {
	if len(r.rows) == 0 {
		return
	}
	switch k {
	case KeyDown:
		if r.winIdx < r.visibleCount()-1 {
			r.winIdx++
		} else if r.topIdx+r.size.Rows < len(r.rows) {
			r.topIdx++
		}
	case KeyUp:
		if r.winIdx > 0 {
			r.winIdx--
		} else if r.topIdx > 0 {
			r.topIdx--
		}
	case KeyPageDown:
		if r.topIdx+r.size.Rows < len(r.rows) {
			newTop := r.topIdx + r.size.Rows
			if maxTop := len(r.rows) - r.size.Rows; maxTop < newTop {
				newTop = maxTop
			}
			if newTop < 0 {
				newTop = 0
			}
			r.topIdx = newTop
			r.winIdx = 0
		} else {
			r.winIdx = r.lastRowOffset()
		}
	case KeyPageUp:
		if r.topIdx > 0 {
			newTop := r.topIdx - r.size.Rows
			if newTop < 0 {
				newTop = 0
			}
			r.topIdx = newTop
			r.winIdx = 0
		}
	case KeyHome:
		r.topIdx = 0
		r.winIdx = 0
	case KeyEnd:
		newTop := len(r.rows) - r.size.Rows
		if newTop < 0 {
			newTop = 0
		}
		r.topIdx = newTop
		r.winIdx = r.lastRowOffset()
	}
	r.clamp()
}

// lastRowOffset is the win_idx that highlights the final row of the
// document given the current top_idx: min(len-topIdx-1, size.Rows-1).
func (r *ScrollableRegion) lastRowOffset() int {
	off := len(r.rows) - r.topIdx - 1
	if off > r.size.Rows-1 {
		off = r.size.Rows - 1
	}
	if off < 0 {
		off = 0
	}
	return off
}

// HandleEnter implements the ENTER action dispatch of spec.md §4.5. It
// returns a non-nil Screen when the highlighted row's action is a NewWindow
// handler the caller should push onto the screen stack.
func (r *ScrollableRegion) HandleEnter() (line.Screen, error) {
	if len(r.rows) == 0 {
		return nil, nil
	}
	idx := r.topIdx + r.winIdx
	if idx < 0 || idx >= len(r.rows) {
		return nil, nil
	}
	action := r.rows[idx].Line.ActionType()

	switch action.Kind {
	case line.ActionNone:
		return nil, nil

	case line.ActionNewWindow:
		if action.NewScreen == nil {
			return nil, nil
		}
		return action.NewScreen()

	case line.ActionExpandable:
		if r.rows[idx].ExpandedCount > 0 {
			// Collapse: splice out exactly the rows this row spliced in.
			start := idx + 1
			end := start + r.rows[idx].ExpandedCount
			r.rows = append(r.rows[:start], r.rows[end:]...)
			r.rows[idx].ExpandedCount = 0
			r.clamp()
			return nil, nil
		}
		if action.Expand == nil {
			return nil, nil
		}
		children, err := action.Expand()
		if err != nil {
			return nil, err
		}
		childRows := make([]Row, len(children))
		for i, c := range children {
			childRows[i] = Row{Line: c, Indent: action.Indent}
		}
		tail := append([]Row{}, r.rows[idx+1:]...)
		r.rows = append(r.rows[:idx+1], append(childRows, tail...)...)
		r.rows[idx].ExpandedCount = len(children)
		r.clamp()
		return nil, nil
	}
	return nil, nil
}

// Render produces the visible window of rows, with highlight and indent
// already resolved, for the owning Screen to paint.
func (r *ScrollableRegion) Render() ([]RenderedRow, error) {
	vis := r.visibleCount()
	out := make([]RenderedRow, 0, vis)
	for i := 0; i < vis; i++ {
		idx := r.topIdx + i
		row := r.rows[idx]
		action := row.Line.ActionType()
		cols := r.size.Cols - row.Indent - 1
		if cols < 0 {
			cols = 0
		}
		pairs, err := row.Line.AsPairs(cols)
		if err != nil {
			return nil, err
		}
		out = append(out, RenderedRow{
			Prefix:      action.Prefix(row.ExpandedCount > 0),
			Indent:      row.Indent,
			Pairs:       pairs,
			Highlighted: i == r.winIdx,
		})
	}
	return out, nil
}
