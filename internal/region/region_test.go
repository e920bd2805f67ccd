package region

import (
	"errors"
	"testing"

	"ncexe/internal/line"
)

// textLine is a minimal line.Line for tests.
type textLine struct {
	text   string
	action line.Action
}

func (t textLine) AsPairs(maxCols int) (line.PairVec, error) {
	return line.PairVec{{Text: t.text}}, nil
}
func (t textLine) ActionType() line.Action { return t.action }

func plainLines(n int) []line.Line {
	lines := make([]line.Line, n)
	for i := range lines {
		lines[i] = textLine{text: "row"}
	}
	return lines
}

func TestHandleKeyInvariantsNonEmpty(t *testing.T) {
	r := New(plainLines(30))
	r.Show(Size{Rows: 10, Cols: 80})

	keys := []Key{KeyDown, KeyDown, KeyPageDown, KeyUp, KeyPageUp, KeyHome, KeyEnd, KeyDown}
	for _, k := range keys {
		r.HandleKey(k)
		if r.topIdx+r.winIdx >= r.Len() {
			t.Fatalf("invariant broken: top_idx+win_idx=%d >= len=%d", r.topIdx+r.winIdx, r.Len())
		}
		if r.winIdx >= r.size.Rows {
			t.Fatalf("invariant broken: win_idx=%d >= rows=%d", r.winIdx, r.size.Rows)
		}
	}
}

func TestEndOnEmptyListIsNoOp(t *testing.T) {
	r := New(nil)
	r.Show(Size{Rows: 10, Cols: 80})
	r.HandleKey(KeyEnd)
	if r.topIdx != 0 || r.winIdx != 0 {
		t.Fatalf("expected no-op on empty list, got top=%d win=%d", r.topIdx, r.winIdx)
	}
}

func TestPageDownAtEndMovesHighlightNoScroll(t *testing.T) {
	r := New(plainLines(8))
	r.Show(Size{Rows: 10, Cols: 80}) // all 8 rows fit; no scrolling possible
	r.HandleKey(KeyDown)
	r.HandleKey(KeyPageDown)
	if r.topIdx != 0 {
		t.Fatalf("expected no scroll, top_idx=%d", r.topIdx)
	}
	if r.winIdx != 7 {
		t.Fatalf("expected highlight on last row (7), got %d", r.winIdx)
	}
}

func TestExpandCollapseRoundTrip(t *testing.T) {
	expandCalls := 0
	expandable := textLine{
		action: line.Action{
			Kind:   line.ActionExpandable,
			Indent: 7,
			Expand: func() ([]line.Line, error) {
				expandCalls++
				return []line.Line{textLine{text: "child1"}, textLine{text: "child2"}}, nil
			},
		},
	}
	lines := []line.Line{expandable, textLine{text: "after"}}
	r := New(lines)
	r.Show(Size{Rows: 10, Cols: 80})

	before := r.Len()
	if _, err := r.HandleEnter(); err != nil {
		t.Fatal(err)
	}
	if r.Len() != before+2 {
		t.Fatalf("expected 2 rows spliced in, len=%d", r.Len())
	}
	if r.rows[1].Indent != 7 {
		t.Fatalf("expected child indent 7, got %d", r.rows[1].Indent)
	}
	if _, err := r.HandleEnter(); err != nil { // collapse
		t.Fatal(err)
	}
	if r.Len() != before {
		t.Fatalf("round-trip law violated: len=%d, want %d", r.Len(), before)
	}
	if r.rows[1].Line.(textLine).text != "after" {
		t.Fatalf("unrelated row shifted incorrectly")
	}
	if expandCalls != 1 {
		t.Fatalf("expected exactly one expand call, got %d", expandCalls)
	}
}

func TestNestedExpansionKeepsSiblingPositions(t *testing.T) {
	var innerExpand line.ExpandFunc = func() ([]line.Line, error) {
		return []line.Line{textLine{text: "inner-child"}}, nil
	}
	outer := textLine{action: line.Action{
		Kind: line.ActionExpandable, Indent: 2,
		Expand: func() ([]line.Line, error) {
			return []line.Line{
				textLine{action: line.Action{Kind: line.ActionExpandable, Indent: 4, Expand: innerExpand}},
			}, nil
		},
	}}
	sibling := textLine{text: "sibling"}
	r := New([]line.Line{outer, sibling})
	r.Show(Size{Rows: 20, Cols: 80})

	if _, err := r.HandleEnter(); err != nil { // expand outer
		t.Fatal(err)
	}
	// highlight the newly-inserted inner-expandable row and expand it too
	r.HandleKey(KeyDown)
	if _, err := r.HandleEnter(); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 4 { // outer, inner-expandable, inner-child, sibling
		t.Fatalf("len=%d, want 4", r.Len())
	}
	if r.rows[3].Line.(textLine).text != "sibling" {
		t.Fatalf("sibling displaced: %+v", r.rows[3])
	}
}

func TestExpandPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	bad := textLine{action: line.Action{
		Kind: line.ActionExpandable,
		Expand: func() ([]line.Line, error) {
			return nil, boom
		},
	}}
	r := New([]line.Line{bad})
	r.Show(Size{Rows: 10, Cols: 80})
	_, err := r.HandleEnter()
	if !errors.Is(err, boom) {
		t.Fatalf("expected propagated error, got %v", err)
	}
}

func TestResizeClampsWinIdxPreservingHighlight(t *testing.T) {
	r := New(plainLines(20))
	r.Show(Size{Rows: 21, Cols: 80}) // 80x24 -> usable rows 21
	for i := 0; i < 15; i++ {
		r.HandleKey(KeyDown)
	}
	if r.winIdx != 15 || r.topIdx != 0 {
		t.Fatalf("setup failed: top=%d win=%d", r.topIdx, r.winIdx)
	}

	r.Resize(Size{Rows: 9, Cols: 40}) // 40x12 -> usable rows 9

	if r.winIdx != 8 {
		t.Fatalf("win_idx=%d, want 8", r.winIdx)
	}
	if r.topIdx != 7 {
		t.Fatalf("top_idx=%d, want 7", r.topIdx)
	}
	if !r.ShowsTopIndicator() {
		t.Fatal("expected top indicator")
	}
	if !r.ShowsBottomIndicator() {
		t.Fatal("expected bottom indicator")
	}
}

func TestNewWindowActionInvokesHandler(t *testing.T) {
	called := false
	nw := textLine{action: line.Action{
		Kind: line.ActionNewWindow,
		NewScreen: func() (line.Screen, error) {
			called = true
			return "a-screen", nil
		},
	}}
	r := New([]line.Line{nw})
	r.Show(Size{Rows: 10, Cols: 80})
	scr, err := r.HandleEnter()
	if err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
	if scr != "a-screen" {
		t.Fatalf("unexpected screen value: %v", scr)
	}
}
