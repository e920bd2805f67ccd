// Package details implements the Details Builder (spec.md §4.4): the single
// code path that turns a (byte region, FieldMap) pair into a vector of
// detail lines, one per displayable field. This one builder is how
// arbitrarily deep, arbitrarily heterogeneous record trees render with one
// mechanism — ELF headers, Mach-O headers, and every nested load-command
// sub-record all flow through it.
package details

import (
	"fmt"

	"ncexe/internal/field"
	"ncexe/internal/line"
	"ncexe/internal/theme"
)

// detailLine is one rendered field: name column, value column, optional
// label column, and whatever action its FieldDef carries.
type detailLine struct {
	name   string
	value  string
	label  string
	colors theme.WindowColors
	action line.Action
}

func (d detailLine) AsPairs(maxCols int) (line.PairVec, error) {
	text := d.value
	if d.label != "" {
		text += " " + d.label
	}
	pairs := line.PairVec{
		{Style: &d.colors.Text, Text: d.name + " :"},
		{Style: &d.colors.Text, Text: line.Truncate(" "+text, max(0, maxCols-len(d.name)-2))},
	}
	return pairs, nil
}

func (d detailLine) ActionType() line.Action { return d.action }

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Build converts region (decoded against fm) into one Line per displayable
// field, per spec.md §4.4:
//
//   - Left column: the field's name, right-justified to fm.MaxTextLen, ":".
//   - Middle column: the field's formatted value.
//   - Right column: the matching ValEntry's label, if any, in parens.
//   - Action: Expandable (indent 7) if the matched ValEntry has a nested
//     FieldMap; else NewWindow if the field has an EnterFn; else None.
func Build(region []byte, fm field.FieldMap, colors theme.WindowColors) []line.Line {
	lines := make([]line.Line, 0, len(fm.Fields))
	for _, f := range fm.Fields {
		if !f.Displayable() {
			continue
		}
		d := detailLine{
			name:   field.Pad(f.Name, fm.MaxTextLen),
			value:  f.RenderString(region),
			colors: colors,
		}

		entry, matched := f.Lookup(region)
		switch {
		case matched && entry.Sub != nil:
			d.label = labelOf(entry)
			sub := entry.Sub
			subRegion := region
			d.action = line.Action{
				Kind:   line.ActionExpandable,
				Indent: 7,
				Expand: func() ([]line.Line, error) {
					return Build(subRegion, *sub, colors), nil
				},
			}
		case matched:
			d.label = labelOf(entry)
		case f.EnterFn != nil:
			fd := f
			d.action = line.Action{
				Kind: line.ActionNewWindow,
				NewScreen: func() (line.Screen, error) {
					return fd.EnterFn(region, fm.DataLen, colors)
				},
			}
		}

		lines = append(lines, d)
	}
	return lines
}

func labelOf(e field.ValEntry) string {
	return fmt.Sprintf("(%s)", e.Label)
}
