// Package field implements the Field Map Library (spec.md §4.1): declarative,
// table-driven descriptions of fixed-layout byte regions. FieldMaps are
// built once, at package-init time, as read-only data; decoding walks that
// data against a byte slice at run time with no per-format code.
package field

import (
	"ncexe/internal/line"
	"ncexe/internal/popup"
	"ncexe/internal/theme"
)

// RawFormatFunc turns an already-sliced field region into its display
// string. It is only ever called with exactly the bytes the field's Range
// covers, so it never needs to bounds-check; it can still fail (e.g. a
// C string with invalid UTF-8), which FieldDef.RenderString reports to the
// popup collaborator.
type RawFormatFunc func(data []byte) (string, error)

// ToUsizeFunc extracts the numeric key used for ValTable lookups.
type ToUsizeFunc func(data []byte) uint64

// EnterFunc builds a new screen to push when ENTER is pressed on a field
// that has one (spec.md §4.4's "NewWindow" case). It receives the full
// enclosing byte region and the owning FieldMap's DataLen, which is enough
// context for handlers like the Mach-O "Load Commands" field to locate the
// load-command area that follows the static header, plus the active
// WindowColors so the pushed screen matches the rest of the stack instead
// of hardcoding a theme of its own.
type EnterFunc func(region []byte, dataLen int, colors theme.WindowColors) (line.Screen, error)

// ValEntry is one row of a ValTable: a numeric key, its human label, and
// an optional nested FieldMap that makes the matching detail line
// expandable in place (spec.md §3).
type ValEntry struct {
	Key   uint64
	Label string
	Sub   *FieldMap
}

// FieldDef describes one field of a record (spec.md §3). Instances are
// built once via New/Ignore plus the With* builders and then stored in
// read-only package-level FieldMap tables.
type FieldDef struct {
	Offset int // start of the field within the enclosing region
	Length int // 0 means "from Offset to the end of the region" (elastic)
	Name   string

	Format  RawFormatFunc
	ToUsize ToUsizeFunc
	ValTbl  []ValEntry
	EnterFn EnterFunc
}

// New declares a displayable field at [offset, offset+length) with the
// given name and formatter.
func New(offset, length int, name string, format RawFormatFunc) FieldDef {
	return FieldDef{Offset: offset, Length: length, Name: name, Format: format}
}

// Elastic declares a variable-length field that runs from offset to the
// end of whatever region it is decoded against (spec.md §3's "range.end ==
// range.start" rule) — used for trailing C strings such as LC_LOAD_DYLIB's
// path.
func Elastic(offset int, name string, format RawFormatFunc) FieldDef {
	return FieldDef{Offset: offset, Length: 0, Name: name, Format: format}
}

// Ignore declares an undisplayable filler field: it still occupies bytes
// (and so contributes to FieldMap.DataLen) but is never rendered.
func Ignore(offset, length int) FieldDef {
	return FieldDef{Offset: offset, Length: length}
}

// WithUsize attaches integer extraction, required before WithValTable.
func (f FieldDef) WithUsize(fn ToUsizeFunc) FieldDef {
	f.ToUsize = fn
	return f
}

// WithValTable attaches a finite value lookup. Per spec.md §3's invariant,
// callers should only use this after WithUsize.
func (f FieldDef) WithValTable(entries ...ValEntry) FieldDef {
	f.ValTbl = entries
	return f
}

// WithEnterFn attaches a new-screen handler (spec.md §4.4's enter_fn).
func (f FieldDef) WithEnterFn(fn EnterFunc) FieldDef {
	f.EnterFn = fn
	return f
}

// Displayable reports whether f has a formatter at all.
func (f FieldDef) Displayable() bool {
	return f.Format != nil
}

// slice returns the bytes of f's region within data, honoring the elastic
// (Length == 0) rule.
func (f FieldDef) slice(data []byte) ([]byte, bool) {
	if f.Offset < 0 || f.Offset > len(data) {
		return nil, false
	}
	if f.Length == 0 {
		return data[f.Offset:], true
	}
	end := f.Offset + f.Length
	if end > len(data) {
		return nil, false
	}
	return data[f.Offset:end], true
}

// RenderString produces the formatted value of f against the enclosing
// region's bytes. On any decoding failure (out-of-bounds slice, a raw
// formatter error) it reports the failure to the popup collaborator and
// returns the "???" placeholder, per spec.md §4.1/§7 — it never aborts
// the caller's rendering of sibling fields.
func (f FieldDef) RenderString(region []byte) string {
	data, ok := f.slice(region)
	if !ok {
		popup.Report(
			"Error: Unable to generate string for field: "+f.Name,
			"field requires bytes at offset range beyond the decoded region",
		)
		return "???"
	}
	s, err := f.Format(data)
	if err != nil {
		popup.Report(
			"Error: Unable to generate string for field: "+f.Name,
			err.Error(),
		)
		return "???"
	}
	return s
}

// Usize returns f's integer value against region. It panics if f has no
// ToUsize — by design, since only call sites that statically know a field
// carries a count or type tag should ever call this (spec.md §4.1).
func (f FieldDef) Usize(region []byte) uint64 {
	if f.ToUsize == nil {
		panic("field: Usize called on field with no ToUsize: " + f.Name)
	}
	data, ok := f.slice(region)
	if !ok {
		panic("field: Usize called out of bounds on field: " + f.Name)
	}
	return f.ToUsize(data)
}

// Lookup returns the ValEntry matching f's value against region, if any.
func (f FieldDef) Lookup(region []byte) (ValEntry, bool) {
	if f.ToUsize == nil || len(f.ValTbl) == 0 {
		return ValEntry{}, false
	}
	key := f.Usize(region)
	for _, e := range f.ValTbl {
		if e.Key == key {
			return e, true
		}
	}
	return ValEntry{}, false
}

// FieldMap is an ordered, read-only collection of FieldDefs describing one
// record's layout (spec.md §3).
type FieldMap struct {
	Fields     []FieldDef
	DataLen    int
	MaxTextLen int
}

// NewFieldMap walks fields once, summing DataLen over non-elastic fields
// and taking the widest Name, matching spec.md §8 invariant #4.
func NewFieldMap(fields []FieldDef) FieldMap {
	fm := FieldMap{Fields: fields}
	for _, f := range fields {
		fm.DataLen += f.Length
		if n := len(f.Name); n > fm.MaxTextLen {
			fm.MaxTextLen = n
		}
	}
	return fm
}
