package exe

import (
	"fmt"

	"ncexe/internal/details"
	"ncexe/internal/field"
	"ncexe/internal/line"
	"ncexe/internal/theme"
)

// Mach-O load command types dispatched to a nested FieldMap (spec.md
// SUPPLEMENTED FEATURES #3). Values per
// https://github.com/aidansteele/osx-abi-macho-file-format-reference.
const (
	lcSegment64 = 0x19
	lcLoadDylib = 0xC
)

// macho64HeaderMap is the 32-byte Mach-O 64-bit header (spec.md §4.2's
// magic-number table), grounded on original_source/src/exe_types/macho64.rs's
// HEADER yaml block (magic/cputype/cpusubtype/filetype/ncmds/sizeofcmds/
// flags/reserved), generalized from that version's plain on_enter index
// into this codebase's closure-based EnterFn.
var macho64HeaderMap = field.NewFieldMap([]field.FieldDef{
	field.New(0, 4, "Magic Number", field.RawHex),
	field.New(4, 4, "CPU Type", field.LEHex),
	field.New(8, 4, "CPU Sub-Type", field.LEHex),
	field.New(12, 4, "File Type", field.LEHex),
	field.New(16, 4, "Number of Load Commands", field.LEUint).
		WithUsize(field.LEUsize).
		WithEnterFn(enterLoadCommands),
	field.New(20, 4, "Size of Load Commands", field.LEUint),
	field.New(24, 4, "Flags", field.BinString),
	field.Ignore(28, 4),
})

// macho32HeaderMap is the stubbed 32-bit Mach-O handle: spec.md §1 calls
// out 32-bit Mach-O as explicitly stubbed, not panicking, not decoded.
var macho32HeaderMap = field.NewFieldMap([]field.FieldDef{
	field.New(0, 4, "Magic Number", field.RawHex),
	field.New(4, 0, "Status", func(data []byte) (string, error) {
		return "Mach-O 32-bit is not supported", nil
	}),
})

// cmdHeaderMap is the 8-byte (type, length) prefix shared by every Mach-O
// load command (spec.md §4.7's Load-Command List).
var cmdHeaderMap = field.NewFieldMap([]field.FieldDef{
	field.New(0, 4, "Command Type", field.LEHex).WithUsize(field.LEUsize),
	field.New(4, 4, "Command Length", field.LEUint).WithUsize(field.LEUsize),
})

// segment64Map decodes LC_SEGMENT_64's body (after the 8-byte command
// prefix): segname, vmaddr, vmsize, fileoff, filesize, maxprot, initprot,
// nsects, flags.
var segment64Map = field.NewFieldMap([]field.FieldDef{
	field.New(8, 16, "Segment Name", field.CString),
	field.New(24, 8, "VM Address", field.LEPtr),
	field.New(32, 8, "VM Size", field.LEPtr),
	field.New(40, 8, "File Offset", field.LEPtr),
	field.New(48, 8, "File Size", field.LEPtr),
	field.New(56, 4, "Max Protection", field.LEHex),
	field.New(60, 4, "Initial Protection", field.LEHex),
	field.New(64, 4, "# of Sections", field.LEUint),
	field.New(68, 4, "Flags", field.BinString),
})

// dylibMap decodes LC_LOAD_DYLIB's body: the dylib_command's fixed fields
// followed by the elastic, NUL-padded path string.
var dylibMap = field.NewFieldMap([]field.FieldDef{
	field.New(8, 4, "Name Offset", field.LEUint),
	field.New(12, 4, "Timestamp", field.LEUint),
	field.New(16, 4, "Current Version", field.LEHex),
	field.New(20, 4, "Compatibility Version", field.LEHex),
	field.Elastic(24, "Path", field.CString),
})

func init() {
	segSub := segment64Map
	dylibSub := dylibMap
	cmdHeaderMap.Fields[0] = cmdHeaderMap.Fields[0].WithValTable(
		field.ValEntry{Key: lcSegment64, Label: "LC_SEGMENT_64", Sub: &segSub},
		field.ValEntry{Key: lcLoadDylib, Label: "LC_LOAD_DYLIB", Sub: &dylibSub},
	)
}

// enterLoadCommands is macho64HeaderMap's "Number of Load Commands"
// EnterFn: it walks the load-command area starting at the header's
// data_len, decoding each command's 8-byte prefix to find its length, and
// builds the Load-Command List screen (spec.md §4.7), threading through
// whichever WindowColors the enclosing header screen was built with.
func enterLoadCommands(region []byte, dataLen int, colors theme.WindowColors) (line.Screen, error) {
	// ncmds is decoded with its own FieldDef rather than through
	// macho64HeaderMap: this function is part of that map's initializer, so
	// reading the map here would be an initialization cycle.
	ncmds := field.New(16, 4, "Number of Load Commands", field.LEUint).WithUsize(field.LEUsize)
	count := int(ncmds.Usize(region))
	return LoadCommandListScreen(region, dataLen, count, colors), nil
}

// cmdLine is one row of the Load-Command List: the command's own byte
// slice plus its decoded (type, length) prefix. Its Expand closure reruns
// the Details Builder over the full command bytes against whichever
// nested FieldMap the command type matched — unlike the generic Details
// Builder's own ValEntry.Sub handling (which reuses the SAME region it was
// built from), a command's nested layout needs the command's full bytes,
// not just its 8-byte prefix, so this is assembled directly here rather
// than going through details.Build's automatic expansion path.
type cmdLine struct {
	data   []byte
	colors theme.WindowColors
}

func (c cmdLine) AsPairs(maxCols int) (line.PairVec, error) {
	typeStr := cmdHeaderMap.Fields[0].RenderString(c.data)
	lenStr := cmdHeaderMap.Fields[1].RenderString(c.data)
	text := fmt.Sprintf(" %s %9s", typeStr, lenStr)
	return line.PairVec{{Style: &c.colors.Text, Text: line.Truncate(text, maxCols)}}, nil
}

// ActionType makes every load-command row expandable (spec.md §8 Scenario 2
// shows all rows "+"-prefixed), even when the command's type has no nested
// FieldMap registered: expanding such a row just yields no child lines,
// which leaves ExpandedCount at 0 so the row stays collapsed-looking and
// harmless to press Enter on again.
func (c cmdLine) ActionType() line.Action {
	data := c.data
	colors := c.colors
	return line.Action{
		Kind:   line.ActionExpandable,
		Indent: 7,
		Expand: func() ([]line.Line, error) {
			entry, matched := cmdHeaderMap.Fields[0].Lookup(data)
			if !matched || entry.Sub == nil {
				return nil, nil
			}
			return details.Build(data, *entry.Sub, colors), nil
		},
	}
}
