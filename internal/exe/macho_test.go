package exe

import (
	"encoding/binary"
	"testing"

	"ncexe/internal/line"
	"ncexe/internal/theme"
	"ncexe/internal/ui"
)

// buildSegment64Cmd constructs a minimal LC_SEGMENT_64 command: 8-byte
// prefix (type, length) followed by the 16-byte segname and the rest of
// segment64Map's fixed fields.
func buildSegment64Cmd(segname string, vmaddr uint64) []byte {
	const cmdLen = 8 + 16 + 8 + 8 + 8 + 8 + 4 + 4 + 4 + 4
	data := make([]byte, cmdLen)
	binary.LittleEndian.PutUint32(data[0:4], lcSegment64)
	binary.LittleEndian.PutUint32(data[4:8], cmdLen)
	copy(data[8:24], segname)
	binary.LittleEndian.PutUint64(data[24:32], vmaddr)
	return data
}

func buildDylibCmd(path string) []byte {
	fixedLen := 8 + 16
	total := fixedLen + len(path) + 1
	data := make([]byte, total)
	binary.LittleEndian.PutUint32(data[0:4], lcLoadDylib)
	binary.LittleEndian.PutUint32(data[4:8], uint32(total))
	copy(data[24:], path)
	return data
}

func TestLoadCommandListDecodesSegmentAndDylib(t *testing.T) {
	seg := buildSegment64Cmd("__TEXT", 0x100000000)
	dylib := buildDylibCmd("/usr/lib/libSystem.B.dylib")

	region := append(append([]byte{}, seg...), dylib...)
	colors := theme.Get("dark")

	scr := LoadCommandListScreen(region, 0, 2, colors)
	if scr.Region.Len() != 2 {
		t.Fatalf("expected 2 command rows, got %d", scr.Region.Len())
	}

	_, err := scr.Region.HandleEnter() // expand segment row
	if err != nil {
		t.Fatal(err)
	}
	if scr.Region.Len() != 2+9 { // segment64Map has 9 displayable fields
		t.Fatalf("expected segment expansion to add 9 rows, len=%d", scr.Region.Len())
	}
}

func TestCmdLineActionExpandableYieldsNoChildrenForUnknownType(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], 0xFFFFFF)
	binary.LittleEndian.PutUint32(data[4:8], 8)
	cl := cmdLine{data: data, colors: theme.Get("dark")}
	action := cl.ActionType()
	if action.Kind != line.ActionExpandable {
		t.Fatal("expected every load-command row to be expandable")
	}
	children, err := action.Expand()
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(children) != 0 {
		t.Fatalf("expected no children for unrecognized command type, got %d", len(children))
	}
}

func TestEnterLoadCommandsBuildsScreen(t *testing.T) {
	seg := buildSegment64Cmd("__TEXT", 0)
	region := make([]byte, 32)
	binary.LittleEndian.PutUint32(region[0:4], 0xFEEDFACF)
	binary.LittleEndian.PutUint32(region[16:20], 1) // ncmds = 1
	region = append(region, seg...)

	scr, err := enterLoadCommands(region, 32, theme.Get("dark"))
	if err != nil {
		t.Fatal(err)
	}
	pushed, ok := scr.(*ui.Screen)
	if !ok {
		t.Fatalf("expected *ui.Screen, got %T", scr)
	}
	if pushed.Region.Len() != 1 {
		t.Fatalf("expected 1 load command row, got %d", pushed.Region.Len())
	}
}
