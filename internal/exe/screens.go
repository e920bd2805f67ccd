package exe

import (
	"fmt"

	"ncexe/internal/details"
	"ncexe/internal/line"
	"ncexe/internal/theme"
	"ncexe/internal/ui"
)

const fsizeLength = 10 // column width for file sizes, matching the teacher's fixed-width list columns

// fileLine is one row of the File List screen (spec.md §4.7): type, size,
// right-aligned left-truncated name.
type fileLine struct {
	exe    *MappedExecutable
	colors theme.WindowColors
}

func (f fileLine) AsPairs(maxCols int) (line.PairVec, error) {
	prefix := fmt.Sprintf(" %-7s %*d ", f.exe.Format.String(), fsizeLength, f.exe.Len())
	nameWidth := maxCols - len(prefix)
	if nameWidth < 0 {
		nameWidth = 0
	}
	name := line.TruncateLeft(f.exe.Filename, nameWidth)
	text := prefix + fmt.Sprintf("%*s", nameWidth, name)
	return line.PairVec{{Style: &f.colors.Text, Text: line.Truncate(text, maxCols)}}, nil
}

func (f fileLine) ActionType() line.Action {
	if f.exe.Format == FormatNotExecutable || f.exe.IsEmpty() {
		return line.Action{Kind: line.ActionNone}
	}
	exe := f.exe
	colors := f.colors
	return line.Action{
		Kind: line.ActionNewWindow,
		NewScreen: func() (line.Screen, error) {
			return FileHeaderScreen(exe, colors), nil
		},
	}
}

// FileListScreen builds the root screen for a batch of opened files
// (spec.md §4.7). showNotExe controls whether NotExecutable entries are
// filtered out, mirroring the Configuration flag of the same name.
func FileListScreen(files []*MappedExecutable, showNotExe bool, colors theme.WindowColors) *ui.Screen {
	lines := make([]line.Line, 0, len(files))
	var totalBytes int
	for _, f := range files {
		if f.Format == FormatNotExecutable && !showNotExe {
			continue
		}
		lines = append(lines, fileLine{exe: f, colors: colors})
		totalBytes += f.Len()
	}
	count := len(lines)
	return ui.NewScreen(
		lines,
		colors,
		func() string { return "File List" },
		func(width int) (int, string) {
			return 0, fmt.Sprintf("%d Files, %d Bytes", count, totalBytes)
		},
	)
}

// FileHeaderScreen builds a screen over a single file's root FieldMap,
// rendered by the Details Builder against the full mapped byte view
// (spec.md §4.7's "File Header": "built from MappedExecutable.header_map()
// via the Details Builder over the full byte view").
func FileHeaderScreen(exe *MappedExecutable, colors theme.WindowColors) *ui.Screen {
	hdrMap := exe.HeaderMap()
	lines := details.Build(exe.Mmap(), hdrMap, colors)
	return ui.NewScreen(
		lines,
		colors,
		func() string { return exe.Format.String() },
		func(width int) (int, string) {
			return 0, exe.Filename
		},
	)
}

// LoadCommandListScreen walks the Mach-O load-command area starting at
// headerDataLen, decoding each command's 8-byte (type, length) prefix to
// find the next command's offset (spec.md §4.7's Load-Command List).
func LoadCommandListScreen(region []byte, headerDataLen, count int, colors theme.WindowColors) *ui.Screen {
	lines := make([]line.Line, 0, count)
	offset := headerDataLen
	totalLen := 0
	for i := 0; i < count && offset+cmdHeaderMap.DataLen <= len(region); i++ {
		prefix := region[offset : offset+cmdHeaderMap.DataLen]
		cmdLen := int(cmdHeaderMap.Fields[1].Usize(prefix))
		if cmdLen <= 0 || offset+cmdLen > len(region) {
			break
		}
		lines = append(lines, cmdLine{data: region[offset : offset+cmdLen], colors: colors})
		offset += cmdLen
		totalLen += cmdLen
	}
	return ui.NewScreen(
		lines,
		colors,
		func() string { return "Mach-O Load Commands" },
		func(width int) (int, string) {
			return 0, fmt.Sprintf("Mach-O Load Commands: %d commands, %d bytes", len(lines), totalLen)
		},
	)
}
