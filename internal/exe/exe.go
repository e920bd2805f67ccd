// Package exe implements the Executable Registry (spec.md §4.2): magic-
// number sniffing and dispatch to a per-format decoder, each exposing the
// file's mapped bytes and a root FieldMap. It also hosts the Predefined
// Screens (spec.md §4.7), since those factories need the concrete decoder
// types and already sit at the top of the dependency graph (popup ← line ←
// {field, region} ← {details, ui} ← exe).
//
// Grounded on original_source/src/exe_types/{mod,elf,macho64,notexe}.rs for
// the decode semantics, and on golang.org/x/sys/unix for the read-only
// mmap the teacher's dependency tree already carries transitively through
// its bubbletea stack.
package exe

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"ncexe/internal/field"
)

// Format tags a MappedExecutable's decoded kind (spec.md §3).
type Format int

const (
	FormatNotExecutable Format = iota
	FormatELF
	FormatMachO64
	FormatMachO32
)

func (f Format) String() string {
	switch f {
	case FormatELF:
		return "ELF"
	case FormatMachO64:
		return "Mach-O 64"
	case FormatMachO32:
		return "Mach-O 32"
	default:
		return "Not Executable"
	}
}

// MappedExecutable is one decoded (or failed-to-decode) input file
// (spec.md §3). Its byte view is immutable for the handle's lifetime.
type MappedExecutable struct {
	Filename string
	Format   Format
	Message  string // populated only for FormatNotExecutable

	data   []byte
	hdrMap field.FieldMap
}

// Len returns the mapped byte length; 0 for a NotExecutable handle.
func (m *MappedExecutable) Len() int { return len(m.data) }

// IsEmpty is the file-list filter's predicate (spec.md §4.2).
func (m *MappedExecutable) IsEmpty() bool { return len(m.data) == 0 }

// Mmap returns the read-only byte view. Callers must not hold onto it past
// Close.
func (m *MappedExecutable) Mmap() []byte { return m.data }

// HeaderMap returns the root FieldMap chosen at Open time.
func (m *MappedExecutable) HeaderMap() field.FieldMap { return m.hdrMap }

// Close releases the mapping. NotExecutable handles have nothing mapped, so
// Close is always safe to call.
func (m *MappedExecutable) Close() error {
	if m.data == nil {
		return nil
	}
	return unix.Munmap(m.data)
}

func notExecutable(filename, msg string) *MappedExecutable {
	return &MappedExecutable{Filename: filename, Format: FormatNotExecutable, Message: msg}
}

// Open implements spec.md §4.2's algorithm. It never returns a non-nil
// error for a bad input file — bad files come back as a FormatNotExecutable
// handle so a batch of paths can mix good and bad entries. No path through
// Open returns a non-nil error (an empty path also becomes a
// NotExecutable handle); the signature keeps the error return for symmetry
// with the rest of the codebase's I/O boundary functions.
func Open(path string) (*MappedExecutable, error) {
	f, err := os.Open(path)
	if err != nil {
		return notExecutable(path, err.Error()), nil
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return notExecutable(path, err.Error()), nil
	}
	size := info.Size()
	if size < 4 {
		return notExecutable(path, "Too small"), nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return notExecutable(path, fmt.Sprintf("mmap failed: %s", err)), nil
	}

	format, hdrMap, ok := sniff(data)
	if !ok {
		unix.Munmap(data)
		return notExecutable(path, "Invalid magic"), nil
	}

	return &MappedExecutable{
		Filename: path,
		Format:   format,
		data:     data,
		hdrMap:   hdrMap,
	}, nil
}

// sniff dispatches on the magic-number table of spec.md §4.2.
func sniff(data []byte) (Format, field.FieldMap, bool) {
	magicLE := binary.LittleEndian.Uint32(data[:4])
	magicBE := binary.BigEndian.Uint32(data[:4])

	switch {
	case magicLE == 0xFEEDFACF || magicBE == 0xFEEDFACF:
		return FormatMachO64, macho64HeaderMap, true
	case magicLE == 0xFEEDFACE || magicBE == 0xFEEDFACE:
		return FormatMachO32, macho32HeaderMap, true
	case magicLE == 0x464C457F || magicBE == 0x464C457F ||
		magicLE == 0x7F454C46 || magicBE == 0x7F454C46:
		return elfSniff(data)
	default:
		return FormatNotExecutable, field.FieldMap{}, false
	}
}

// elfSniff reads bytes 4 (bit length) and 5 (endianness) to select one of
// the four static ELF header tables (spec.md §4.2 step 4).
func elfSniff(data []byte) (Format, field.FieldMap, bool) {
	if len(data) < 6 {
		return FormatNotExecutable, field.FieldMap{}, false
	}
	bits, endian := data[4], data[5]
	switch {
	case bits == 1 && endian == 1:
		return FormatELF, elfHeaderMap32LE, true
	case bits == 1 && endian == 2:
		return FormatELF, elfHeaderMap32BE, true
	case bits == 2 && endian == 1:
		return FormatELF, elfHeaderMap64LE, true
	case bits == 2 && endian == 2:
		return FormatELF, elfHeaderMap64BE, true
	default:
		return FormatNotExecutable, field.FieldMap{}, false
	}
}
