package field

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"
)

// leUint/beUint decode an unsigned integer of 1, 2, 4 or 8 bytes. Callers
// guarantee data is exactly that length — these back RawFormatFuncs which
// are only ever invoked against an already-sliced field region.
func leUint(data []byte) uint64 {
	switch len(data) {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(data))
	case 4:
		return uint64(binary.LittleEndian.Uint32(data))
	case 8:
		return binary.LittleEndian.Uint64(data)
	default:
		panic(fmt.Sprintf("field: unsupported integer width %d", len(data)))
	}
}

func beUint(data []byte) uint64 {
	switch len(data) {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(binary.BigEndian.Uint16(data))
	case 4:
		return uint64(binary.BigEndian.Uint32(data))
	case 8:
		return binary.BigEndian.Uint64(data)
	default:
		panic(fmt.Sprintf("field: unsupported integer width %d", len(data)))
	}
}

// LEUint formats data as a little-endian unsigned decimal.
func LEUint(data []byte) (string, error) { return fmt.Sprintf("%d", leUint(data)), nil }

// BEUint formats data as a big-endian unsigned decimal.
func BEUint(data []byte) (string, error) { return fmt.Sprintf("%d", beUint(data)), nil }

// LEUsize adapts LEUint as a ToUsizeFunc.
func LEUsize(data []byte) uint64 { return leUint(data) }

// BEUsize adapts BEUint as a ToUsizeFunc.
func BEUsize(data []byte) uint64 { return beUint(data) }

// LEHex formats data as a little-endian unsigned value in zero-padded hex,
// width scaled to the field's byte length.
func LEHex(data []byte) (string, error) {
	return fmt.Sprintf("%0*X", len(data)*2, leUint(data)), nil
}

// BEHex formats data as a big-endian unsigned value in zero-padded hex.
func BEHex(data []byte) (string, error) {
	return fmt.Sprintf("%0*X", len(data)*2, beUint(data)), nil
}

// RawHex renders data as a plain hex dump, byte order as given — used for
// fields like "Magic Number" which are compared byte-for-byte, not as an
// interpreted integer.
func RawHex(data []byte) (string, error) {
	var b strings.Builder
	for _, c := range data {
		fmt.Fprintf(&b, "%02X", c)
	}
	return b.String(), nil
}

// LEPtr formats data as a little-endian pointer-style hex address
// ("0x" plus zero-padded hex, width scaled to the field's byte length).
func LEPtr(data []byte) (string, error) {
	return fmt.Sprintf("0x%0*X", len(data)*2, leUint(data)), nil
}

// BEPtr formats data as a big-endian pointer-style hex address.
func BEPtr(data []byte) (string, error) {
	return fmt.Sprintf("0x%0*X", len(data)*2, beUint(data)), nil
}

// BinString renders each byte of data as 8 bits, space-separated — used
// for flag words (spec.md §4.1).
func BinString(data []byte) (string, error) {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%08b", b)
	}
	return strings.Join(parts, " "), nil
}

// CString reads a NUL-terminated string from data (or all of data if no
// NUL is present — the elastic-field case). Invalid UTF-8 is reported as a
// decode failure per spec.md §7.
func CString(data []byte) (string, error) {
	end := len(data)
	for i, b := range data {
		if b == 0 {
			end = i
			break
		}
	}
	s := string(data[:end])
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("invalid UTF-8 in C string")
	}
	return s, nil
}

// Pad left-pads s with spaces to width (a no-op if s is already that wide
// or wider) — the left-pad-space-string primitive of spec.md §4.1, used by
// the Details Builder for the field-name column.
func Pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
