package exe

import "ncexe/internal/field"

// ELF header FieldMaps, one per (bit-length, endianness) combination
// (spec.md SUPPLEMENTED FEATURES #1). Grounded on
// original_source/src/exe_types/elf.rs's HDR_32_LE/HDR_32_BE/HDR_64_LE/
// HDR_64_BE tables, with one correction: original_source's HDR_32_LE lists
// "Program Header Offset" at byte 38 and "Segment Header Offset" at byte
// 32 — reversed relative to every other table and inconsistent with the
// authoritative 32-bit ELF layout (e_phoff at 0x1C/28, e_shoff at 0x20/32,
// both 4 bytes, contiguous with e_flags/e_ehsize/e_phentsize immediately
// after). This table uses the authoritative offsets instead of reproducing
// the source typo.
var elfHeaderMap32LE = field.NewFieldMap([]field.FieldDef{
	field.New(0, 4, "Magic Number", field.RawHex),
	field.New(4, 1, "Bit Length", field.LEHex),
	field.New(5, 1, "Endianness", field.LEHex),
	field.New(6, 1, "ELF Version", field.LEUint),
	field.New(7, 1, "Operating System ABI", field.LEHex),
	field.New(8, 1, "ABI Version", field.LEHex),
	field.Ignore(9, 7),
	field.New(16, 2, "Object File Type", field.LEHex),
	field.New(18, 2, "Instruction Set Architecture", field.LEHex),
	field.New(20, 4, "ELF Version", field.LEUint),
	field.New(24, 4, "Entry Point Address", field.LEPtr),
	field.New(28, 4, "Program Header Offset", field.LEPtr),
	field.New(32, 4, "Segment Header Offset", field.LEPtr),
	field.New(36, 4, "Flags", field.BinString),
	field.New(40, 2, "Header Size", field.LEUint),
	field.New(42, 2, "Program Header Size", field.LEUint),
	field.New(44, 2, "# of Program Headers", field.LEUint),
	field.New(46, 2, "Segment Header Size", field.LEUint),
	field.New(48, 2, "# of Segment Headers", field.LEUint),
	field.New(50, 2, "Section Name Index", field.LEUint),
})

var elfHeaderMap32BE = field.NewFieldMap([]field.FieldDef{
	field.New(0, 4, "Magic Number", field.RawHex),
	field.New(4, 1, "Bit Length", field.BEHex),
	field.New(5, 1, "Endianness", field.BEHex),
	field.New(6, 1, "ELF Version", field.BEUint),
	field.New(7, 1, "Operating System ABI", field.BEHex),
	field.New(8, 1, "ABI Version", field.BEHex),
	field.Ignore(9, 7),
	field.New(16, 2, "Object File Type", field.BEHex),
	field.New(18, 2, "Instruction Set Architecture", field.BEHex),
	field.New(20, 4, "ELF Version", field.BEUint),
	field.New(24, 4, "Entry Point Address", field.BEPtr),
	field.New(28, 4, "Program Header Offset", field.BEPtr),
	field.New(32, 4, "Segment Header Offset", field.BEPtr),
	field.New(36, 4, "Flags", field.BinString),
	field.New(40, 2, "Header Size", field.BEUint),
	field.New(42, 2, "Program Header Size", field.BEUint),
	field.New(44, 2, "# of Program Headers", field.BEUint),
	field.New(46, 2, "Segment Header Size", field.BEUint),
	field.New(48, 2, "# of Segment Headers", field.BEUint),
	field.New(50, 2, "Section Name Index", field.BEUint),
})

var elfHeaderMap64LE = field.NewFieldMap([]field.FieldDef{
	field.New(0, 4, "Magic Number", field.RawHex),
	field.New(4, 1, "Bit Length", field.LEHex),
	field.New(5, 1, "Endianness", field.LEHex),
	field.New(6, 1, "ELF Version", field.LEUint),
	field.New(7, 1, "Operating System ABI", field.LEHex),
	field.New(8, 1, "ABI Version", field.LEHex),
	field.Ignore(9, 7),
	field.New(16, 2, "Object File Type", field.LEHex),
	field.New(18, 2, "Instruction Set Architecture", field.LEHex),
	field.New(20, 4, "ELF Version", field.LEUint),
	field.New(24, 8, "Entry Point Address", field.LEPtr),
	field.New(32, 8, "Program Header Offset", field.LEPtr),
	field.New(40, 8, "Segment Header Offset", field.LEPtr),
	field.New(48, 4, "Flags", field.BinString),
	field.New(52, 2, "Header Size", field.LEUint),
	field.New(54, 2, "Program Header Size", field.LEUint),
	field.New(56, 2, "# of Program Headers", field.LEUint),
	field.New(58, 2, "Segment Header Size", field.LEUint),
	field.New(60, 2, "# of Segment Headers", field.LEUint),
	field.New(62, 2, "Section Name Index", field.LEUint),
})

var elfHeaderMap64BE = field.NewFieldMap([]field.FieldDef{
	field.New(0, 4, "Magic Number", field.RawHex),
	field.New(4, 1, "Bit Length", field.BEHex),
	field.New(5, 1, "Endianness", field.BEHex),
	field.New(6, 1, "ELF Version", field.BEUint),
	field.New(7, 1, "Operating System ABI", field.BEHex),
	field.New(8, 1, "ABI Version", field.BEHex),
	field.Ignore(9, 7),
	field.New(16, 2, "Object File Type", field.BEHex),
	field.New(18, 2, "Instruction Set Architecture", field.BEHex),
	field.New(20, 4, "ELF Version", field.BEUint),
	field.New(24, 8, "Entry Point Address", field.BEPtr),
	field.New(32, 8, "Program Header Offset", field.BEPtr),
	field.New(40, 8, "Segment Header Offset", field.BEPtr),
	field.New(48, 4, "Flags", field.BinString),
	field.New(52, 2, "Header Size", field.BEUint),
	field.New(54, 2, "Program Header Size", field.BEUint),
	field.New(56, 2, "# of Program Headers", field.BEUint),
	field.New(58, 2, "Segment Header Size", field.BEUint),
	field.New(60, 2, "# of Segment Headers", field.BEUint),
	field.New(62, 2, "Section Name Index", field.BEUint),
})
