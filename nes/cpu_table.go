package nes

// addressing modes
const (
	_ = iota
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeAccumulator
	modeImmediate
	modeImplied
	modeIndexedIndirect
	modeIndirect
	modeIndirectIndexed
	modeRelative
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
)

type instruction struct {
	Opcode     byte
	Name       string
	Mode       byte // the addressing mode
	Size       byte // the size in bytes
	Cycles     byte // the number of cycles used (not including conditional cycles)
	PageCycles byte // the number of cycles used when a page is crossed
}

// instructions is the 256-entry dispatch table. The 151 official opcodes
// carry their documented addressing mode and base cycle count; undocumented
// opcodes keep their usual names but are stubbed with zero cycles and no
// operand fetch.
var instructions = [256]instruction{
	{Opcode: 0, Name: "BRK", Mode: 6, Size: 1, Cycles: 7, PageCycles: 0},
	{Opcode: 1, Name: "ORA", Mode: 7, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 2, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 3, Name: "SLO", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 4, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 5, Name: "ORA", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 6, Name: "ASL", Mode: 11, Size: 2, Cycles: 5, PageCycles: 0},
	{Opcode: 7, Name: "SLO", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 8, Name: "PHP", Mode: 6, Size: 1, Cycles: 3, PageCycles: 0},
	{Opcode: 9, Name: "ORA", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 10, Name: "ASL", Mode: 4, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 11, Name: "ANC", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 12, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 13, Name: "ORA", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 14, Name: "ASL", Mode: 1, Size: 3, Cycles: 6, PageCycles: 0},
	{Opcode: 15, Name: "SLO", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 16, Name: "BPL", Mode: 10, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 17, Name: "ORA", Mode: 9, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 18, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 19, Name: "SLO", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 20, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 21, Name: "ORA", Mode: 12, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 22, Name: "ASL", Mode: 12, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 23, Name: "SLO", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 24, Name: "CLC", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 25, Name: "ORA", Mode: 3, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 26, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 27, Name: "SLO", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 28, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 29, Name: "ORA", Mode: 2, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 30, Name: "ASL", Mode: 2, Size: 3, Cycles: 7, PageCycles: 0},
	{Opcode: 31, Name: "SLO", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 32, Name: "JSR", Mode: 1, Size: 3, Cycles: 6, PageCycles: 0},
	{Opcode: 33, Name: "AND", Mode: 7, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 34, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 35, Name: "RLA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 36, Name: "BIT", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 37, Name: "AND", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 38, Name: "ROL", Mode: 11, Size: 2, Cycles: 5, PageCycles: 0},
	{Opcode: 39, Name: "RLA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 40, Name: "PLP", Mode: 6, Size: 1, Cycles: 4, PageCycles: 0},
	{Opcode: 41, Name: "AND", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 42, Name: "ROL", Mode: 4, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 43, Name: "ANC", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 44, Name: "BIT", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 45, Name: "AND", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 46, Name: "ROL", Mode: 1, Size: 3, Cycles: 6, PageCycles: 0},
	{Opcode: 47, Name: "RLA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 48, Name: "BMI", Mode: 10, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 49, Name: "AND", Mode: 9, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 50, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 51, Name: "RLA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 52, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 53, Name: "AND", Mode: 12, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 54, Name: "ROL", Mode: 12, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 55, Name: "RLA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 56, Name: "SEC", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 57, Name: "AND", Mode: 3, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 58, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 59, Name: "RLA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 60, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 61, Name: "AND", Mode: 2, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 62, Name: "ROL", Mode: 2, Size: 3, Cycles: 7, PageCycles: 0},
	{Opcode: 63, Name: "RLA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 64, Name: "RTI", Mode: 6, Size: 1, Cycles: 6, PageCycles: 0},
	{Opcode: 65, Name: "EOR", Mode: 7, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 66, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 67, Name: "SRE", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 68, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 69, Name: "EOR", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 70, Name: "LSR", Mode: 11, Size: 2, Cycles: 5, PageCycles: 0},
	{Opcode: 71, Name: "SRE", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 72, Name: "PHA", Mode: 6, Size: 1, Cycles: 3, PageCycles: 0},
	{Opcode: 73, Name: "EOR", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 74, Name: "LSR", Mode: 4, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 75, Name: "ALR", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 76, Name: "JMP", Mode: 1, Size: 3, Cycles: 3, PageCycles: 0},
	{Opcode: 77, Name: "EOR", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 78, Name: "LSR", Mode: 1, Size: 3, Cycles: 6, PageCycles: 0},
	{Opcode: 79, Name: "SRE", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 80, Name: "BVC", Mode: 10, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 81, Name: "EOR", Mode: 9, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 82, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 83, Name: "SRE", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 84, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 85, Name: "EOR", Mode: 12, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 86, Name: "LSR", Mode: 12, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 87, Name: "SRE", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 88, Name: "CLI", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 89, Name: "EOR", Mode: 3, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 90, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 91, Name: "SRE", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 92, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 93, Name: "EOR", Mode: 2, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 94, Name: "LSR", Mode: 2, Size: 3, Cycles: 7, PageCycles: 0},
	{Opcode: 95, Name: "SRE", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 96, Name: "RTS", Mode: 6, Size: 1, Cycles: 6, PageCycles: 0},
	{Opcode: 97, Name: "ADC", Mode: 7, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 98, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 99, Name: "RRA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 100, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 101, Name: "ADC", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 102, Name: "ROR", Mode: 11, Size: 2, Cycles: 5, PageCycles: 0},
	{Opcode: 103, Name: "RRA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 104, Name: "PLA", Mode: 6, Size: 1, Cycles: 4, PageCycles: 0},
	{Opcode: 105, Name: "ADC", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 106, Name: "ROR", Mode: 4, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 107, Name: "ARR", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 108, Name: "JMP", Mode: 8, Size: 3, Cycles: 5, PageCycles: 0},
	{Opcode: 109, Name: "ADC", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 110, Name: "ROR", Mode: 1, Size: 3, Cycles: 6, PageCycles: 0},
	{Opcode: 111, Name: "RRA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 112, Name: "BVS", Mode: 10, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 113, Name: "ADC", Mode: 9, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 114, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 115, Name: "RRA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 116, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 117, Name: "ADC", Mode: 12, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 118, Name: "ROR", Mode: 12, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 119, Name: "RRA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 120, Name: "SEI", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 121, Name: "ADC", Mode: 3, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 122, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 123, Name: "RRA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 124, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 125, Name: "ADC", Mode: 2, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 126, Name: "ROR", Mode: 2, Size: 3, Cycles: 7, PageCycles: 0},
	{Opcode: 127, Name: "RRA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 128, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 129, Name: "STA", Mode: 7, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 130, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 131, Name: "SAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 132, Name: "STY", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 133, Name: "STA", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 134, Name: "STX", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 135, Name: "SAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 136, Name: "DEY", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 137, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 138, Name: "TXA", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 139, Name: "XAA", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 140, Name: "STY", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 141, Name: "STA", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 142, Name: "STX", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 143, Name: "SAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 144, Name: "BCC", Mode: 10, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 145, Name: "STA", Mode: 9, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 146, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 147, Name: "AHX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 148, Name: "STY", Mode: 12, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 149, Name: "STA", Mode: 12, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 150, Name: "STX", Mode: 13, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 151, Name: "SAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 152, Name: "TYA", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 153, Name: "STA", Mode: 3, Size: 3, Cycles: 5, PageCycles: 0},
	{Opcode: 154, Name: "TXS", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 155, Name: "TAS", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 156, Name: "SHY", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 157, Name: "STA", Mode: 2, Size: 3, Cycles: 5, PageCycles: 0},
	{Opcode: 158, Name: "SHX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 159, Name: "AHX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 160, Name: "LDY", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 161, Name: "LDA", Mode: 7, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 162, Name: "LDX", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 163, Name: "LAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 164, Name: "LDY", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 165, Name: "LDA", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 166, Name: "LDX", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 167, Name: "LAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 168, Name: "TAY", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 169, Name: "LDA", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 170, Name: "TAX", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 171, Name: "LAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 172, Name: "LDY", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 173, Name: "LDA", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 174, Name: "LDX", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 175, Name: "LAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 176, Name: "BCS", Mode: 10, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 177, Name: "LDA", Mode: 9, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 178, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 179, Name: "LAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 180, Name: "LDY", Mode: 12, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 181, Name: "LDA", Mode: 12, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 182, Name: "LDX", Mode: 13, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 183, Name: "LAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 184, Name: "CLV", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 185, Name: "LDA", Mode: 3, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 186, Name: "TSX", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 187, Name: "LAS", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 188, Name: "LDY", Mode: 2, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 189, Name: "LDA", Mode: 2, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 190, Name: "LDX", Mode: 3, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 191, Name: "LAX", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 192, Name: "CPY", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 193, Name: "CMP", Mode: 7, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 194, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 195, Name: "DCP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 196, Name: "CPY", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 197, Name: "CMP", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 198, Name: "DEC", Mode: 11, Size: 2, Cycles: 5, PageCycles: 0},
	{Opcode: 199, Name: "DCP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 200, Name: "INY", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 201, Name: "CMP", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 202, Name: "DEX", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 203, Name: "AXS", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 204, Name: "CPY", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 205, Name: "CMP", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 206, Name: "DEC", Mode: 1, Size: 3, Cycles: 6, PageCycles: 0},
	{Opcode: 207, Name: "DCP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 208, Name: "BNE", Mode: 10, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 209, Name: "CMP", Mode: 9, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 210, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 211, Name: "DCP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 212, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 213, Name: "CMP", Mode: 12, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 214, Name: "DEC", Mode: 12, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 215, Name: "DCP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 216, Name: "CLD", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 217, Name: "CMP", Mode: 3, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 218, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 219, Name: "DCP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 220, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 221, Name: "CMP", Mode: 2, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 222, Name: "DEC", Mode: 2, Size: 3, Cycles: 7, PageCycles: 0},
	{Opcode: 223, Name: "DCP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 224, Name: "CPX", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 225, Name: "SBC", Mode: 7, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 226, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 227, Name: "ISC", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 228, Name: "CPX", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 229, Name: "SBC", Mode: 11, Size: 2, Cycles: 3, PageCycles: 0},
	{Opcode: 230, Name: "INC", Mode: 11, Size: 2, Cycles: 5, PageCycles: 0},
	{Opcode: 231, Name: "ISC", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 232, Name: "INX", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 233, Name: "SBC", Mode: 5, Size: 2, Cycles: 2, PageCycles: 0},
	{Opcode: 234, Name: "NOP", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 235, Name: "SBC", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 236, Name: "CPX", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 237, Name: "SBC", Mode: 1, Size: 3, Cycles: 4, PageCycles: 0},
	{Opcode: 238, Name: "INC", Mode: 1, Size: 3, Cycles: 6, PageCycles: 0},
	{Opcode: 239, Name: "ISC", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 240, Name: "BEQ", Mode: 10, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 241, Name: "SBC", Mode: 9, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 242, Name: "KIL", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 243, Name: "ISC", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 244, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 245, Name: "SBC", Mode: 12, Size: 2, Cycles: 4, PageCycles: 0},
	{Opcode: 246, Name: "INC", Mode: 12, Size: 2, Cycles: 6, PageCycles: 0},
	{Opcode: 247, Name: "ISC", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 248, Name: "SED", Mode: 6, Size: 1, Cycles: 2, PageCycles: 0},
	{Opcode: 249, Name: "SBC", Mode: 3, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 250, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 251, Name: "ISC", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 252, Name: "NOP", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
	{Opcode: 253, Name: "SBC", Mode: 2, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 254, Name: "INC", Mode: 2, Size: 3, Cycles: 7, PageCycles: 0},
	{Opcode: 255, Name: "ISC", Mode: 6, Size: 0, Cycles: 0, PageCycles: 0},
}
