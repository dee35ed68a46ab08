package cpu

// An AddressingMode tells the Cpu where to find the operand byte of an
// instruction. There are 13 possible modes.
//
// https://www.nesdev.org/wiki/CPU_addressing_modes
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	XIndirect
	IndirectY
)

func (a AddressingMode) String() string {
	switch a {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case XIndirect:
		return "XIndirect"
	case IndirectY:
		return "IndirectY"
	default:
		return "Unknown"
	}
}

// A Kind names one of the 56 documented 6502 instructions, or Invalid for
// an unassigned opcode byte.
type Kind int

const (
	Invalid Kind = iota
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

var kindNames = map[Kind]string{
	ADC: "ADC", AND: "AND", ASL: "ASL", BCC: "BCC", BCS: "BCS", BEQ: "BEQ",
	BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL", BRK: "BRK", BVC: "BVC",
	BVS: "BVS", CLC: "CLC", CLD: "CLD", CLI: "CLI", CLV: "CLV", CMP: "CMP",
	CPX: "CPX", CPY: "CPY", DEC: "DEC", DEX: "DEX", DEY: "DEY", EOR: "EOR",
	INC: "INC", INX: "INX", INY: "INY", JMP: "JMP", JSR: "JSR", LDA: "LDA",
	LDX: "LDX", LDY: "LDY", LSR: "LSR", NOP: "NOP", ORA: "ORA", PHA: "PHA",
	PHP: "PHP", PLA: "PLA", PLP: "PLP", ROL: "ROL", ROR: "ROR", RTI: "RTI",
	RTS: "RTS", SBC: "SBC", SEC: "SEC", SED: "SED", SEI: "SEI", STA: "STA",
	STX: "STX", STY: "STY", TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA",
	TXS: "TXS", TYA: "TYA",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "???"
}

// An opcodeEntry is one of the 256 possible byte values the Cpu may fetch
// as an instruction. Cycles is the base cost charged by the step engine
// before any page-cross adjustment.
type opcodeEntry struct {
	kind   Kind
	mode   AddressingMode
	cycles byte
}

// opcodeTable is the fixed 256-entry decoder. Unassigned bytes default to
// the zero value, whose Kind is Invalid.
//
// Timings and addressing modes follow the canonical 6502 opcode matrix.
// http://www.6502.org/tutorials/6502opcodes.html
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry

	set := func(b byte, k Kind, m AddressingMode, c byte) {
		t[b] = opcodeEntry{kind: k, mode: m, cycles: c}
	}

	set(0x69, ADC, Immediate, 2)
	set(0x65, ADC, ZeroPage, 3)
	set(0x75, ADC, ZeroPageX, 4)
	set(0x6D, ADC, Absolute, 4)
	set(0x7D, ADC, AbsoluteX, 4)
	set(0x79, ADC, AbsoluteY, 4)
	set(0x61, ADC, XIndirect, 6)
	set(0x71, ADC, IndirectY, 5)

	set(0x29, AND, Immediate, 2)
	set(0x25, AND, ZeroPage, 3)
	set(0x35, AND, ZeroPageX, 4)
	set(0x2D, AND, Absolute, 4)
	set(0x3D, AND, AbsoluteX, 4)
	set(0x39, AND, AbsoluteY, 4)
	set(0x21, AND, XIndirect, 6)
	set(0x31, AND, IndirectY, 5)

	set(0x0A, ASL, Accumulator, 2)
	set(0x06, ASL, ZeroPage, 5)
	set(0x16, ASL, ZeroPageX, 6)
	set(0x0E, ASL, Absolute, 6)
	set(0x1E, ASL, AbsoluteX, 7)

	set(0x90, BCC, Relative, 2)
	set(0xB0, BCS, Relative, 2)
	set(0xF0, BEQ, Relative, 2)

	set(0x24, BIT, ZeroPage, 3)
	set(0x2C, BIT, Absolute, 4)

	set(0x30, BMI, Relative, 2)
	set(0xD0, BNE, Relative, 2)
	set(0x10, BPL, Relative, 2)

	set(0x00, BRK, Implied, 7)

	set(0x50, BVC, Relative, 2)
	set(0x70, BVS, Relative, 2)

	set(0x18, CLC, Implied, 2)
	set(0xD8, CLD, Implied, 2)
	set(0x58, CLI, Implied, 2)
	set(0xB8, CLV, Implied, 2)

	set(0xC9, CMP, Immediate, 2)
	set(0xC5, CMP, ZeroPage, 3)
	set(0xD5, CMP, ZeroPageX, 4)
	set(0xCD, CMP, Absolute, 4)
	set(0xDD, CMP, AbsoluteX, 4)
	set(0xD9, CMP, AbsoluteY, 4)
	set(0xC1, CMP, XIndirect, 6)
	set(0xD1, CMP, IndirectY, 5)

	set(0xE0, CPX, Immediate, 2)
	set(0xE4, CPX, ZeroPage, 3)
	set(0xEC, CPX, Absolute, 4)

	set(0xC0, CPY, Immediate, 2)
	set(0xC4, CPY, ZeroPage, 3)
	set(0xCC, CPY, Absolute, 4)

	set(0xC6, DEC, ZeroPage, 5)
	set(0xD6, DEC, ZeroPageX, 6)
	set(0xCE, DEC, Absolute, 6)
	set(0xDE, DEC, AbsoluteX, 7)

	set(0xCA, DEX, Implied, 2)
	set(0x88, DEY, Implied, 2)

	set(0x49, EOR, Immediate, 2)
	set(0x45, EOR, ZeroPage, 3)
	set(0x55, EOR, ZeroPageX, 4)
	set(0x4D, EOR, Absolute, 4)
	set(0x5D, EOR, AbsoluteX, 4)
	set(0x59, EOR, AbsoluteY, 4)
	set(0x41, EOR, XIndirect, 6)
	set(0x51, EOR, IndirectY, 5)

	set(0xE6, INC, ZeroPage, 5)
	set(0xF6, INC, ZeroPageX, 6)
	set(0xEE, INC, Absolute, 6)
	set(0xFE, INC, AbsoluteX, 7)

	set(0xE8, INX, Implied, 2)
	set(0xC8, INY, Implied, 2)

	set(0x4C, JMP, Absolute, 3)
	set(0x6C, JMP, Indirect, 5)

	set(0x20, JSR, Absolute, 6)

	set(0xA9, LDA, Immediate, 2)
	set(0xA5, LDA, ZeroPage, 3)
	set(0xB5, LDA, ZeroPageX, 4)
	set(0xAD, LDA, Absolute, 4)
	set(0xBD, LDA, AbsoluteX, 4)
	set(0xB9, LDA, AbsoluteY, 4)
	set(0xA1, LDA, XIndirect, 6)
	set(0xB1, LDA, IndirectY, 5)

	set(0xA2, LDX, Immediate, 2)
	set(0xA6, LDX, ZeroPage, 3)
	set(0xB6, LDX, ZeroPageY, 4)
	set(0xAE, LDX, Absolute, 4)
	set(0xBE, LDX, AbsoluteY, 4)

	set(0xA0, LDY, Immediate, 2)
	set(0xA4, LDY, ZeroPage, 3)
	set(0xB4, LDY, ZeroPageX, 4)
	set(0xAC, LDY, Absolute, 4)
	set(0xBC, LDY, AbsoluteX, 4)

	set(0x4A, LSR, Accumulator, 2)
	set(0x46, LSR, ZeroPage, 5)
	set(0x56, LSR, ZeroPageX, 6)
	set(0x4E, LSR, Absolute, 6)
	set(0x5E, LSR, AbsoluteX, 7)

	set(0xEA, NOP, Implied, 2)

	set(0x09, ORA, Immediate, 2)
	set(0x05, ORA, ZeroPage, 3)
	set(0x15, ORA, ZeroPageX, 4)
	set(0x0D, ORA, Absolute, 4)
	set(0x1D, ORA, AbsoluteX, 4)
	set(0x19, ORA, AbsoluteY, 4)
	set(0x01, ORA, XIndirect, 6)
	set(0x11, ORA, IndirectY, 5)

	set(0x48, PHA, Implied, 3)
	set(0x08, PHP, Implied, 3)
	set(0x68, PLA, Implied, 4)
	set(0x28, PLP, Implied, 4)

	set(0x2A, ROL, Accumulator, 2)
	set(0x26, ROL, ZeroPage, 5)
	set(0x36, ROL, ZeroPageX, 6)
	set(0x2E, ROL, Absolute, 6)
	set(0x3E, ROL, AbsoluteX, 7)

	set(0x6A, ROR, Accumulator, 2)
	set(0x66, ROR, ZeroPage, 5)
	set(0x76, ROR, ZeroPageX, 6)
	set(0x6E, ROR, Absolute, 6)
	set(0x7E, ROR, AbsoluteX, 7)

	set(0x40, RTI, Implied, 6)
	set(0x60, RTS, Implied, 6)

	set(0xE9, SBC, Immediate, 2)
	set(0xE5, SBC, ZeroPage, 3)
	set(0xF5, SBC, ZeroPageX, 4)
	set(0xED, SBC, Absolute, 4)
	set(0xFD, SBC, AbsoluteX, 4)
	set(0xF9, SBC, AbsoluteY, 4)
	set(0xE1, SBC, XIndirect, 6)
	set(0xF1, SBC, IndirectY, 5)

	set(0x38, SEC, Implied, 2)
	set(0xF8, SED, Implied, 2)
	set(0x78, SEI, Implied, 2)

	set(0x85, STA, ZeroPage, 3)
	set(0x95, STA, ZeroPageX, 4)
	set(0x8D, STA, Absolute, 4)
	set(0x9D, STA, AbsoluteX, 5)
	set(0x99, STA, AbsoluteY, 5)
	set(0x81, STA, XIndirect, 6)
	set(0x91, STA, IndirectY, 6)

	set(0x86, STX, ZeroPage, 3)
	set(0x96, STX, ZeroPageY, 4)
	set(0x8E, STX, Absolute, 4)

	set(0x84, STY, ZeroPage, 3)
	set(0x94, STY, ZeroPageX, 4)
	set(0x8C, STY, Absolute, 4)

	set(0xAA, TAX, Implied, 2)
	set(0xA8, TAY, Implied, 2)
	set(0xBA, TSX, Implied, 2)
	set(0x8A, TXA, Implied, 2)
	set(0x9A, TXS, Implied, 2)
	set(0x98, TYA, Implied, 2)

	return t
}
