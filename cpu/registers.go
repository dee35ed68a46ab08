package cpu

// A Registers holds the five named slots of the 6502 register file. PC is
// the only 16-bit register; every other field wraps modulo 2^8.
//
// https://www.nesdev.org/wiki/CPU_registers
type Registers struct {
	PC uint16 // program counter

	SP byte // stack pointer; addresses the hardware stack at 0x0100+SP

	A byte // accumulator
	X byte // index register X
	Y byte // index register Y
}

// Flags are the eight condition-code bits that make up the status (P)
// register. B and Ignored carry no arithmetic meaning but round-trip
// through Pack/Unpack like any other bit.
//
// 7654 3210
// NV1B DIZC
type Flags struct {
	Carry            bool // bit 0
	Zero             bool // bit 1
	InterruptDisable bool // bit 2
	Decimal          bool // bit 3; settable, has no effect on ADC/SBC
	Break            bool // bit 4
	Ignored          bool // bit 5; always reads back as written
	Overflow         bool // bit 6
	Negative         bool // bit 7
}

// bit positions for the canonical 6502 status byte layout.
const (
	flagCarry            = 1 << 0
	flagZero             = 1 << 1
	flagInterruptDisable = 1 << 2
	flagDecimal          = 1 << 3
	flagBreak            = 1 << 4
	flagIgnored          = 1 << 5
	flagOverflow         = 1 << 6
	flagNegative         = 1 << 7
)

// Pack compacts the eight flags into a single status byte.
func (f Flags) Pack() byte {
	var b byte
	if f.Carry {
		b |= flagCarry
	}
	if f.Zero {
		b |= flagZero
	}
	if f.InterruptDisable {
		b |= flagInterruptDisable
	}
	if f.Decimal {
		b |= flagDecimal
	}
	if f.Break {
		b |= flagBreak
	}
	if f.Ignored {
		b |= flagIgnored
	}
	if f.Overflow {
		b |= flagOverflow
	}
	if f.Negative {
		b |= flagNegative
	}
	return b
}

// UnpackFlags expands a status byte into its eight constituent flags.
// unpack(pack(x)) == x for every reachable Flags value.
func UnpackFlags(b byte) Flags {
	return Flags{
		Carry:            b&flagCarry != 0,
		Zero:             b&flagZero != 0,
		InterruptDisable: b&flagInterruptDisable != 0,
		Decimal:          b&flagDecimal != 0,
		Break:            b&flagBreak != 0,
		Ignored:          b&flagIgnored != 0,
		Overflow:         b&flagOverflow != 0,
		Negative:         b&flagNegative != 0,
	}
}

// setZN sets Zero and Negative from an 8-bit result, the postcondition
// shared by nearly every load/arithmetic/shift instruction.
func (f *Flags) setZN(v byte) {
	f.Zero = v == 0
	f.Negative = v&0x80 != 0
}
