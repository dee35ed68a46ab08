// Package cpu implements the MOS 6502 microprocessor: register file, status
// flags, opcode decoder, and the cycle-counting step engine that ties them
// together. The Cpu has no memory of its own; it delegates every read and
// write to a mem.Memory collaborator supplied at construction.
package cpu

import (
	"m6502/mask"
	"m6502/mem"
)

// A StepInfo is the read-only snapshot handed to the step observer, once
// per Step, after decode and before the instruction's semantic effect is
// applied.
type StepInfo struct {
	Registers
	Flags

	Opcode byte
	Kind   Kind
	Mode   AddressingMode

	// CyclesSoFar is the base cost charged for this instruction before any
	// page-cross adjustment; it is not yet the final return value of Step.
	CyclesSoFar uint64
}

// Cpu is the 6502 core. It is bound to exactly one Memory collaborator for
// its lifetime; construct a new Cpu for a new memory space rather than
// rebinding one in place.
type Cpu struct {
	Registers
	Flags

	mem mem.Memory

	cycles uint64

	// addr and isAccum thread the effective address resolved by the read
	// half of a read-modify-write instruction through to its write-back,
	// instead of re-deriving it from PC history.
	addr    uint16
	isAccum bool

	observer func(StepInfo)
}

// New constructs a Cpu bound to the given memory collaborator. The caller
// must call Reset (or ResetTo) before the first Step.
func New(m mem.Memory) *Cpu {
	return &Cpu{mem: m}
}

// SetStepObserver installs a single callback invoked once per Step, after
// decode and before dispatch. Passing nil removes any existing observer.
func (c *Cpu) SetStepObserver(fn func(StepInfo)) {
	c.observer = fn
}

// Reset sets PC to the word at the reset vector (0xfffc), zeros A, X, and
// Y, sets SP to 0xff, and restores the power-on flag state.
func (c *Cpu) Reset() {
	pc := c.readWord(0xfffc)
	c.ResetTo(pc, 0)
}

// ResetTo overrides PC and A directly, bypassing the reset vector. X, Y,
// SP, and flags are restored to their power-on state exactly as Reset
// does. Used by tests and by program loaders that place code at a fixed
// origin.
func (c *Cpu) ResetTo(pc uint16, a byte) {
	c.Registers = Registers{PC: pc, SP: 0xff, A: a}
	c.Flags = Flags{InterruptDisable: true, Ignored: true}
	c.cycles = 0
	c.addr = 0
	c.isAccum = false
}

// Step executes exactly one instruction: fetch the opcode at PC, advance
// PC, decode to (instruction, mode), notify the observer if one is
// installed, dispatch to the semantic handler, and return the number of
// cycles the instruction consumed.
//
// An unassigned opcode byte is a fatal decode failure: Step returns
// (0, *IllegalOpcodeError) and the embedder should not call Step again.
func (c *Cpu) Step() (uint64, error) {
	c.cycles = 0
	pc := c.PC
	op := c.fetchPC()
	entry := opcodeTable[op]
	if entry.kind == Invalid {
		return 0, &IllegalOpcodeError{Opcode: op, PC: pc}
	}

	c.cycles = uint64(entry.cycles)

	if c.observer != nil {
		c.observer(StepInfo{
			Registers:   c.Registers,
			Flags:       c.Flags,
			Opcode:      op,
			Kind:        entry.kind,
			Mode:        entry.mode,
			CyclesSoFar: c.cycles,
		})
	}

	c.execute(entry.kind, entry.mode)

	return c.cycles, nil
}

// fetchPC reads the byte at PC and advances PC by one, wrapping modulo
// 2^16.
func (c *Cpu) fetchPC() byte {
	b := c.mem.Read(c.PC)
	c.PC++
	return b
}

// fetchPCWord reads a little-endian word starting at PC and advances PC by
// two.
func (c *Cpu) fetchPCWord() uint16 {
	lo := c.fetchPC()
	hi := c.fetchPC()
	return mask.Word(hi, lo)
}

// readWord reads a little-endian word at an arbitrary address, wrapping
// the high-byte address modulo 2^16 (used by Reset to read the reset
// vector; it is not confined to the zero page).
func (c *Cpu) readWord(addr uint16) uint16 {
	lo := c.mem.Read(addr)
	hi := c.mem.Read(addr + 1)
	return mask.Word(hi, lo)
}

// readZPWord reads a little-endian word whose two bytes both live in the
// zero page, wrapping the high-byte index modulo 2^8 rather than 2^16 —
// the classic zero-page-indirect wraparound used by XIndirect/IndirectY.
func (c *Cpu) readZPWord(ptr byte) uint16 {
	lo := c.mem.Read(uint16(ptr))
	hi := c.mem.Read(uint16(ptr + 1))
	return mask.Word(hi, lo)
}

// push writes v to the stack page at 0x0100+SP, then decrements SP,
// wrapping modulo 2^8.
func (c *Cpu) push(v byte) {
	c.mem.Write(0x0100+uint16(c.SP), v)
	c.SP--
}

// pop increments SP, wrapping modulo 2^8, then reads from the stack page
// at 0x0100+SP.
func (c *Cpu) pop() byte {
	c.SP++
	return c.mem.Read(0x0100 + uint16(c.SP))
}
