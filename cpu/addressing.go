package cpu

import (
	"fmt"

	"m6502/mask"
)

// resolveAddr consumes whatever operand bytes mode requires from PC and
// returns the effective address. It does not touch the data at that
// address; read/write handlers do that separately so that Relative (whose
// "address" is a branch target, not an operand location) can share the
// same entry point as the memory-referencing modes. Implied and
// Accumulator have no address at all; asking for one panics.
//
// For Indirect, the indirection happens here: the word fetched from PC is
// itself a pointer, and resolveAddr dereferences it before returning,
// reproducing the 6502's page-wrap bug where a pointer ending in 0xff
// reads its high byte from the start of the same page instead of the next
// one.
func (c *Cpu) resolveAddr(mode AddressingMode) uint16 {
	switch mode {
	case Immediate:
		addr := c.PC
		c.PC++
		return addr

	case ZeroPage:
		return uint16(c.fetchPC())

	case ZeroPageX:
		return uint16(c.fetchPC() + c.X)

	case ZeroPageY:
		return uint16(c.fetchPC() + c.Y)

	case Absolute:
		return c.fetchPCWord()

	case AbsoluteX:
		base := c.fetchPCWord()
		return base + uint16(c.X)

	case AbsoluteY:
		base := c.fetchPCWord()
		return base + uint16(c.Y)

	case Indirect:
		ptr := c.fetchPCWord()
		hiByte, loByte := mask.SplitWord(ptr)
		lo := c.mem.Read(ptr)
		hi := c.mem.Read(mask.Word(hiByte, loByte+1))
		return mask.Word(hi, lo)

	case XIndirect:
		ptr := c.fetchPC() + c.X
		return c.readZPWord(ptr)

	case IndirectY:
		ptr := c.fetchPC()
		base := c.readZPWord(ptr)
		return base + uint16(c.Y)

	case Relative:
		offset := mask.SignExtend(c.fetchPC())
		return uint16(int32(c.PC) + int32(offset))

	default:
		// Implied and Accumulator carry no address. Reaching here means the
		// opcode table paired an instruction with a mode it cannot use.
		panic(fmt.Sprintf("cpu: addressing mode %v has no effective address", mode))
	}
}

// pageCrossPenalty reports whether resolving from base to effective
// crossed a page boundary, the condition under which AbsoluteX, AbsoluteY,
// and IndirectY read-path fetches (and taken branches) cost one extra
// cycle. Store and read-modify-write instructions never pay this; their
// static table cost already charges the worst case.
func pageCrossPenalty(base, effective uint16) bool {
	return mask.PagesDiffer(base, effective)
}

// fetchOperand resolves mode's address (if any) and returns the operand
// byte, additionally charging a one-cycle page-cross penalty for the
// indexed modes known to vary at runtime. Accumulator mode reads A
// directly: there is no memory reference to make.
func (c *Cpu) fetchOperand(mode AddressingMode) byte {
	if mode == Accumulator {
		c.isAccum = true
		return c.A
	}
	c.isAccum = false

	switch mode {
	case AbsoluteX:
		base := c.fetchPCWord()
		addr := base + uint16(c.X)
		if pageCrossPenalty(base, addr) {
			c.cycles++
		}
		c.addr = addr
		return c.mem.Read(addr)

	case AbsoluteY:
		base := c.fetchPCWord()
		addr := base + uint16(c.Y)
		if pageCrossPenalty(base, addr) {
			c.cycles++
		}
		c.addr = addr
		return c.mem.Read(addr)

	case IndirectY:
		ptr := c.fetchPC()
		base := c.readZPWord(ptr)
		addr := base + uint16(c.Y)
		if pageCrossPenalty(base, addr) {
			c.cycles++
		}
		c.addr = addr
		return c.mem.Read(addr)

	default:
		addr := c.resolveAddr(mode)
		c.addr = addr
		return c.mem.Read(addr)
	}
}

// rmwFetch resolves mode's address and returns its current contents, for
// the read-modify-write instructions (ASL, LSR, ROL, ROR, INC, DEC). The
// resolved address is cached in c.addr for the matching rmwWriteBack call;
// no page-cross bonus applies since the static table cost already charges
// the worst case for these opcodes.
func (c *Cpu) rmwFetch(mode AddressingMode) byte {
	if mode == Accumulator {
		c.isAccum = true
		return c.A
	}
	c.isAccum = false
	addr := c.resolveAddr(mode)
	c.addr = addr
	return c.mem.Read(addr)
}

// rmwWriteBack stores v to the address cached by the preceding rmwFetch
// call, or to A directly if that call was against Accumulator mode.
func (c *Cpu) rmwWriteBack(v byte) {
	if c.isAccum {
		c.A = v
		return
	}
	c.mem.Write(c.addr, v)
}

// storeOperand resolves mode's address and writes v there. Used by
// STA/STX/STY, which never read their destination first and never pay a
// page-cross penalty: their static table cost already reflects the
// worst-case timing.
func (c *Cpu) storeOperand(mode AddressingMode, v byte) {
	addr := c.resolveAddr(mode)
	c.mem.Write(addr, v)
}
