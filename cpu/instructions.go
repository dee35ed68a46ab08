package cpu

import "m6502/mask"

// execute dispatches a decoded instruction to its semantic handler. It is
// the only place that knows the mapping from Kind to behavior; Step itself
// only knows how to decode and count cycles.
func (c *Cpu) execute(kind Kind, mode AddressingMode) {
	switch kind {
	case ADC:
		c.adc(mode)
	case AND:
		c.and(mode)
	case ASL:
		c.shiftLeft(mode, false)
	case BCC:
		c.branch(mode, !c.Carry)
	case BCS:
		c.branch(mode, c.Carry)
	case BEQ:
		c.branch(mode, c.Zero)
	case BIT:
		c.bit(mode)
	case BMI:
		c.branch(mode, c.Negative)
	case BNE:
		c.branch(mode, !c.Zero)
	case BPL:
		c.branch(mode, !c.Negative)
	case BRK:
		c.brk()
	case BVC:
		c.branch(mode, !c.Overflow)
	case BVS:
		c.branch(mode, c.Overflow)
	case CLC:
		c.Carry = false
	case CLD:
		c.Decimal = false
	case CLI:
		c.InterruptDisable = false
	case CLV:
		c.Overflow = false
	case CMP:
		c.compare(c.fetchOperand(mode), c.A)
	case CPX:
		c.compare(c.fetchOperand(mode), c.X)
	case CPY:
		c.compare(c.fetchOperand(mode), c.Y)
	case DEC:
		c.rmwWriteBack(c.bump(mode, -1))
	case DEX:
		c.X--
		c.setZN(c.X)
	case DEY:
		c.Y--
		c.setZN(c.Y)
	case EOR:
		c.A ^= c.fetchOperand(mode)
		c.setZN(c.A)
	case INC:
		c.rmwWriteBack(c.bump(mode, 1))
	case INX:
		c.X++
		c.setZN(c.X)
	case INY:
		c.Y++
		c.setZN(c.Y)
	case JMP:
		c.PC = c.resolveAddr(mode)
	case JSR:
		c.jsr()
	case LDA:
		c.A = c.fetchOperand(mode)
		c.setZN(c.A)
	case LDX:
		c.X = c.fetchOperand(mode)
		c.setZN(c.X)
	case LDY:
		c.Y = c.fetchOperand(mode)
		c.setZN(c.Y)
	case LSR:
		c.shiftRight(mode, false)
	case NOP:
		// no operation
	case ORA:
		c.A |= c.fetchOperand(mode)
		c.setZN(c.A)
	case PHA:
		c.push(c.A)
	case PHP:
		c.push(c.Flags.Pack())
	case PLA:
		c.A = c.pop()
		c.setZN(c.A)
	case PLP:
		c.Flags = UnpackFlags(c.pop())
	case ROL:
		c.shiftLeft(mode, true)
	case ROR:
		c.shiftRight(mode, true)
	case RTI:
		c.rti()
	case RTS:
		c.rts()
	case SBC:
		c.sbc(mode)
	case SEC:
		c.Carry = true
	case SED:
		c.Decimal = true
	case SEI:
		c.InterruptDisable = true
	case STA:
		c.storeOperand(mode, c.A)
	case STX:
		c.storeOperand(mode, c.X)
	case STY:
		c.storeOperand(mode, c.Y)
	case TAX:
		c.X = c.A
		c.setZN(c.X)
	case TAY:
		c.Y = c.A
		c.setZN(c.Y)
	case TSX:
		c.X = c.SP
		c.setZN(c.X)
	case TXA:
		c.A = c.X
		c.setZN(c.A)
	case TXS:
		c.SP = c.X
	case TYA:
		c.A = c.Y
		c.setZN(c.A)
	}
}

// adc adds the operand and the carry flag into A, setting Carry, Zero,
// Overflow, and Negative from the 9-bit result. Overflow uses the standard
// signed-overflow formula: it is set when the operands share a sign and
// the result's sign differs from theirs.
func (c *Cpu) adc(mode AddressingMode) {
	m := c.fetchOperand(mode)
	a := c.A
	var carry uint16
	if c.Carry {
		carry = 1
	}
	sum := uint16(a) + uint16(m) + carry
	result := byte(sum)

	c.Carry = sum > 0xff
	c.Overflow = (^(a ^ m) & (a ^ result) & 0x80) != 0
	c.A = result
	c.setZN(c.A)
}

// sbc subtracts the operand and the borrow (inverted carry) from A. It is
// implemented as adc with the operand's bits inverted, the standard
// identity that keeps the two instructions' flag logic in sync.
func (c *Cpu) sbc(mode AddressingMode) {
	m := c.fetchOperand(mode)
	a := c.A
	var carry uint16
	if c.Carry {
		carry = 1
	}
	inverted := ^m
	sum := uint16(a) + uint16(inverted) + carry
	result := byte(sum)

	c.Carry = sum > 0xff
	c.Overflow = (^(a ^ inverted) & (a ^ result) & 0x80) != 0
	c.A = result
	c.setZN(c.A)
}

func (c *Cpu) and(mode AddressingMode) {
	c.A &= c.fetchOperand(mode)
	c.setZN(c.A)
}

// bit tests the operand against A without modifying A: Zero reflects
// A&M, while Negative and Overflow are copied directly from the
// operand's bit 7 and bit 6.
func (c *Cpu) bit(mode AddressingMode) {
	m := c.fetchOperand(mode)
	c.Zero = (c.A & m) == 0
	c.Negative = m&0x80 != 0
	c.Overflow = m&0x40 != 0
}

// compare subtracts the operand a from the register value b (without
// affecting any register) and sets Carry, Zero, and Negative from the
// result, shared logic for CMP/CPX/CPY.
func (c *Cpu) compare(a byte, b byte) {
	result := b - a
	c.Carry = b >= a
	c.setZN(result)
}

// bump adds delta (+1 or -1) to the operand resolved from mode and
// returns the new value, leaving the write-back to the caller so INC and
// DEC can share the fetch/flag logic.
func (c *Cpu) bump(mode AddressingMode, delta int8) byte {
	v := c.rmwFetch(mode) + byte(delta)
	c.setZN(v)
	return v
}

// shiftLeft implements ASL (rotate=false) and ROL (rotate=true): shift
// the operand left one bit, feeding Carry into bit 0 when rotating, and
// Carry out from the vacated bit 7.
func (c *Cpu) shiftLeft(mode AddressingMode, rotate bool) {
	v := c.rmwFetch(mode)
	carryOut := v&0x80 != 0
	v <<= 1
	if rotate && c.Carry {
		v |= 0x01
	}
	c.Carry = carryOut
	c.setZN(v)
	c.rmwWriteBack(v)
}

// shiftRight implements LSR (rotate=false) and ROR (rotate=true): shift
// the operand right one bit, feeding Carry into bit 7 when rotating, and
// Carry out from the vacated bit 0.
func (c *Cpu) shiftRight(mode AddressingMode, rotate bool) {
	v := c.rmwFetch(mode)
	carryOut := v&0x01 != 0
	v >>= 1
	if rotate && c.Carry {
		v |= 0x80
	}
	c.Carry = carryOut
	c.setZN(v)
	c.rmwWriteBack(v)
}

// branch always consumes the relative offset byte via resolveAddr, so PC
// advances past the operand whether or not the branch is taken. Only when
// taken does the extra cycle bookkeeping and PC jump happen: one cycle for
// the branch itself, plus one more if the target lands in a different
// page than the instruction following the branch.
func (c *Cpu) branch(mode AddressingMode, taken bool) {
	next := c.PC + 1 // address immediately after the offset byte
	target := c.resolveAddr(mode)
	if !taken {
		return
	}
	c.cycles++
	if pageCrossPenalty(next, target) {
		c.cycles++
	}
	c.PC = target
}

// jsr pushes the address of the last byte of the JSR instruction (not the
// address of the next instruction) high-byte-first, then jumps to the
// target. This "return address minus one" convention is what makes RTS's
// "popped plus one" rule line up.
func (c *Cpu) jsr() {
	target := c.fetchPCWord()
	ret := c.PC - 1
	hi, lo := mask.SplitWord(ret)
	c.push(hi)
	c.push(lo)
	c.PC = target
}

// rts pops the two bytes JSR pushed, in the reverse order (low byte first,
// since the stack is LIFO), and resumes execution one past the return
// address that was saved.
func (c *Cpu) rts() {
	lo := c.pop()
	hi := c.pop()
	c.PC = mask.Word(hi, lo) + 1
}

// brk implements the baseline contract used here: execution simply
// restarts at address zero. No status byte or return address is pushed,
// and no interrupt vector is consulted.
func (c *Cpu) brk() {
	c.PC = 0
}

// rti restores the status flags and then the program counter from the
// stack: flags first (they were pushed last), then PC low, then PC high.
// The popped PC is handled exactly as rts handles it: execution resumes
// one past the popped address.
func (c *Cpu) rti() {
	c.Flags = UnpackFlags(c.pop())
	lo := c.pop()
	hi := c.pop()
	c.PC = mask.Word(hi, lo) + 1
}
