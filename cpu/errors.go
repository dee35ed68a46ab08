package cpu

import "fmt"

// An IllegalOpcodeError is returned by Step when the fetched byte does not
// decode to any of the 56 documented instructions. PC already points past
// the offending byte by the time this is raised; no rollback is performed.
type IllegalOpcodeError struct {
	Opcode byte
	PC     uint16 // address the opcode was fetched from
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode 0x%02x at 0x%04x", e.Opcode, e.PC)
}
