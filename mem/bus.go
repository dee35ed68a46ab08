// Package mem provides the memory collaborator the Cpu delegates all
// address-space traffic to.
package mem

import (
	"strconv"
	"strings"
)

// A Memory is anything that can service every address in the 16-bit space.
// The Cpu never indexes a raw buffer directly; all reads and writes flow
// through this capability, so an embedder is free to back it with a flat
// array, a bank-switched cartridge, or a bus that fans out to memory-mapped
// peripherals.
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// A Bus is the default Memory implementation: flat, zero-initialized, 64 kB.
// Each Bus has an independent memory layout that begins at 0x0000.
//
// In a larger system there may be more than one bus (e.g. a second, smaller
// one dedicated to graphics); nothing here assumes it is the only one.
type Bus struct {
	Ram [64 * 1024]byte // 64 kB (0x0000-0xffff), zeroed on init
}

// NewBus returns a Bus with all 64 kB zeroed.
func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Read(addr uint16) byte {
	return b.Ram[addr]
}

func (b *Bus) Write(addr uint16, value byte) {
	b.Ram[addr] = value
}

// LoadHex parses a whitespace-separated string of hex byte pairs (e.g.
// "A9 42 00") and writes it into the bus starting at addr. It panics on a
// malformed token, since a bad test fixture or a bad program file is a
// programmer error, not a runtime condition the bus should recover from.
func (b *Bus) LoadHex(program string, addr uint16) {
	for i, tok := range strings.Fields(program) {
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			panic(err)
		}
		b.Ram[addr+uint16(i)] = byte(v)
	}
}
