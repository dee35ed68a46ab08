package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadHex(t *testing.T) {
	program := "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA"

	b := NewBus()
	b.LoadHex(program, 0x8000)

	assert.Equal(t, byte(0xa2), b.Ram[0x8000])
	assert.Equal(t, byte(0x0a), b.Ram[0x8001])
	assert.Equal(t, byte(0x8e), b.Ram[0x8002])
	assert.Equal(t, byte(0xea), b.Ram[0x801b])
	assert.Equal(t, byte(0), b.Ram[0x801c])
}

func TestReadWriteRoundTrip(t *testing.T) {
	b := NewBus()
	b.Write(0x1234, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x1234))
	// confirm no byte outside the written address was touched
	assert.Equal(t, byte(0), b.Read(0x1235))
}

func TestBusSatisfiesMemory(t *testing.T) {
	var _ Memory = NewBus()
}
