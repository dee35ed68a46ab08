package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// P2: unpack(pack(flags)) == flags for every reachable state.
func TestFlagsRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		f := UnpackFlags(byte(b))
		assert.Equal(t, byte(b), f.Pack(), "round trip failed for 0x%02x", b)
	}
}

func TestFlagsPackBitLayout(t *testing.T) {
	f := Flags{Carry: true, Negative: true}
	assert.Equal(t, byte(0x81), f.Pack())

	f = Flags{Overflow: true, Ignored: true}
	assert.Equal(t, byte(0x60), f.Pack())
}
