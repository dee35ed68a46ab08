package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord(t *testing.T) {
	assert.Equal(t, Word(0x80, 0x00), uint16(0x8000))
	assert.Equal(t, Word(0x00, 0xff), uint16(0x00ff))

	hi, lo := SplitWord(0xabcd)
	assert.Equal(t, hi, byte(0xab))
	assert.Equal(t, lo, byte(0xcd))
}

func TestSignExtend(t *testing.T) {
	assert.Equal(t, SignExtend(0x01), int16(1))
	assert.Equal(t, SignExtend(0x80), int16(-128))
	assert.Equal(t, SignExtend(0xff), int16(-1))
}

func TestPagesDiffer(t *testing.T) {
	assert.False(t, PagesDiffer(0x1000, 0x10ff))
	assert.True(t, PagesDiffer(0x10ff, 0x1100))
}
