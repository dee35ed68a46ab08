package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m6502/mem"
)

func newTestCpu() (*Cpu, *mem.Bus) {
	b := mem.NewBus()
	c := New(b)
	return c, b
}

// P3: every step consumes at least 2 cycles.
func TestStepAlwaysChargesAtLeastTwoCycles(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("EA", 0x0200) // NOP
	c.ResetTo(0x0200, 0)

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cycles, uint64(2))
}

// P4: pushing then popping N bytes restores SP modulo 256.
func TestPushPopRestoresStackPointer(t *testing.T) {
	c, _ := newTestCpu()
	c.ResetTo(0x0200, 0)
	start := c.SP

	for i := 0; i < 10; i++ {
		c.push(byte(i))
	}
	for i := 0; i < 10; i++ {
		c.pop()
	}
	assert.Equal(t, start, c.SP)
}

// P5: a program of only NOPs advances PC by 1 and cycles by 2 per step,
// leaving every register and flag untouched.
func TestNopOnlyProgramLeavesStateUnchanged(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("EA EA EA", 0x0200)
	c.ResetTo(0x0200, 0x11)
	c.X, c.Y = 0x22, 0x33
	before := c.Registers
	beforeFlags := c.Flags

	for i := 0; i < 3; i++ {
		cycles, err := c.Step()
		require.NoError(t, err)
		assert.Equal(t, uint64(2), cycles)
	}

	assert.Equal(t, before.PC+3, c.PC)
	assert.Equal(t, before.A, c.A)
	assert.Equal(t, before.X, c.X)
	assert.Equal(t, before.Y, c.Y)
	assert.Equal(t, before.SP, c.SP)
	assert.Equal(t, beforeFlags, c.Flags)
}

// R1: PHA; PLA leaves A unchanged and sets Z/N to match A.
func TestPhaPlaRoundTrip(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("48 68", 0x0200) // PHA; PLA
	c.ResetTo(0x0200, 0x80)

	_, err := c.Step()
	require.NoError(t, err)
	_, err = c.Step()
	require.NoError(t, err)

	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.Negative)
	assert.False(t, c.Zero)
}

// R2: PHP; PLP leaves the flag byte unchanged.
func TestPhpPlpRoundTrip(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("08 28", 0x0200) // PHP; PLP
	c.ResetTo(0x0200, 0)
	c.Flags = Flags{Carry: true, Overflow: true, Negative: true}
	want := c.Flags

	_, err := c.Step()
	require.NoError(t, err)
	_, err = c.Step()
	require.NoError(t, err)

	assert.Equal(t, want, c.Flags)
}

// R3: JSR target; RTS restores PC to the instruction after the JSR.
func TestJsrRtsRoundTrip(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("20 0A 05 00", 0x0500) // JSR $050A; BRK
	b.Write(0x050A, 0x60)            // RTS
	c.ResetTo(0x0500, 0)

	_, err := c.Step() // JSR
	require.NoError(t, err)
	assert.Equal(t, uint16(0x050A), c.PC)

	_, err = c.Step() // RTS
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0503), c.PC)
}

// B1: LDA #$FF sets N=1, Z=0; LDA #$00 sets Z=1, N=0.
func TestLdaBoundaryFlags(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("A9 FF A9 00", 0x0200)
	c.ResetTo(0x0200, 0)

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), c.A)
	assert.True(t, c.Negative)
	assert.False(t, c.Zero)

	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), c.A)
	assert.False(t, c.Negative)
	assert.True(t, c.Zero)
}

// B2: ADC #$01 with A=$FF, C=0 -> A=$00, C=1, Z=1.
func TestAdcCarryWrap(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("69 01", 0x0200) // ADC #$01
	c.ResetTo(0x0200, 0xFF)

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Carry)
	assert.True(t, c.Zero)
}

// B3: INX with X=$FF -> X=$00, Z=1.
func TestInxWrap(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("E8", 0x0200) // INX
	c.ResetTo(0x0200, 0)
	c.X = 0xFF

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), c.X)
	assert.True(t, c.Zero)
}

// B4: Branch with offset $80 from PC=$1000 targets PC=$0F82 (signed).
func TestBranchSignedOffset(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("F0 80", 0x1000) // BEQ -128
	c.ResetTo(0x1000, 0)
	c.Zero = true

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0F82), c.PC)
}

// B5: ZeroPageX with operand $FF, X=$02 targets address $0001 (wrap).
func TestZeroPageXWraps(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("B5 FF", 0x0200) // LDA $FF,X
	b.Write(0x0001, 0x77)
	c.ResetTo(0x0200, 0)
	c.X = 0x02

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x77), c.A)
}

// B6: Push at SP=$00 writes to $0100, then SP=$FF (modular).
func TestPushAtZeroWraps(t *testing.T) {
	c, b := newTestCpu()
	c.ResetTo(0x0200, 0)
	c.SP = 0x00

	c.push(0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0100))
	assert.Equal(t, byte(0xFF), c.SP)
}

// S1: LDA #$42; BRK. After step 1: A=$42, PC=$0202, Z=0, N=0, cycles=2.
// After step 2: PC=$0000.
func TestScenarioLdaThenBrk(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("A9 42 00", 0x0200)
	c.ResetTo(0x0200, 0)

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), c.A)
	assert.Equal(t, uint16(0x0202), c.PC)
	assert.False(t, c.Zero)
	assert.False(t, c.Negative)
	assert.Equal(t, uint64(2), cycles)

	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0000), c.PC)
}

// S2: LDX #$05; loop: DEX; BNE loop. Step until X=0: expect Z=1, PC=$0305,
// 5 DEX executions.
func TestScenarioDexBneLoop(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("A2 05 CA D0 FD", 0x0300)
	c.ResetTo(0x0300, 0)

	dexCount := 0
	c.SetStepObserver(func(info StepInfo) {
		if info.Kind == DEX {
			dexCount++
		}
	})

	_, err := c.Step() // LDX #$05
	require.NoError(t, err)
	for i := 0; i < 100 && c.X != 0; i++ {
		_, err := c.Step() // DEX
		require.NoError(t, err)
		_, err = c.Step() // BNE
		require.NoError(t, err)
	}

	assert.Equal(t, byte(0), c.X)
	assert.True(t, c.Zero)
	assert.Equal(t, uint16(0x0305), c.PC)
	assert.Equal(t, 5, dexCount)
}

// S3: CLC; LDA #$7F; ADC #$01. After 3 steps: A=$80, C=0, N=1, Z=0, V=1.
func TestScenarioAdcSignedOverflow(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("18 A9 7F 69 01", 0x0400)
	c.ResetTo(0x0400, 0)

	for i := 0; i < 3; i++ {
		_, err := c.Step()
		require.NoError(t, err)
	}

	assert.Equal(t, byte(0x80), c.A)
	assert.False(t, c.Carry)
	assert.True(t, c.Negative)
	assert.False(t, c.Zero)
	assert.True(t, c.Overflow)
}

// S4: JSR $050A; BRK; ...; $050A: RTS. After JSR: PC=$050A, SP=$FD, stack
// top two bytes encode return = $0502. After RTS: PC=$0503, SP=$FF.
func TestScenarioJsrRts(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("20 0A 05 00", 0x0500)
	b.Write(0x050A, 0x60)
	c.ResetTo(0x0500, 0)

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x050A), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)
	lo := b.Read(0x0100 + uint16(c.SP+1))
	hi := b.Read(0x0100 + uint16(c.SP+2))
	assert.Equal(t, uint16(0x0502), uint16(hi)<<8|uint16(lo))

	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0503), c.PC)
	assert.Equal(t, byte(0xFF), c.SP)
}

// S5: LDA #$03; PHA; LDA #$00; PLA. After 4 steps: A=$03, Z=0, N=0, SP=$FF.
func TestScenarioPhaPla(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("A9 03 48 A9 00 68", 0x0600)
	c.ResetTo(0x0600, 0)

	for i := 0; i < 4; i++ {
		_, err := c.Step()
		require.NoError(t, err)
	}

	assert.Equal(t, byte(0x03), c.A)
	assert.False(t, c.Zero)
	assert.False(t, c.Negative)
	assert.Equal(t, byte(0xFF), c.SP)
}

func TestIllegalOpcodeReturnsError(t *testing.T) {
	c, b := newTestCpu()
	b.Write(0x0200, 0x02) // unassigned
	c.ResetTo(0x0200, 0)

	cycles, err := c.Step()
	assert.Error(t, err)
	assert.Equal(t, uint64(0), cycles)

	var illegal *IllegalOpcodeError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, byte(0x02), illegal.Opcode)
	assert.Equal(t, uint16(0x0200), illegal.PC)
}

func TestPageCrossPenaltyOnIndexedRead(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("BD FF 00", 0x0200) // LDA $00FF,X
	b.Write(0x0100, 0x99)
	c.ResetTo(0x0200, 0)
	c.X = 0x01 // crosses from page 0x00 to 0x01

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x99), c.A)
	assert.Equal(t, uint64(5), cycles) // base 4 + 1 page-cross
}

func TestStepObserverFiresOncePerStep(t *testing.T) {
	c, b := newTestCpu()
	b.LoadHex("EA EA", 0x0200)
	c.ResetTo(0x0200, 0)

	calls := 0
	var lastOp byte
	c.SetStepObserver(func(info StepInfo) {
		calls++
		lastOp = info.Opcode
	})

	_, err := c.Step()
	require.NoError(t, err)
	_, err = c.Step()
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, byte(0xEA), lastOp)
}
