package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"m6502/mem"
)

// debugModel is a bubbletea model that single-steps a Cpu bound to a
// *mem.Bus, rendering register state and a window of memory around the
// program counter after every step.
type debugModel struct {
	cpu  *Cpu
	bus  *mem.Bus
	base uint16 // origin the program was loaded at, for the page table

	prevPC    uint16
	lastStep  StepInfo
	lastCycle uint64
	err       error
}

func (m debugModel) Init() tea.Cmd {
	return nil
}

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			cycles, err := m.cpu.Step()
			m.lastCycle = cycles
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory, bracketing whichever byte
// the program counter currently points at.
func (m debugModel) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.bus.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m debugModel) status() string {
	f := m.cpu.Flags
	var flags string
	for _, on := range []bool{f.Negative, f.Overflow, f.Ignored, f.Break, f.Decimal, f.InterruptDisable, f.Zero, f.Carry} {
		if on {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (prev %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
cycles last step: %d
N V I B D I Z C
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP,
		m.lastCycle,
	) + flags
}

func (m debugModel) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}

	pageOf := func(addr uint16) uint16 { return addr &^ 0x0f }
	offsets := []uint16{
		pageOf(m.base),
		pageOf(m.base + 16),
		pageOf(m.base + 32),
		pageOf(m.cpu.PC),
	}
	for _, o := range offsets {
		rows = append(rows, m.renderPage(o))
	}
	return strings.Join(rows, "\n")
}

func (m debugModel) View() string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		spew.Sdump(opcodeTable[m.bus.Read(m.cpu.PC)]),
	)
	if m.err != nil {
		body += fmt.Sprintf("\nerror: %v\n", m.err)
	}
	return body
}

// Debug loads program into bus at addr, points the Cpu at it, and starts
// an interactive single-step TUI: space or "j" executes one instruction,
// "q" quits.
func Debug(c *Cpu, bus *mem.Bus, program string, addr uint16) error {
	bus.LoadHex(program, addr)
	c.ResetTo(addr, c.A)

	p := tea.NewProgram(debugModel{cpu: c, bus: bus, base: addr})
	final, err := p.Run()
	if err != nil {
		return err
	}
	if dm, ok := final.(debugModel); ok && dm.err != nil {
		return dm.err
	}
	return nil
}
