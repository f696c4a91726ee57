package cpu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/theonlytruealex/go6502/disassemble"
	"github.com/theonlytruealex/go6502/status"
)

var (
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1)

	currentLineStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.Color("#ffffff"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"})
)

// model is the Bubble Tea model backing Debug. It runs the CPU one
// instruction at a time, redrawing the disassembly, registers, and stack
// after every step.
type model struct {
	cpu    *CPU
	err    error
	halted bool

	lines       []disassemble.Line
	selected    int
	showingGoto bool
	gotoInput   textinput.Model
	lastOpBytes []byte
}

// Debug loads program into memory, resets the CPU, and runs an interactive
// step-through TUI until the user quits. Once the CPU halts (BRK or an
// unsupported opcode), stepping stops but the TUI stays open until quit.
func (c *CPU) Debug(program []byte) error {
	c.Load(program)
	c.Reset()

	ti := textinput.New()
	ti.Placeholder = "address in hex, e.g. 8010"
	ti.CharLimit = 4
	ti.Width = 8

	m := model{cpu: c, gotoInput: ti}
	m.refresh()

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if final, ok := result.(model); ok {
		return final.err
	}
	return nil
}

func (m *model) refresh() {
	m.lines = disassemble.Walk(m.cpu.Mem.Bytes(), 0, 65536)
	for i, l := range m.lines {
		if l.Addr == m.cpu.PC {
			m.selected = i
			return
		}
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showingGoto {
			switch msg.Type {
			case tea.KeyEnter:
				if addr, err := strconv.ParseUint(m.gotoInput.Value(), 16, 16); err == nil {
					m.cpu.PC = uint16(addr)
					m.refresh()
				}
				m.showingGoto = false
				return m, nil
			case tea.KeyEsc:
				m.showingGoto = false
				return m, nil
			}
			var cmd tea.Cmd
			m.gotoInput, cmd = m.gotoInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "g":
			m.showingGoto = true
			m.gotoInput.Focus()
			return m, textinput.Blink
		case "s", " ":
			if !m.halted {
				m.step()
			}
		}
	}
	return m, nil
}

func (m *model) step() {
	opByte := m.cpu.Mem.Read(m.cpu.PC)
	rec, ok := opcodeTable[opByte]
	if !ok {
		m.err = &UnsupportedOpcodeError{Opcode: opByte, PC: m.cpu.PC}
		m.halted = true
		return
	}
	start := m.cpu.PC
	m.lastOpBytes = make([]byte, rec.Length)
	for i := byte(0); i < rec.Length; i++ {
		m.lastOpBytes[i] = m.cpu.Mem.Read(start + uint16(i))
	}

	m.cpu.PC++
	controlFlow := rec.Handler(m.cpu, rec.Mode)
	if !controlFlow {
		m.cpu.PC += uint16(rec.Length) - 1
	}
	if m.cpu.halted {
		m.halted = true
	}
	m.refresh()
}

func (m model) disassemblyView() string {
	var b strings.Builder
	lo := m.selected - 5
	if lo < 0 {
		lo = 0
	}
	hi := lo + 20
	if hi > len(m.lines) {
		hi = len(m.lines)
	}
	for i := lo; i < hi; i++ {
		line := m.lines[i].String()
		if i == m.selected {
			line = currentLineStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) registersView() string {
	return fmt.Sprintf(
		"A:  $%02X\nX:  $%02X\nY:  $%02X\nPC: $%04X\nS:  $%02X\n\n%s\n%s",
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.PC, m.cpu.S,
		"NV-BDIZC",
		status.String(m.cpu.P),
	)
}

func (m model) stackView() string {
	var b strings.Builder
	for s := uint16(0xFF); s >= uint16(m.cpu.S)+1; s-- {
		b.WriteString(fmt.Sprintf("$01%02X: $%02X\n", s, m.cpu.Mem.Read(0x0100+s)))
	}
	return b.String()
}

func (m model) View() string {
	left := panelStyle.Render("Disassembly\n\n" + m.disassemblyView())
	right := lipgloss.JoinVertical(
		lipgloss.Left,
		panelStyle.Render("Registers\n\n"+m.registersView()),
		panelStyle.Render("Stack\n\n"+m.stackView()),
		panelStyle.Render("Last fetch\n\n"+spew.Sdump(m.lastOpBytes)),
	)

	help := helpStyle.Render("s/space: step  g: goto  q: quit")
	if m.halted {
		help = helpStyle.Render("halted (BRK or unsupported opcode)  q: quit")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	if m.showingGoto {
		dialog := panelStyle.Render("Go to address:\n\n" + m.gotoInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, content, help, dialog)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}
