// Package cpu implements the MOS Technology 6502 microprocessor as a
// synchronous, interpretive core: an opcode table, an addressing-mode
// resolver, a register file and status word, a descending page-$01 stack,
// and a fetch/decode/execute loop. There is no PPU, APU, mapper, interrupt
// controller, or cycle-accurate bus timing; this is an embeddable CPU core,
// not a console emulator.
package cpu

import (
	"log"

	"github.com/theonlytruealex/go6502/memory"
	"github.com/theonlytruealex/go6502/status"
)

// Reset and interrupt vectors.
const (
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)

	// ProgramOrigin is where Load places a freshly loaded program, and what
	// the reset vector is pointed at afterward.
	ProgramOrigin = uint16(0x8000)
)

// Logger is satisfied by *log.Logger. Recoverable errors (stack overflow
// and underflow) are reported through it rather than returned, per the
// package's error-handling contract: they never interrupt execution.
type Logger interface {
	Printf(format string, v ...any)
}

// CPU is the only long-lived entity in this package. It owns its registers,
// status word, stack pointer, and the memory it executes against; nothing
// is shared between instances.
type CPU struct {
	Mem *memory.Memory

	A byte // Accumulator
	X byte // Index register X
	Y byte // Index register Y
	P byte // Status register (see package status for bit layout)

	PC uint16 // Program counter
	S  byte   // Stack pointer; offset within page $0100

	// Logger receives recoverable-error reports. Defaults to log.Default()
	// when nil.
	Logger Logger

	halted bool // set by BRK; Run returns after the instruction completes
}

// New returns a CPU with zeroed registers, a fresh 64 KiB memory, and the
// stack pointer at its power-on value of $FF.
func New() *CPU {
	return &CPU{
		Mem: memory.New(),
		S:   0xFF,
	}
}

// Read reads one byte of memory.
func (c *CPU) Read(addr uint16) byte {
	return c.Mem.Read(addr)
}

// Write stores one byte of memory.
func (c *CPU) Write(addr uint16, v byte) {
	c.Mem.Write(addr, v)
}

// Load copies program into memory at ProgramOrigin and points the reset
// vector at it. Programs larger than $FFFC-ProgramOrigin bytes (enough to
// reach the reset vector) are out of scope; excess bytes are simply not
// copied.
func (c *CPU) Load(program []byte) {
	max := int(0xFFFC - ProgramOrigin)
	if len(program) > max {
		program = program[:max]
	}
	c.Mem.Load(ProgramOrigin, program)
	c.Mem.WriteWord(ResetVector, ProgramOrigin)
}

// Reset zeroes A, X, Y and the status word, restores S to $FF, and loads PC
// from the reset vector. The historical 6502 leaves A/X/Y untouched across
// reset; this emulator clears all three, the more predictable choice for an
// embeddable core driven entirely through Load/Reset/Run (see DESIGN.md).
func (c *CPU) Reset() {
	c.A, c.X, c.Y, c.P = 0, 0, 0, 0
	c.S = 0xFF
	c.PC = c.Mem.ReadWord(ResetVector)
	c.halted = false
}

// Run drives the fetch/decode/execute loop until BRK executes (returning
// nil) or an unsupported opcode is fetched (returning *UnsupportedOpcodeError).
// Stack overflow/underflow during execution is logged, not returned; the
// loop keeps running.
func (c *CPU) Run() error {
	for {
		opByte := c.Mem.Read(c.PC)
		rec, ok := opcodeTable[opByte]
		if !ok {
			return &UnsupportedOpcodeError{Opcode: opByte, PC: c.PC}
		}

		c.PC++ // past the opcode byte
		controlFlow := rec.Handler(c, rec.Mode)
		if !controlFlow {
			c.PC += uint16(rec.Length) - 1
		}
		if c.halted {
			return nil
		}
	}
}

// LoadAndRun is Load, Reset, Run in sequence.
func (c *CPU) LoadAndRun(program []byte) error {
	c.Load(program)
	c.Reset()
	return c.Run()
}

// FlagSet reports whether f is set in the status word.
func (c *CPU) FlagSet(f status.Flag) bool {
	return status.IsSet(c.P, f)
}

// SetFlag forces f to 1 in the status word.
func (c *CPU) SetFlag(f status.Flag) {
	c.P = status.Set(c.P, f)
}

// ClearFlag forces f to 0 in the status word.
func (c *CPU) ClearFlag(f status.Flag) {
	c.P = status.Clear(c.P, f)
}

func (c *CPU) logRecoverable(err error) {
	l := c.Logger
	if l == nil {
		l = log.Default()
	}
	l.Printf("6502: %v", err)
}

// AddressingMode tells the resolver where to find an instruction's operand.
// Accumulator is distinct from Immediate: unlike the historical hand-rolled
// cores this one is built from, accumulator-targeted shifts/rotates never
// share a tag with the immediate-operand forms.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// modeLength returns the total instruction length in bytes (opcode plus
// operand) for mode.
func modeLength(mode AddressingMode) byte {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	default:
		return 2
	}
}

// resolveAddress computes the effective address for mode, given that c.PC
// points at the first operand byte (i.e., just past the opcode). It never
// advances PC; the dispatcher does that uniformly after the handler runs.
//
// Implied and Relative are not resolved here: Implied instructions never
// call this, and Relative is handled by the branch instructions themselves.
func (c *CPU) resolveAddress(mode AddressingMode) (addr uint16, isAccumulator bool) {
	switch mode {
	case Accumulator:
		return 0, true

	case Immediate:
		return c.PC, false

	case ZeroPage:
		return uint16(c.Mem.Read(c.PC)), false

	case ZeroPageX:
		return uint16(c.Mem.Read(c.PC) + c.X), false // 8-bit wrap, stays in page 0

	case ZeroPageY:
		return uint16(c.Mem.Read(c.PC) + c.Y), false

	case Absolute:
		return c.Mem.ReadWord(c.PC), false

	case AbsoluteX:
		return c.Mem.ReadWord(c.PC) + uint16(c.X), false // 16-bit wrap

	case AbsoluteY:
		return c.Mem.ReadWord(c.PC) + uint16(c.Y), false

	case Indirect:
		ptr := c.Mem.ReadWord(c.PC)
		return c.Mem.ReadWord(ptr), false

	case IndirectX:
		base := c.Mem.Read(c.PC)
		ptr := base + c.X // 8-bit wrap
		lo := c.Mem.Read(uint16(ptr))
		hi := c.Mem.Read(uint16(ptr + 1)) // wraps within page 0
		return uint16(hi)<<8 | uint16(lo), false

	case IndirectY:
		base := c.Mem.Read(c.PC)
		lo := c.Mem.Read(uint16(base))
		hi := c.Mem.Read(uint16(base + 1)) // wraps within page 0
		ptr := uint16(hi)<<8 | uint16(lo)
		return ptr + uint16(c.Y), false // 16-bit wrap
	}

	panic("cpu: resolveAddress called with a mode it does not resolve")
}
