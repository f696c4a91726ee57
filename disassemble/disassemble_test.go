package disassemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkImmediateAndImplied(t *testing.T) {
	mem := make([]byte, 0x10000)
	copy(mem[0x8000:], []byte{0xA9, 0x05, 0xAA, 0x00})

	lines := Walk(mem, 0x8000, 3)
	assert.Len(t, lines, 3)
	assert.Equal(t, "LDA #$05", lines[0].Text)
	assert.Equal(t, uint16(0x8000), lines[0].Addr)
	assert.Equal(t, "TAX", lines[1].Text)
	assert.Equal(t, "BRK", lines[2].Text)
}

func TestWalkAbsoluteOperandByteOrder(t *testing.T) {
	mem := make([]byte, 0x10000)
	copy(mem[0x8000:], []byte{0x4C, 0x00, 0x90}) // JMP $9000

	lines := Walk(mem, 0x8000, 1)
	assert.Equal(t, "JMP $9000", lines[0].Text)
}

func TestWalkUnknownOpcodeFallsBackToByte(t *testing.T) {
	mem := make([]byte, 0x10000)
	mem[0x8000] = 0x02 // never assigned in the opcode table

	lines := Walk(mem, 0x8000, 1)
	assert.Equal(t, ".byte $02", lines[0].Text)
}

func TestWalkRelativeResolvesTarget(t *testing.T) {
	mem := make([]byte, 0x10000)
	copy(mem[0x8000:], []byte{0xF0, 0x02}) // BEQ +2 -> $8004

	lines := Walk(mem, 0x8000, 1)
	assert.Equal(t, "BEQ $8004", lines[0].Text)
}
