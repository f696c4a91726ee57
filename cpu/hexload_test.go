package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHexProgram(t *testing.T) {
	program, err := ParseHexProgram("A2 0A 8E 00 00 EA")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xA2, 0x0A, 0x8E, 0x00, 0x00, 0xEA}, program)
}

func TestParseHexProgramRejectsGarbage(t *testing.T) {
	_, err := ParseHexProgram("A2 ZZ 00")
	assert.Error(t, err)
}

func TestParseHexProgramFeedsLoadAndRun(t *testing.T) {
	program, err := ParseHexProgram("A9 2A AA 00")
	assert.NoError(t, err)

	c := New()
	assert.NoError(t, c.LoadAndRun(program))
	assert.Equal(t, byte(0x2A), c.A)
	assert.Equal(t, byte(0x2A), c.X)
}
