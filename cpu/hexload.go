package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHexProgram parses a program written as space-separated hex byte
// pairs (e.g. "A2 0A 8E 00 00"), the textual form test fixtures and the CLI
// both use. It is the decode half of what this package's original
// LoadProgram did in one step; Load itself now only ever takes already
// decoded bytes.
func ParseHexProgram(text string) ([]byte, error) {
	fields := strings.Fields(text)
	program := make([]byte, len(fields))
	for i, f := range fields {
		b, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("byte %d (%q): %w", i, f, err)
		}
		program[i] = byte(b)
	}
	return program, nil
}
