// Package status models the 6502 processor status word (the P register) as
// a single byte with named bit positions, and the small set of operations
// handlers need to read and mutate it.
//
// 7654 3210
// NVUB DIZC
package status

import "github.com/theonlytruealex/go6502/mask"

// A Flag names one bit of the status word. Values match both the bit's
// index within the byte (0 = LSB) and mask.Pos directly, per the 6502
// status register layout, so no translation table sits between the two
// packages.
type Flag byte

const (
	Carry Flag = iota
	Zero
	InterruptDisable
	DecimalMode
	Break
	Unused
	Overflow
	Negative
)

// IsSet reports whether f is set in p.
func IsSet(p byte, f Flag) bool {
	return mask.IsSet(p, mask.Pos(f))
}

// Set returns p with f forced to 1.
func Set(p byte, f Flag) byte {
	return mask.Set(p, mask.Pos(f))
}

// Clear returns p with f forced to 0.
func Clear(p byte, f Flag) byte {
	return mask.Clear(p, mask.Pos(f))
}

// Assign sets or clears f in p depending on cond, returning the result.
func Assign(p byte, f Flag, cond bool) byte {
	if cond {
		return Set(p, f)
	}
	return Clear(p, f)
}

// UpdateZN sets Zero iff value == 0 and Negative iff bit 7 of value is 1.
// Both flags are assigned on every call; neither is ever left stale.
func UpdateZN(p byte, value byte) byte {
	p = Assign(p, Zero, value == 0)
	p = Assign(p, Negative, value&0x80 != 0)
	return p
}

// String renders p as the conventional 8-letter flag row, upper-case for a
// set bit and a dot for a clear one, in NV-BDIZC order.
func String(p byte) string {
	letters := [8]byte{'N', 'V', '-', 'B', 'D', 'I', 'Z', 'C'}
	flags := [8]Flag{Negative, Overflow, Unused, Break, DecimalMode, InterruptDisable, Zero, Carry}
	out := make([]byte, 8)
	for i, f := range flags {
		if letters[i] == '-' {
			out[i] = '-'
			continue
		}
		if IsSet(p, f) {
			out[i] = letters[i]
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
