// Package memory provides the flat 64 KiB address space the Cpu executes
// against: no bus hooks, no mirroring, no memory-mapped I/O.
package memory

// Size is the width of the address space in bytes.
const Size = 64 * 1024

// Memory is a flat, zero-initialized byte array addressable by the full
// 16-bit range. The zero value is ready to use.
type Memory struct {
	data [Size]byte
}

// New returns a Memory with every byte zeroed.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) byte {
	return m.data[addr]
}

// Write stores v at addr.
func (m *Memory) Write(addr uint16, v byte) {
	m.data[addr] = v
}

// ReadWord reads a little-endian word: the low byte at pos, the high byte
// at pos+1 (wrapping at 16 bits if pos is $FFFF).
func (m *Memory) ReadWord(pos uint16) uint16 {
	lo := m.Read(pos)
	hi := m.Read(pos + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord stores v as a little-endian word: the low byte at pos, the high
// byte at pos+1.
func (m *Memory) WriteWord(pos uint16, v uint16) {
	m.Write(pos, byte(v))
	m.Write(pos+1, byte(v>>8))
}

// Load copies program into memory starting at addr.
func (m *Memory) Load(addr uint16, program []byte) {
	for i, b := range program {
		m.Write(addr+uint16(i), b)
	}
}

// Bytes exposes the full address space as a slice, for callers (the
// disassembler, the debugger) that want to read a wide range without going
// through Read one byte at a time. Writes through the returned slice are
// writes to the same backing array.
func (m *Memory) Bytes() []byte {
	return m.data[:]
}
