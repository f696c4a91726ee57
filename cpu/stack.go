package cpu

// Stack instructions (PHA, PLA, PHP, PLP, JSR, RTS, BRK, RTI) always access
// page $01 ($0100-$01FF). S is the byte index within that page; the stack
// is descending, so a push decrements S and a pop increments it.
//
// Overflow and underflow are recoverable: the caller logs them and the
// triggering push/pop has no effect on memory or S.

func (c *CPU) pushByte(v byte) error {
	if c.S == 0 {
		return &StackOverflowError{PC: c.PC}
	}
	c.Mem.Write(0x0100+uint16(c.S)-1, v)
	c.S--
	return nil
}

func (c *CPU) pushWord(v uint16) error {
	if c.S < 2 {
		return &StackOverflowError{PC: c.PC}
	}
	c.Mem.WriteWord(0x0100+uint16(c.S)-2, v)
	c.S -= 2
	return nil
}

func (c *CPU) popByte() (byte, error) {
	if c.S == 0xFF {
		return 0, &StackUnderflowError{PC: c.PC}
	}
	v := c.Mem.Read(0x0100 + uint16(c.S))
	c.S++
	return v, nil
}

func (c *CPU) popWord() (uint16, error) {
	if c.S == 0xFE {
		return 0, &StackUnderflowError{PC: c.PC}
	}
	v := c.Mem.ReadWord(0x0100 + uint16(c.S))
	c.S += 2
	return v, nil
}

// pushByteLogged and its siblings perform the push/pop and log (rather than
// propagate) any overflow/underflow, per the recoverable-error contract in
// the package doc. The pop forms also report whether a value was actually
// popped, so handlers such as PLA and RTS can leave their target unchanged
// on underflow; JSR uses pushWordLogged and jumps regardless of whether the
// return address was actually pushed.

func (c *CPU) pushByteLogged(v byte) {
	if err := c.pushByte(v); err != nil {
		c.logRecoverable(err)
	}
}

func (c *CPU) pushWordLogged(v uint16) {
	if err := c.pushWord(v); err != nil {
		c.logRecoverable(err)
	}
}

func (c *CPU) popByteLogged() (byte, bool) {
	v, err := c.popByte()
	if err != nil {
		c.logRecoverable(err)
		return 0, false
	}
	return v, true
}

func (c *CPU) popWordLogged() (uint16, bool) {
	v, err := c.popWord()
	if err != nil {
		c.logRecoverable(err)
		return 0, false
	}
	return v, true
}
