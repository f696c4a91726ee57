package cpu

import "github.com/theonlytruealex/go6502/status"

// Every handler in this file has the signature handlerFunc expects. Each
// reads its operand (if any) through resolveAddress, which leaves c.PC
// pointing at the first operand byte; handlers never touch PC themselves
// except the ones that count as control flow (branches, JMP, JSR, RTS,
// RTI, BRK), which the dispatcher in cpu.go trusts to leave PC correct and
// does not auto-advance afterward.

// operand reads the byte an instruction acts on, given mode. For
// Accumulator it reads c.A instead of memory.
func (c *CPU) operand(mode AddressingMode) (value byte, addr uint16, isAcc bool) {
	addr, isAcc = c.resolveAddress(mode)
	if isAcc {
		return c.A, 0, true
	}
	return c.Mem.Read(addr), addr, false
}

func (c *CPU) store(addr uint16, isAcc bool, v byte) {
	if isAcc {
		c.A = v
		return
	}
	c.Mem.Write(addr, v)
}

// addWithCarry is shared by ADC and SBC (SBC feeds in m^0xFF). Decimal mode
// is not modeled: DecimalMode may be set and read back but never changes
// arithmetic, matching this core's non-goal of BCD support.
func (c *CPU) addWithCarry(m byte) {
	carryIn := uint16(0)
	if c.FlagSet(status.Carry) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(m) + carryIn
	result := byte(sum)

	c.P = status.Assign(c.P, status.Carry, sum > 0xFF)
	overflow := (c.A^m)&0x80 == 0 && (c.A^result)&0x80 != 0
	c.P = status.Assign(c.P, status.Overflow, overflow)
	c.P = status.UpdateZN(c.P, result)
	c.A = result
}

func (c *CPU) adc(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.addWithCarry(m)
	return false
}

func (c *CPU) sbc(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.addWithCarry(m ^ 0xFF)
	return false
}

func (c *CPU) and(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.A &= m
	c.P = status.UpdateZN(c.P, c.A)
	return false
}

func (c *CPU) ora(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.A |= m
	c.P = status.UpdateZN(c.P, c.A)
	return false
}

func (c *CPU) eor(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.A ^= m
	c.P = status.UpdateZN(c.P, c.A)
	return false
}

// shiftLeft and shiftRight back ASL/LSR/ROL/ROR. The source this package
// was built from implemented all four with a 2-bit shift; the correct
// 6502 operation shifts by exactly 1, which is what these do.
func (c *CPU) asl(mode AddressingMode) bool {
	v, addr, isAcc := c.operand(mode)
	c.P = status.Assign(c.P, status.Carry, v&0x80 != 0)
	result := v << 1
	c.P = status.UpdateZN(c.P, result)
	c.store(addr, isAcc, result)
	return false
}

func (c *CPU) lsr(mode AddressingMode) bool {
	v, addr, isAcc := c.operand(mode)
	c.P = status.Assign(c.P, status.Carry, v&0x01 != 0)
	result := v >> 1
	c.P = status.UpdateZN(c.P, result)
	c.store(addr, isAcc, result)
	return false
}

func (c *CPU) rol(mode AddressingMode) bool {
	v, addr, isAcc := c.operand(mode)
	carryIn := byte(0)
	if c.FlagSet(status.Carry) {
		carryIn = 1
	}
	c.P = status.Assign(c.P, status.Carry, v&0x80 != 0)
	result := (v << 1) | carryIn
	c.P = status.UpdateZN(c.P, result)
	c.store(addr, isAcc, result)
	return false
}

func (c *CPU) ror(mode AddressingMode) bool {
	v, addr, isAcc := c.operand(mode)
	carryIn := byte(0)
	if c.FlagSet(status.Carry) {
		carryIn = 0x80
	}
	c.P = status.Assign(c.P, status.Carry, v&0x01 != 0)
	result := (v >> 1) | carryIn
	c.P = status.UpdateZN(c.P, result)
	c.store(addr, isAcc, result)
	return false
}

func (c *CPU) bit(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.P = status.Assign(c.P, status.Zero, c.A&m == 0)
	c.P = status.Assign(c.P, status.Overflow, m&0x40 != 0)
	c.P = status.Assign(c.P, status.Negative, m&0x80 != 0)
	return false
}

// compare backs CMP/CPX/CPY. Carry is set when reg >= m (unsigned), Zero
// when equal, and Negative from bit 7 of the subtraction, not from a naive
// reg<m test.
func (c *CPU) compare(reg byte, m byte) {
	result := reg - m
	c.P = status.Assign(c.P, status.Carry, reg >= m)
	c.P = status.Assign(c.P, status.Zero, reg == m)
	c.P = status.Assign(c.P, status.Negative, result&0x80 != 0)
}

func (c *CPU) cmp(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.compare(c.A, m)
	return false
}

func (c *CPU) cpx(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.compare(c.X, m)
	return false
}

func (c *CPU) cpy(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.compare(c.Y, m)
	return false
}

func (c *CPU) inc(mode AddressingMode) bool {
	v, addr, _ := c.operand(mode)
	v++
	c.P = status.UpdateZN(c.P, v)
	c.Mem.Write(addr, v)
	return false
}

func (c *CPU) dec(mode AddressingMode) bool {
	v, addr, _ := c.operand(mode)
	v--
	c.P = status.UpdateZN(c.P, v)
	c.Mem.Write(addr, v)
	return false
}

func (c *CPU) inx(AddressingMode) bool {
	c.X++
	c.P = status.UpdateZN(c.P, c.X)
	return false
}

func (c *CPU) iny(AddressingMode) bool {
	c.Y++
	c.P = status.UpdateZN(c.P, c.Y)
	return false
}

func (c *CPU) dex(AddressingMode) bool {
	c.X--
	c.P = status.UpdateZN(c.P, c.X)
	return false
}

func (c *CPU) dey(AddressingMode) bool {
	c.Y--
	c.P = status.UpdateZN(c.P, c.Y)
	return false
}

func (c *CPU) tax(AddressingMode) bool {
	c.X = c.A
	c.P = status.UpdateZN(c.P, c.X)
	return false
}

func (c *CPU) txa(AddressingMode) bool {
	c.A = c.X
	c.P = status.UpdateZN(c.P, c.A)
	return false
}

func (c *CPU) tay(AddressingMode) bool {
	c.Y = c.A
	c.P = status.UpdateZN(c.P, c.Y)
	return false
}

func (c *CPU) tya(AddressingMode) bool {
	c.A = c.Y
	c.P = status.UpdateZN(c.P, c.A)
	return false
}

func (c *CPU) tsx(AddressingMode) bool {
	c.X = c.S
	c.P = status.UpdateZN(c.P, c.X)
	return false
}

func (c *CPU) txs(AddressingMode) bool {
	c.S = c.X // does not affect Zero/Negative
	return false
}

func (c *CPU) lda(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.A = m
	c.P = status.UpdateZN(c.P, c.A)
	return false
}

func (c *CPU) ldx(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.X = m
	c.P = status.UpdateZN(c.P, c.X)
	return false
}

func (c *CPU) ldy(mode AddressingMode) bool {
	m, _, _ := c.operand(mode)
	c.Y = m
	c.P = status.UpdateZN(c.P, c.Y)
	return false
}

func (c *CPU) sta(mode AddressingMode) bool {
	_, addr, _ := c.operand(mode)
	c.Mem.Write(addr, c.A)
	return false
}

func (c *CPU) stx(mode AddressingMode) bool {
	_, addr, _ := c.operand(mode)
	c.Mem.Write(addr, c.X)
	return false
}

func (c *CPU) sty(mode AddressingMode) bool {
	_, addr, _ := c.operand(mode)
	c.Mem.Write(addr, c.Y)
	return false
}

func (c *CPU) clc(AddressingMode) bool { c.ClearFlag(status.Carry); return false }
func (c *CPU) sec(AddressingMode) bool { c.SetFlag(status.Carry); return false }
func (c *CPU) cli(AddressingMode) bool { c.ClearFlag(status.InterruptDisable); return false }
func (c *CPU) sei(AddressingMode) bool { c.SetFlag(status.InterruptDisable); return false }
func (c *CPU) clv(AddressingMode) bool { c.ClearFlag(status.Overflow); return false }
func (c *CPU) cld(AddressingMode) bool { c.ClearFlag(status.DecimalMode); return false }
func (c *CPU) sed(AddressingMode) bool { c.SetFlag(status.DecimalMode); return false }

func (c *CPU) nop(AddressingMode) bool { return false }

func (c *CPU) pha(AddressingMode) bool {
	c.pushByteLogged(c.A)
	return false
}

func (c *CPU) pla(AddressingMode) bool {
	if v, ok := c.popByteLogged(); ok {
		c.A = v
		c.P = status.UpdateZN(c.P, c.A)
	}
	return false
}

// php pushes P with Break and Unused forced to 1, per the convention every
// 6502 software interrupt and PHP follows; plp restores P exactly as
// popped, since the stacked copy already carries a real Break/Unused pair.
func (c *CPU) php(AddressingMode) bool {
	pushed := status.Set(status.Set(c.P, status.Break), status.Unused)
	c.pushByteLogged(pushed)
	return false
}

func (c *CPU) plp(AddressingMode) bool {
	if v, ok := c.popByteLogged(); ok {
		c.P = v
	}
	return false
}

// jmp is the only instruction that resolves its own address rather than
// going through operand, since it wants the address itself, not the byte
// stored there.
func (c *CPU) jmp(mode AddressingMode) bool {
	addr, _ := c.resolveAddress(mode)
	c.PC = addr
	return true
}

// jsr pushes the address of the last byte of the JSR instruction (PC+1,
// since c.PC already points at the low operand byte), then jumps.
func (c *CPU) jsr(mode AddressingMode) bool {
	addr, _ := c.resolveAddress(mode)
	c.pushWordLogged(c.PC + 1)
	c.PC = addr
	return true
}

// rts pops the return address pushed by jsr and resumes just past it.
func (c *CPU) rts(AddressingMode) bool {
	if addr, ok := c.popWordLogged(); ok {
		c.PC = addr + 1
	}
	return true
}

// brk pushes PC+2 (the address of the byte following the padding byte BRK
// always consumes) and the flags with Break/Unused set, loads PC from the
// IRQ vector, and sets InterruptDisable, matching the authentic sequence.
// This core then halts the run loop rather than actually servicing an
// interrupt handler, since there is no interrupt controller: see
// DESIGN.md for why BRK is the run loop's terminator here.
func (c *CPU) brk(AddressingMode) bool {
	c.pushWordLogged(c.PC + 1)
	pushed := status.Set(status.Set(c.P, status.Break), status.Unused)
	c.pushByteLogged(pushed)
	c.SetFlag(status.InterruptDisable)
	c.PC = c.Mem.ReadWord(IRQVector)
	c.halted = true
	return true
}

// rti restores P and PC from the stack, the mirror image of brk/an IRQ.
func (c *CPU) rti(AddressingMode) bool {
	if p, ok := c.popByteLogged(); ok {
		c.P = p
	}
	if addr, ok := c.popWordLogged(); ok {
		c.PC = addr
	}
	return true
}

// branch is shared by all eight conditional branches. The displacement
// byte is sign-extended before being added to the address of the
// instruction following the branch, exactly as real 6502 hardware does it;
// a source implementation that leaves it unsigned sends backward branches
// to the wrong side of the address space entirely.
func (c *CPU) branch(taken bool) bool {
	offset := int8(c.Mem.Read(c.PC))
	next := c.PC + 1
	if taken {
		next = uint16(int32(next) + int32(offset))
	}
	c.PC = next
	return true
}

func (c *CPU) bcc(AddressingMode) bool { return c.branch(!c.FlagSet(status.Carry)) }
func (c *CPU) bcs(AddressingMode) bool { return c.branch(c.FlagSet(status.Carry)) }
func (c *CPU) bne(AddressingMode) bool { return c.branch(!c.FlagSet(status.Zero)) }
func (c *CPU) beq(AddressingMode) bool { return c.branch(c.FlagSet(status.Zero)) }
func (c *CPU) bpl(AddressingMode) bool { return c.branch(!c.FlagSet(status.Negative)) }
func (c *CPU) bmi(AddressingMode) bool { return c.branch(c.FlagSet(status.Negative)) }
func (c *CPU) bvc(AddressingMode) bool { return c.branch(!c.FlagSet(status.Overflow)) }
func (c *CPU) bvs(AddressingMode) bool { return c.branch(c.FlagSet(status.Overflow)) }
