package cpu

// handlerFunc executes one instruction. It reports whether it already
// updated PC itself (true: JMP, JSR, RTS, RTI, any branch, taken or not,
// BRK) or
// whether the dispatcher should advance PC past the operand bytes (false).
type handlerFunc func(c *CPU, mode AddressingMode) bool

// opcodeRecord is the static, immutable record the dispatcher looks up by
// opcode byte. It is the sole source of truth for instruction length,
// addressing mode, and which handler runs.
type opcodeRecord struct {
	Mnemonic string
	Length   byte // opcode + operand bytes: 1, 2, or 3
	Cycles   byte // informational only; this core does not model bus timing
	Mode     AddressingMode
	Handler  handlerFunc
}

func op(mnemonic string, cycles byte, mode AddressingMode, h handlerFunc) opcodeRecord {
	return opcodeRecord{Mnemonic: mnemonic, Length: modeLength(mode), Cycles: cycles, Mode: mode, Handler: h}
}

// opcodeTable maps each supported opcode byte to its record. Several
// opcodes share a mnemonic (LDA has 8 forms) differing only in addressing
// mode; the handler is the same function, resolved against whatever mode
// the record carries.
var opcodeTable = map[byte]opcodeRecord{
	0x69: op("ADC", 2, Immediate, (*CPU).adc),
	0x65: op("ADC", 3, ZeroPage, (*CPU).adc),
	0x75: op("ADC", 4, ZeroPageX, (*CPU).adc),
	0x6D: op("ADC", 4, Absolute, (*CPU).adc),
	0x7D: op("ADC", 4, AbsoluteX, (*CPU).adc),
	0x79: op("ADC", 4, AbsoluteY, (*CPU).adc),
	0x61: op("ADC", 6, IndirectX, (*CPU).adc),
	0x71: op("ADC", 5, IndirectY, (*CPU).adc),

	0x29: op("AND", 2, Immediate, (*CPU).and),
	0x25: op("AND", 3, ZeroPage, (*CPU).and),
	0x35: op("AND", 4, ZeroPageX, (*CPU).and),
	0x2D: op("AND", 4, Absolute, (*CPU).and),
	0x3D: op("AND", 4, AbsoluteX, (*CPU).and),
	0x39: op("AND", 4, AbsoluteY, (*CPU).and),
	0x21: op("AND", 6, IndirectX, (*CPU).and),
	0x31: op("AND", 5, IndirectY, (*CPU).and),

	0x0A: op("ASL", 2, Accumulator, (*CPU).asl),
	0x06: op("ASL", 5, ZeroPage, (*CPU).asl),
	0x16: op("ASL", 6, ZeroPageX, (*CPU).asl),
	0x0E: op("ASL", 6, Absolute, (*CPU).asl),
	0x1E: op("ASL", 7, AbsoluteX, (*CPU).asl),

	0x24: op("BIT", 3, ZeroPage, (*CPU).bit),
	0x2C: op("BIT", 4, Absolute, (*CPU).bit),

	0x10: op("BPL", 2, Relative, (*CPU).bpl),
	0x30: op("BMI", 2, Relative, (*CPU).bmi),
	0x50: op("BVC", 2, Relative, (*CPU).bvc),
	0x70: op("BVS", 2, Relative, (*CPU).bvs),
	0x90: op("BCC", 2, Relative, (*CPU).bcc),
	0xB0: op("BCS", 2, Relative, (*CPU).bcs),
	0xD0: op("BNE", 2, Relative, (*CPU).bne),
	0xF0: op("BEQ", 2, Relative, (*CPU).beq),

	0x00: op("BRK", 7, Implied, (*CPU).brk),

	0xC9: op("CMP", 2, Immediate, (*CPU).cmp),
	0xC5: op("CMP", 3, ZeroPage, (*CPU).cmp),
	0xD5: op("CMP", 4, ZeroPageX, (*CPU).cmp),
	0xCD: op("CMP", 4, Absolute, (*CPU).cmp),
	0xDD: op("CMP", 4, AbsoluteX, (*CPU).cmp),
	0xD9: op("CMP", 4, AbsoluteY, (*CPU).cmp),
	0xC1: op("CMP", 6, IndirectX, (*CPU).cmp),
	0xD1: op("CMP", 5, IndirectY, (*CPU).cmp),

	0xE0: op("CPX", 2, Immediate, (*CPU).cpx),
	0xE4: op("CPX", 3, ZeroPage, (*CPU).cpx),
	0xEC: op("CPX", 4, Absolute, (*CPU).cpx),

	0xC0: op("CPY", 2, Immediate, (*CPU).cpy),
	0xC4: op("CPY", 3, ZeroPage, (*CPU).cpy),
	0xCC: op("CPY", 4, Absolute, (*CPU).cpy),

	0xC6: op("DEC", 5, ZeroPage, (*CPU).dec),
	0xD6: op("DEC", 6, ZeroPageX, (*CPU).dec),
	0xCE: op("DEC", 6, Absolute, (*CPU).dec),
	0xDE: op("DEC", 7, AbsoluteX, (*CPU).dec),

	0x49: op("EOR", 2, Immediate, (*CPU).eor),
	0x45: op("EOR", 3, ZeroPage, (*CPU).eor),
	0x55: op("EOR", 4, ZeroPageX, (*CPU).eor),
	0x4D: op("EOR", 4, Absolute, (*CPU).eor),
	0x5D: op("EOR", 4, AbsoluteX, (*CPU).eor),
	0x59: op("EOR", 4, AbsoluteY, (*CPU).eor),
	0x41: op("EOR", 6, IndirectX, (*CPU).eor),
	0x51: op("EOR", 5, IndirectY, (*CPU).eor),

	0x18: op("CLC", 2, Implied, (*CPU).clc),
	0x38: op("SEC", 2, Implied, (*CPU).sec),
	0x58: op("CLI", 2, Implied, (*CPU).cli),
	0x78: op("SEI", 2, Implied, (*CPU).sei),
	0xB8: op("CLV", 2, Implied, (*CPU).clv),
	0xD8: op("CLD", 2, Implied, (*CPU).cld),
	0xF8: op("SED", 2, Implied, (*CPU).sed),

	0xE6: op("INC", 5, ZeroPage, (*CPU).inc),
	0xF6: op("INC", 6, ZeroPageX, (*CPU).inc),
	0xEE: op("INC", 6, Absolute, (*CPU).inc),
	0xFE: op("INC", 7, AbsoluteX, (*CPU).inc),

	0xAA: op("TAX", 2, Implied, (*CPU).tax),
	0x8A: op("TXA", 2, Implied, (*CPU).txa),
	0xCA: op("DEX", 2, Implied, (*CPU).dex),
	0xE8: op("INX", 2, Implied, (*CPU).inx),
	0xA8: op("TAY", 2, Implied, (*CPU).tay),
	0x98: op("TYA", 2, Implied, (*CPU).tya),
	0x88: op("DEY", 2, Implied, (*CPU).dey),
	0xC8: op("INY", 2, Implied, (*CPU).iny),

	0x4C: op("JMP", 3, Absolute, (*CPU).jmp),
	0x6C: op("JMP", 5, Indirect, (*CPU).jmp),
	0x20: op("JSR", 6, Absolute, (*CPU).jsr),

	0xA9: op("LDA", 2, Immediate, (*CPU).lda),
	0xA5: op("LDA", 3, ZeroPage, (*CPU).lda),
	0xB5: op("LDA", 4, ZeroPageX, (*CPU).lda),
	0xAD: op("LDA", 4, Absolute, (*CPU).lda),
	0xBD: op("LDA", 4, AbsoluteX, (*CPU).lda),
	0xB9: op("LDA", 4, AbsoluteY, (*CPU).lda),
	0xA1: op("LDA", 6, IndirectX, (*CPU).lda),
	0xB1: op("LDA", 5, IndirectY, (*CPU).lda),

	0xA2: op("LDX", 2, Immediate, (*CPU).ldx),
	0xA6: op("LDX", 3, ZeroPage, (*CPU).ldx),
	0xB6: op("LDX", 4, ZeroPageY, (*CPU).ldx),
	0xAE: op("LDX", 4, Absolute, (*CPU).ldx),
	0xBE: op("LDX", 4, AbsoluteY, (*CPU).ldx),

	0xA0: op("LDY", 2, Immediate, (*CPU).ldy),
	0xA4: op("LDY", 3, ZeroPage, (*CPU).ldy),
	0xB4: op("LDY", 4, ZeroPageX, (*CPU).ldy),
	0xAC: op("LDY", 4, Absolute, (*CPU).ldy),
	0xBC: op("LDY", 4, AbsoluteX, (*CPU).ldy),

	0x4A: op("LSR", 2, Accumulator, (*CPU).lsr),
	0x46: op("LSR", 5, ZeroPage, (*CPU).lsr),
	0x56: op("LSR", 6, ZeroPageX, (*CPU).lsr),
	0x4E: op("LSR", 6, Absolute, (*CPU).lsr),
	0x5E: op("LSR", 7, AbsoluteX, (*CPU).lsr),

	0xEA: op("NOP", 2, Implied, (*CPU).nop),

	0x09: op("ORA", 2, Immediate, (*CPU).ora),
	0x05: op("ORA", 3, ZeroPage, (*CPU).ora),
	0x15: op("ORA", 4, ZeroPageX, (*CPU).ora),
	0x0D: op("ORA", 4, Absolute, (*CPU).ora),
	0x1D: op("ORA", 4, AbsoluteX, (*CPU).ora),
	0x19: op("ORA", 4, AbsoluteY, (*CPU).ora),
	0x01: op("ORA", 6, IndirectX, (*CPU).ora),
	0x11: op("ORA", 5, IndirectY, (*CPU).ora),

	0x9A: op("TXS", 2, Implied, (*CPU).txs),
	0xBA: op("TSX", 2, Implied, (*CPU).tsx),
	0x48: op("PHA", 3, Implied, (*CPU).pha),
	0x68: op("PLA", 4, Implied, (*CPU).pla),
	0x08: op("PHP", 3, Implied, (*CPU).php),
	0x28: op("PLP", 4, Implied, (*CPU).plp),

	0x2A: op("ROL", 2, Accumulator, (*CPU).rol),
	0x26: op("ROL", 5, ZeroPage, (*CPU).rol),
	0x36: op("ROL", 6, ZeroPageX, (*CPU).rol),
	0x2E: op("ROL", 6, Absolute, (*CPU).rol),
	0x3E: op("ROL", 7, AbsoluteX, (*CPU).rol),

	0x6A: op("ROR", 2, Accumulator, (*CPU).ror),
	0x66: op("ROR", 5, ZeroPage, (*CPU).ror),
	0x76: op("ROR", 6, ZeroPageX, (*CPU).ror),
	0x6E: op("ROR", 6, Absolute, (*CPU).ror),
	0x7E: op("ROR", 7, AbsoluteX, (*CPU).ror),

	0x40: op("RTI", 6, Implied, (*CPU).rti),
	0x60: op("RTS", 6, Implied, (*CPU).rts),

	0xE9: op("SBC", 2, Immediate, (*CPU).sbc),
	0xE5: op("SBC", 3, ZeroPage, (*CPU).sbc),
	0xF5: op("SBC", 4, ZeroPageX, (*CPU).sbc),
	0xED: op("SBC", 4, Absolute, (*CPU).sbc),
	0xFD: op("SBC", 4, AbsoluteX, (*CPU).sbc),
	0xF9: op("SBC", 4, AbsoluteY, (*CPU).sbc),
	0xE1: op("SBC", 6, IndirectX, (*CPU).sbc),
	0xF1: op("SBC", 5, IndirectY, (*CPU).sbc),

	0x85: op("STA", 3, ZeroPage, (*CPU).sta),
	0x95: op("STA", 4, ZeroPageX, (*CPU).sta),
	0x8D: op("STA", 4, Absolute, (*CPU).sta),
	0x9D: op("STA", 5, AbsoluteX, (*CPU).sta),
	0x99: op("STA", 5, AbsoluteY, (*CPU).sta),
	0x81: op("STA", 6, IndirectX, (*CPU).sta),
	0x91: op("STA", 6, IndirectY, (*CPU).sta),

	0x86: op("STX", 3, ZeroPage, (*CPU).stx),
	0x96: op("STX", 4, ZeroPageY, (*CPU).stx),
	0x8E: op("STX", 4, Absolute, (*CPU).stx),

	0x84: op("STY", 3, ZeroPage, (*CPU).sty),
	0x94: op("STY", 4, ZeroPageX, (*CPU).sty),
	0x8C: op("STY", 4, Absolute, (*CPU).sty),
}
