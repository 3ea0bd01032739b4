package cpu

// setZN updates the zero and negative flags from a result byte, the rule
// shared by every load, transfer and arithmetic result.
func (c *CPU) setZN(value byte) {
	c.Flags.Zero = value == 0
	c.Flags.Negative = value&0x80 != 0
}

// load/store

func (c *CPU) lda(mode Mode) {
	address, pageCrossed := c.operandAddress(mode)
	c.A = c.mem.Read(address)
	c.setZN(c.A)
	if pageCrossed {
		c.cycles++
	}
}

func (c *CPU) ldx(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.X = c.mem.Read(address)
	c.setZN(c.X)
}

func (c *CPU) ldy(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.Y = c.mem.Read(address)
	c.setZN(c.Y)
}

// stores change no flags, page crossings do not shorten or lengthen them
func (c *CPU) sta(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.mem.Write(address, c.A)
}

func (c *CPU) stx(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.mem.Write(address, c.X)
}

func (c *CPU) sty(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.mem.Write(address, c.Y)
}

// arithmetic

func (c *CPU) adc(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.addWithCarry(c.mem.Read(address))
}

// sbc adds the one's complement of the operand with the same carry-in,
// which produces the 6502 borrow semantics.
func (c *CPU) sbc(mode Mode) {
	address, _ := c.operandAddress(mode)
	value := c.mem.Read(address)

	sum := uint16(c.A) + uint16(^value) + c.carry()
	result := byte(sum)

	c.Flags.Carry = sum > 0xFF
	c.Flags.Overflow = (c.A^result)&(c.A^value)&0x80 != 0
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) addWithCarry(value byte) {
	sum := uint16(c.A) + uint16(value) + c.carry()
	result := byte(sum)

	c.Flags.Carry = sum > 0xFF
	c.Flags.Overflow = ^(c.A^value)&(c.A^result)&0x80 != 0
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) carry() uint16 {
	if c.Flags.Carry {
		return 1
	}
	return 0
}

// logical

func (c *CPU) and(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.A &= c.mem.Read(address)
	c.setZN(c.A)
}

func (c *CPU) ora(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.A |= c.mem.Read(address)
	c.setZN(c.A)
}

func (c *CPU) eor(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.A ^= c.mem.Read(address)
	c.setZN(c.A)
}

// shifts and rotates, operating on the accumulator or a memory operand

func (c *CPU) asl(mode Mode) {
	c.modify(mode, func(value byte) byte {
		c.Flags.Carry = value&0x80 != 0
		return value << 1
	})
}

// lsr shifts a 0 into bit 7, so the negative flag always ends up cleared.
func (c *CPU) lsr(mode Mode) {
	c.modify(mode, func(value byte) byte {
		c.Flags.Carry = value&0x01 != 0
		return value >> 1
	})
}

func (c *CPU) rol(mode Mode) {
	carryIn := byte(0)
	if c.Flags.Carry {
		carryIn = 1
	}
	c.modify(mode, func(value byte) byte {
		c.Flags.Carry = value&0x80 != 0
		return value<<1 | carryIn
	})
}

func (c *CPU) ror(mode Mode) {
	carryIn := byte(0)
	if c.Flags.Carry {
		carryIn = 0x80
	}
	c.modify(mode, func(value byte) byte {
		c.Flags.Carry = value&0x01 != 0
		return value>>1 | carryIn
	})
}

// modify applies a read-modify-write operation to the accumulator or the
// memory operand of the given addressing mode and sets the zero and negative
// flags from the result.
func (c *CPU) modify(mode Mode, op func(value byte) byte) {
	if mode == accumulator {
		c.A = op(c.A)
		c.setZN(c.A)
		return
	}

	address, _ := c.operandAddress(mode)
	value := op(c.mem.Read(address))
	c.mem.Write(address, value)
	c.setZN(value)
}

// increment/decrement

func (c *CPU) inc(mode Mode) {
	address, _ := c.operandAddress(mode)
	value := c.mem.Read(address) + 1
	c.mem.Write(address, value)
	c.setZN(value)
}

func (c *CPU) dec(mode Mode) {
	address, _ := c.operandAddress(mode)
	value := c.mem.Read(address) - 1
	c.mem.Write(address, value)
	c.setZN(value)
}

func (c *CPU) inx(Mode) {
	c.X++
	c.setZN(c.X)
}

func (c *CPU) iny(Mode) {
	c.Y++
	c.setZN(c.Y)
}

func (c *CPU) dex(Mode) {
	c.X--
	c.setZN(c.X)
}

func (c *CPU) dey(Mode) {
	c.Y--
	c.setZN(c.Y)
}

// compare and bit test

func (c *CPU) cmp(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.compare(c.A, c.mem.Read(address))
}

func (c *CPU) cpx(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.compare(c.X, c.mem.Read(address))
}

func (c *CPU) cpy(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.compare(c.Y, c.mem.Read(address))
}

// compare sets the flags of a register/operand comparison without changing
// the register: carry for register >= operand, negative from the wrapped
// subtraction result.
func (c *CPU) compare(register, value byte) {
	c.Flags.Carry = register >= value
	c.Flags.Zero = register == value
	c.Flags.Negative = (register-value)&0x80 != 0
}

func (c *CPU) bit(mode Mode) {
	address, _ := c.operandAddress(mode)
	value := c.mem.Read(address)

	c.Flags.Zero = c.A&value == 0
	c.Flags.Negative = value&0x80 != 0
	c.Flags.Overflow = value&0x40 != 0
}

// branches

func (c *CPU) bpl(Mode) { c.branch(!c.Flags.Negative) }
func (c *CPU) bmi(Mode) { c.branch(c.Flags.Negative) }
func (c *CPU) bvc(Mode) { c.branch(!c.Flags.Overflow) }
func (c *CPU) bvs(Mode) { c.branch(c.Flags.Overflow) }
func (c *CPU) bcc(Mode) { c.branch(!c.Flags.Carry) }
func (c *CPU) bcs(Mode) { c.branch(c.Flags.Carry) }
func (c *CPU) bne(Mode) { c.branch(!c.Flags.Zero) }
func (c *CPU) beq(Mode) { c.branch(c.Flags.Zero) }

// branch consumes the signed relative offset and takes the branch if the
// condition holds. A taken branch costs one extra cycle, landing on a
// different page than the following instruction costs one more, both
// penalties apply together.
func (c *CPU) branch(condition bool) {
	offset := c.fetch()
	if !condition {
		return
	}

	c.cycles++
	target := c.PC + uint16(int8(offset))
	if c.PC&0xFF00 != target&0xFF00 {
		c.cycles++
	}
	c.PC = target
}

// stack instructions

func (c *CPU) pha(Mode) {
	c.push(c.A)
}

func (c *CPU) pla(Mode) {
	c.A = c.pull()
	c.setZN(c.A)
}

func (c *CPU) php(Mode) {
	c.push(c.Flags.Pack())
}

func (c *CPU) plp(Mode) {
	c.Flags.Unpack(c.pull())
}

// subroutine linkage and interrupts

// jsr pushes the address of the last byte of the instruction, RTS undoes
// the off-by-one when it increments the pulled address.
func (c *CPU) jsr(mode Mode) {
	target, _ := c.operandAddress(mode)
	c.pushWord(c.PC - 1)
	c.PC = target
}

func (c *CPU) rts(Mode) {
	c.PC = c.pullWord() + 1
}

func (c *CPU) brk(Mode) {
	c.PC++ // skip the pad byte
	c.pushWord(c.PC)
	c.push(c.Flags.Pack())
	c.Flags.InterruptDisable = true
	c.PC = c.readWord(irqVector)
}

// rti restores the status first, then the program counter, without the
// increment RTS applies.
func (c *CPU) rti(Mode) {
	c.Flags.Unpack(c.pull())
	c.PC = c.pullWord()
}

func (c *CPU) jmp(mode Mode) {
	address, _ := c.operandAddress(mode)
	c.PC = address
}

// transfers

func (c *CPU) tax(Mode) {
	c.X = c.A
	c.setZN(c.X)
}

func (c *CPU) txa(Mode) {
	c.A = c.X
	c.setZN(c.A)
}

func (c *CPU) tay(Mode) {
	c.Y = c.A
	c.setZN(c.Y)
}

func (c *CPU) tya(Mode) {
	c.A = c.Y
	c.setZN(c.A)
}

// txs is the one transfer that changes no flags
func (c *CPU) txs(Mode) {
	c.SP = c.X
}

func (c *CPU) tsx(Mode) {
	c.X = c.SP
	c.setZN(c.X)
}

// flag instructions

func (c *CPU) sec(Mode) { c.Flags.Carry = true }
func (c *CPU) clc(Mode) { c.Flags.Carry = false }
func (c *CPU) sei(Mode) { c.Flags.InterruptDisable = true }
func (c *CPU) cli(Mode) { c.Flags.InterruptDisable = false }
func (c *CPU) sed(Mode) { c.Flags.Decimal = true }
func (c *CPU) cld(Mode) { c.Flags.Decimal = false }
func (c *CPU) clv(Mode) { c.Flags.Overflow = false }

// no-op and halt

func (c *CPU) nop(Mode) {
}

func (c *CPU) hlt(Mode) {
	c.halted = true
}
