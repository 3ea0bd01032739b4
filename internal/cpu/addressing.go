package cpu

// Mode identifies how an instruction locates its operand.
type Mode int

const (
	implied Mode = iota
	accumulator
	immediate
	zeroPage
	zeroPageX
	absolute
	absoluteX
	absoluteY
	indirect
	indirectX
	indirectY
	relative
)

// fetch reads the byte at the program counter and advances it.
func (c *CPU) fetch() byte {
	value := c.mem.Read(c.PC)
	c.PC++
	return value
}

// fetchWord reads a little-endian operand word and advances the program
// counter past it.
func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.fetch())
	hi := uint16(c.fetch())
	return hi<<8 | lo
}

// operandAddress consumes the operand bytes of the given addressing mode and
// resolves them to an effective address. pageCrossed reports whether indexing
// moved the access onto a different page than the base address, the condition
// that costs read instructions an extra cycle.
func (c *CPU) operandAddress(mode Mode) (address uint16, pageCrossed bool) {
	switch mode {
	case immediate:
		address = c.PC
		c.PC++

	case zeroPage:
		address = uint16(c.fetch())

	case zeroPageX:
		// indexing stays within the zero page
		address = uint16(c.fetch() + c.X)

	case absolute:
		address = c.fetchWord()

	case absoluteX:
		base := c.fetchWord()
		address = base + uint16(c.X)
		pageCrossed = base&0xFF00 != address&0xFF00

	case absoluteY:
		base := c.fetchWord()
		address = base + uint16(c.Y)
		pageCrossed = base&0xFF00 != address&0xFF00

	case indirect:
		address = c.readIndirect(c.fetchWord())

	case indirectX:
		pointer := c.fetch() + c.X
		lo := uint16(c.mem.Read(uint16(pointer)))
		hi := uint16(c.mem.Read(uint16(pointer + 1)))
		address = hi<<8 | lo

	case indirectY:
		pointer := c.fetch()
		lo := uint16(c.mem.Read(uint16(pointer)))
		hi := uint16(c.mem.Read(uint16(pointer + 1)))
		base := hi<<8 | lo
		address = base + uint16(c.Y)
		pageCrossed = base&0xFF00 != address&0xFF00
	}

	return address, pageCrossed
}

// readIndirect reads the target of an indirect jump. It reproduces the 6502
// page wrap defect: a pointer with low byte 0xFF fetches the high byte of the
// target from the start of the same page instead of crossing into the next.
func (c *CPU) readIndirect(pointer uint16) uint16 {
	lo := uint16(c.mem.Read(pointer))

	var hi uint16
	if pointer&0x00FF == 0x00FF {
		hi = uint16(c.mem.Read(pointer & 0xFF00))
	} else {
		hi = uint16(c.mem.Read(pointer + 1))
	}
	return hi<<8 | lo
}
