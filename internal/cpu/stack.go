package cpu

// stackBase is the address of the fixed stack page.
const stackBase = 0x0100

// push writes a byte to the stack page and decrements the stack pointer.
// The pointer wraps from 0x00 to 0xFF, it is never range checked.
func (c *CPU) push(value byte) {
	c.mem.Write(stackBase+uint16(c.SP), value)
	c.SP--
}

// pull increments the stack pointer and reads the byte it points at,
// wrapping from 0xFF to 0x00.
func (c *CPU) pull() byte {
	c.SP++
	return c.mem.Read(stackBase + uint16(c.SP))
}

// pushWord pushes a word high byte first, the order JSR and BRK use for
// return addresses.
func (c *CPU) pushWord(value uint16) {
	c.push(byte(value >> 8))
	c.push(byte(value))
}

// pullWord pulls the low byte first, then the high byte.
func (c *CPU) pullWord() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}
