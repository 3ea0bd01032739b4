package cpu

// Status byte bit positions. Pack and Unpack are the only places these
// are used, all other flag handling goes through the named fields.
const (
	flagCarry            = 1 << 0
	flagZero             = 1 << 1
	flagInterruptDisable = 1 << 2
	flagDecimal          = 1 << 3
	flagBreak            = 1 << 4
	flagUnused           = 1 << 5
	flagOverflow         = 1 << 6
	flagNegative         = 1 << 7
)

// Status holds the processor status flags.
type Status struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Overflow         bool
	Negative         bool
}

// Pack assembles the flags into the status byte layout used on the stack.
// The break and unused bits are always set in the pushed byte.
func (s Status) Pack() byte {
	value := byte(flagBreak | flagUnused)
	if s.Carry {
		value |= flagCarry
	}
	if s.Zero {
		value |= flagZero
	}
	if s.InterruptDisable {
		value |= flagInterruptDisable
	}
	if s.Decimal {
		value |= flagDecimal
	}
	if s.Overflow {
		value |= flagOverflow
	}
	if s.Negative {
		value |= flagNegative
	}
	return value
}

// Unpack restores the flags from a status byte pulled from the stack.
// The break and unused bits have no flag storage and are discarded.
func (s *Status) Unpack(value byte) {
	s.Carry = value&flagCarry != 0
	s.Zero = value&flagZero != 0
	s.InterruptDisable = value&flagInterruptDisable != 0
	s.Decimal = value&flagDecimal != 0
	s.Overflow = value&flagOverflow != 0
	s.Negative = value&flagNegative != 0
}
