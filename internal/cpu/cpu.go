// Package cpu implements the MOS 6502 CPU core of the emulator.
package cpu

import (
	"github.com/retroenv/retrogolib/arch/cpu/m6502"
	"github.com/retroenv/retrogolib/log"
)

// OpcodeHalt is the explicit stop instruction of this core. It sets the
// halted flag and has no other effect.
const OpcodeHalt = 0x02

// initialStackPointer is the stack pointer value after reset.
const initialStackPointer = 0xFD

// interrupt vectors at the top of the address space
const (
	resetVector = m6502.ResetAddress
	irqVector   = m6502.IrqAddress
)

// Memory is the address space the CPU executes against.
type Memory interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// TraceState is a snapshot of the visible CPU state, taken after an opcode
// fetch and before the instruction executes.
type TraceState struct {
	PC     uint16 // address the opcode was fetched from
	Opcode byte
	A      byte
	X      byte
	Y      byte
	SP     byte
	Status byte // packed status flags
	Cycles uint64
}

// TraceFunc consumes TraceState snapshots. Implementations must not modify
// CPU or memory state.
type TraceFunc func(TraceState)

// CPU holds the architectural state of one execution session: registers,
// status flags, cycle counter and the halted flag.
type CPU struct {
	A     byte
	X     byte
	Y     byte
	SP    byte
	PC    uint16
	Flags Status

	mem    Memory
	logger *log.Logger
	trace  TraceFunc

	cycles uint64
	halted bool
}

// New creates a new CPU executing against the given address space.
func New(mem Memory, logger *log.Logger) *CPU {
	return &CPU{
		mem:    mem,
		logger: logger,
	}
}

// SetTrace installs a consumer for per-instruction state snapshots,
// nil removes it.
func (c *CPU) SetTrace(trace TraceFunc) {
	c.trace = trace
}

// Reset puts the CPU into its documented power-on state and loads the
// program counter from the reset vector.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = initialStackPointer
	c.Flags = Status{InterruptDisable: true}
	c.cycles = 0
	c.halted = false
	c.PC = c.readWord(resetVector)
}

// Step fetches, decodes and executes a single instruction. An opcode without
// a table entry halts execution and is reported, it is not an error. Once
// halted, Step does nothing.
func (c *CPU) Step() {
	if c.halted {
		return
	}

	address := c.PC
	value := c.fetch()

	if c.trace != nil {
		c.trace(TraceState{
			PC:     address,
			Opcode: value,
			A:      c.A,
			X:      c.X,
			Y:      c.Y,
			SP:     c.SP,
			Status: c.Flags.Pack(),
			Cycles: c.cycles,
		})
	}

	op := opcodes[value]
	if op == nil {
		c.halted = true
		c.logger.Warn("Unknown opcode, halting",
			log.Hex("opcode", value),
			log.Hex("address", address))
		return
	}

	c.cycles += op.cycles
	op.handler(c, op.mode)
}

// Cycles returns the number of cycles elapsed since reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Halted returns whether execution has stopped, either by the stop
// instruction or by an unknown opcode.
func (c *CPU) Halted() bool {
	return c.halted
}

func (c *CPU) readWord(address uint16) uint16 {
	lo := uint16(c.mem.Read(address))
	hi := uint16(c.mem.Read(address + 1))
	return hi<<8 | lo
}
