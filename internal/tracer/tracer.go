// Package tracer renders per-instruction execution traces.
package tracer

import (
	"fmt"
	"io"

	"github.com/retroenv/nesgoemu/internal/cpu"
	"github.com/retroenv/retrogolib/arch/cpu/m6502"
)

// Reader provides side-effect-free access to the address space, used to
// fetch the operand bytes of the traced instruction without touching the
// unmapped read accounting.
type Reader interface {
	Peek(address uint16) byte
}

// Tracer formats one line per executed instruction: the instruction address,
// its raw bytes, the disassembled form and the register, status and cycle
// state it executes with.
type Tracer struct {
	w   io.Writer
	mem Reader
}

// New creates a new tracer writing to w.
func New(w io.Writer, mem Reader) *Tracer {
	return &Tracer{
		w:   w,
		mem: mem,
	}
}

// Trace writes the trace line for one CPU state snapshot. It only reads from
// the address space and alters no emulator state.
func (t *Tracer) Trace(state cpu.TraceState) {
	raw, code := t.disassemble(state)
	_, _ = fmt.Fprintf(t.w, "%04X  %-8s  %-14s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
		state.PC, raw, code, state.A, state.X, state.Y, state.Status, state.SP, state.Cycles)
}

// disassemble renders the raw instruction bytes and the assembly form of the
// traced instruction, based on the m6502 opcode metadata.
func (t *Tracer) disassemble(state cpu.TraceState) (raw string, code string) {
	if state.Opcode == cpu.OpcodeHalt {
		return fmt.Sprintf("%02X", state.Opcode), "hlt"
	}

	op := m6502.Opcodes[state.Opcode]
	if op.Instruction == nil {
		return fmt.Sprintf("%02X", state.Opcode), fmt.Sprintf(".byte $%02x", state.Opcode)
	}

	name := op.Instruction.Name
	addressing := op.Addressing
	b1 := t.mem.Peek(state.PC + 1)
	b2 := t.mem.Peek(state.PC + 2)
	word := uint16(b2)<<8 | uint16(b1)

	switch addressing {
	case m6502.ImpliedAddressing:
		return fmt.Sprintf("%02X", state.Opcode), name

	case m6502.AccumulatorAddressing:
		return fmt.Sprintf("%02X", state.Opcode), fmt.Sprintf("%s a", name)

	case m6502.ImmediateAddressing:
		return fmt.Sprintf("%02X %02X", state.Opcode, b1), fmt.Sprintf("%s #$%02x", name, b1)

	case m6502.ZeroPageAddressing:
		return fmt.Sprintf("%02X %02X", state.Opcode, b1), fmt.Sprintf("%s $%02x", name, b1)

	case m6502.ZeroPageXAddressing:
		return fmt.Sprintf("%02X %02X", state.Opcode, b1), fmt.Sprintf("%s $%02x,x", name, b1)

	case m6502.ZeroPageYAddressing:
		return fmt.Sprintf("%02X %02X", state.Opcode, b1), fmt.Sprintf("%s $%02x,y", name, b1)

	case m6502.RelativeAddressing:
		target := state.PC + 2 + uint16(int8(b1))
		return fmt.Sprintf("%02X %02X", state.Opcode, b1), fmt.Sprintf("%s $%04x", name, target)

	case m6502.AbsoluteAddressing:
		return fmt.Sprintf("%02X %02X %02X", state.Opcode, b1, b2), fmt.Sprintf("%s $%04x", name, word)

	case m6502.AbsoluteXAddressing:
		return fmt.Sprintf("%02X %02X %02X", state.Opcode, b1, b2), fmt.Sprintf("%s $%04x,x", name, word)

	case m6502.AbsoluteYAddressing:
		return fmt.Sprintf("%02X %02X %02X", state.Opcode, b1, b2), fmt.Sprintf("%s $%04x,y", name, word)

	case m6502.IndirectAddressing:
		return fmt.Sprintf("%02X %02X %02X", state.Opcode, b1, b2), fmt.Sprintf("%s ($%04x)", name, word)

	case m6502.IndirectXAddressing:
		return fmt.Sprintf("%02X %02X", state.Opcode, b1), fmt.Sprintf("%s ($%02x,x)", name, b1)

	case m6502.IndirectYAddressing:
		return fmt.Sprintf("%02X %02X", state.Opcode, b1), fmt.Sprintf("%s ($%02x),y", name, b1)

	default:
		return fmt.Sprintf("%02X", state.Opcode), name
	}
}
