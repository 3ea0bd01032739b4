// Package emulator wires the address space, CPU and tracer into one
// emulation session and drives the execution loop.
package emulator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/nesgoemu/internal/cpu"
	"github.com/retroenv/nesgoemu/internal/memory"
	"github.com/retroenv/nesgoemu/internal/options"
	"github.com/retroenv/nesgoemu/internal/tracer"
	"github.com/retroenv/retrogolib/log"
)

// Emulator owns the state of one emulation session.
type Emulator struct {
	logger *log.Logger
	opts   options.Program

	mem *memory.Memory
	cpu *cpu.CPU
}

// New creates a new emulator instance from the program options, writing
// trace output to traceWriter. A nil traceWriter defaults to stdout.
func New(logger *log.Logger, opts options.Program, traceWriter io.Writer) *Emulator {
	mem := memory.New(logger)
	c := cpu.New(mem, logger)

	if opts.Trace {
		if traceWriter == nil {
			traceWriter = os.Stdout
		}
		c.SetTrace(tracer.New(traceWriter, mem).Trace)
	}

	return &Emulator{
		logger: logger,
		opts:   opts,
		mem:    mem,
		cpu:    c,
	}
}

// Load reads a program image from a file and resets the CPU.
func (e *Emulator) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading image '%s': %w", path, err)
	}
	return e.LoadImage(data)
}

// LoadImage loads a program image into the address space and resets the CPU,
// starting a fresh session.
func (e *Emulator) LoadImage(data []byte) error {
	if err := e.mem.LoadImage(data); err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	e.cpu.Reset()
	e.logger.Debug("Reset",
		log.Hex("pc", e.cpu.PC))
	return nil
}

// Run executes instructions until the CPU halts, the optional step limit is
// reached or the context is cancelled. The step limit lives here in the
// driver, the CPU itself runs unbounded.
func (e *Emulator) Run(ctx context.Context) error {
	for steps := 0; !e.cpu.Halted(); steps++ {
		if e.opts.Steps > 0 && steps >= e.opts.Steps {
			e.logger.Debug("Step limit reached",
				log.Int("steps", steps))
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		e.cpu.Step()
	}

	e.logger.Debug("CPU halted",
		log.Hex("pc", e.cpu.PC))
	return nil
}

// CPU returns the CPU of this session.
func (e *Emulator) CPU() *cpu.CPU {
	return e.cpu
}

// Memory returns the address space of this session.
func (e *Emulator) Memory() *memory.Memory {
	return e.mem
}
