// Package memory implements the CPU address space of the emulator.
package memory

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

const (
	// HeaderSize is the size of the image header kept in front of the ROM data.
	HeaderSize = 0x10
	// RAMSize is the size of the work RAM.
	RAMSize = 0x800
	// ROMSize is the size of the program ROM.
	ROMSize = 0x8000
	// ROMBase is the address the program ROM is mapped at.
	ROMBase = 0x8000
	// ImageSize is the expected size of a loadable program image.
	ImageSize = HeaderSize + ROMSize

	ramMirrorEnd = 0x2000 // RAM repeats every RAMSize bytes below this address
)

// ErrImageSize is returned when a program image is too small to contain
// the header and the program ROM.
var ErrImageSize = errors.New("invalid image size")

// Memory implements the address decoding of the reduced NES memory model:
// mirrored work RAM in the low address range, program ROM in the high range
// and nothing in between.
type Memory struct {
	logger *log.Logger

	header [HeaderSize]byte
	ram    [RAMSize]byte
	rom    [ROMSize]byte

	unmappedReads uint64
}

// New creates a new memory instance with empty RAM and ROM.
func New(logger *log.Logger) *Memory {
	return &Memory{
		logger: logger,
	}
}

// Read returns the byte mapped at the given address. Reads of the unmapped
// range between RAM mirrors and ROM are reported and return 0, execution
// continues.
func (m *Memory) Read(address uint16) byte {
	if address >= ramMirrorEnd && address < ROMBase {
		m.unmappedReads++
		m.logger.Debug("Unmapped memory read",
			log.Hex("address", address))
		return 0
	}
	return m.Peek(address)
}

// Peek returns the byte mapped at the given address without the unmapped
// read accounting of Read. The tracer reads operand bytes through it, as
// tracing must not change any observable state.
func (m *Memory) Peek(address uint16) byte {
	switch {
	case address < ramMirrorEnd:
		return m.ram[address%RAMSize]

	case address >= ROMBase:
		return m.rom[address-ROMBase]

	default:
		return 0
	}
}

// Write stores a byte in the RAM mirror, regardless of the address range it
// targets. Accepting writes to the unmapped middle range and the ROM range
// into RAM is a documented simplification of this memory model, real
// memory-mapped I/O behavior is out of scope.
func (m *Memory) Write(address uint16, value byte) {
	m.ram[address%RAMSize] = value
}

// ReadWord reads a little-endian word, used for the interrupt vectors.
func (m *Memory) ReadWord(address uint16) uint16 {
	lo := uint16(m.Read(address))
	hi := uint16(m.Read(address + 1))
	return hi<<8 | lo
}

// LoadImage splits a flat program image into the header and the program ROM.
func (m *Memory) LoadImage(data []byte) error {
	if len(data) < ImageSize {
		return fmt.Errorf("%w: got %d bytes, need %d", ErrImageSize, len(data), ImageSize)
	}

	copy(m.header[:], data[:HeaderSize])
	copy(m.rom[:], data[HeaderSize:ImageSize])
	return nil
}

// Header returns the image header. It is retained for the loader but not
// interpreted by the core.
func (m *Memory) Header() [HeaderSize]byte {
	return m.header
}

// UnmappedReads returns the number of reads that hit unmapped address space.
func (m *Memory) UnmappedReads() uint64 {
	return m.unmappedReads
}
