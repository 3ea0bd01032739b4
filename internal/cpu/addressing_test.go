package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOperandAddress(t *testing.T) {
	tests := []struct {
		name        string
		mode        Mode
		setup       func(c *CPU, mem *testMemory)
		wantAddress uint16
		wantCrossed bool
		wantPC      uint16 // program counter after operand consumption
	}{
		{
			name: "immediate",
			mode: immediate,
			setup: func(c *CPU, mem *testMemory) {
				load(c, mem, 0x42)
			},
			wantAddress: 0x8000,
			wantPC:      0x8001,
		},
		{
			name: "zero page",
			mode: zeroPage,
			setup: func(c *CPU, mem *testMemory) {
				load(c, mem, 0x10)
			},
			wantAddress: 0x0010,
			wantPC:      0x8001,
		},
		{
			name: "zero page indexed wraps within the zero page",
			mode: zeroPageX,
			setup: func(c *CPU, mem *testMemory) {
				c.X = 0x05
				load(c, mem, 0xFE)
			},
			wantAddress: 0x0003,
			wantPC:      0x8001,
		},
		{
			name: "absolute",
			mode: absolute,
			setup: func(c *CPU, mem *testMemory) {
				load(c, mem, 0x34, 0x12)
			},
			wantAddress: 0x1234,
			wantPC:      0x8002,
		},
		{
			name: "absolute indexed without page cross",
			mode: absoluteX,
			setup: func(c *CPU, mem *testMemory) {
				c.X = 0x01
				load(c, mem, 0x34, 0x12)
			},
			wantAddress: 0x1235,
			wantPC:      0x8002,
		},
		{
			name: "absolute indexed with page cross",
			mode: absoluteX,
			setup: func(c *CPU, mem *testMemory) {
				c.X = 0x01
				load(c, mem, 0xFF, 0x12)
			},
			wantAddress: 0x1300,
			wantCrossed: true,
			wantPC:      0x8002,
		},
		{
			name: "absolute Y indexed with page cross",
			mode: absoluteY,
			setup: func(c *CPU, mem *testMemory) {
				c.Y = 0x10
				load(c, mem, 0xF8, 0x20)
			},
			wantAddress: 0x2108,
			wantCrossed: true,
			wantPC:      0x8002,
		},
		{
			name: "indexed indirect",
			mode: indirectX,
			setup: func(c *CPU, mem *testMemory) {
				c.X = 0x04
				load(c, mem, 0x20)
				mem.data[0x24] = 0x74
				mem.data[0x25] = 0x20
			},
			wantAddress: 0x2074,
			wantPC:      0x8001,
		},
		{
			name: "indexed indirect pointer wraps in zero page",
			mode: indirectX,
			setup: func(c *CPU, mem *testMemory) {
				c.X = 0x01
				load(c, mem, 0xFE)
				mem.data[0xFF] = 0x11
				mem.data[0x00] = 0x22
			},
			wantAddress: 0x2211,
			wantPC:      0x8001,
		},
		{
			name: "indirect indexed",
			mode: indirectY,
			setup: func(c *CPU, mem *testMemory) {
				c.Y = 0x10
				load(c, mem, 0x86)
				mem.data[0x86] = 0x28
				mem.data[0x87] = 0x40
			},
			wantAddress: 0x4038,
			wantPC:      0x8001,
		},
		{
			name: "indirect indexed with page cross",
			mode: indirectY,
			setup: func(c *CPU, mem *testMemory) {
				c.Y = 0x02
				load(c, mem, 0x86)
				mem.data[0x86] = 0xFF
				mem.data[0x87] = 0x40
			},
			wantAddress: 0x4101,
			wantCrossed: true,
			wantPC:      0x8001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mem := newTestCPU(t)
			tt.setup(c, mem)

			address, crossed := c.operandAddress(tt.mode)

			assert.Equal(t, tt.wantAddress, address)
			assert.Equal(t, tt.wantCrossed, crossed)
			assert.Equal(t, tt.wantPC, c.PC)
		})
	}
}

func TestReadIndirectPageWrap(t *testing.T) {
	c, mem := newTestCPU(t)

	// a pointer ending in 0xFF reads the high byte from the start of the
	// same page, not from the next page
	mem.data[0x30FF] = 0x80
	mem.data[0x3000] = 0x50
	mem.data[0x3100] = 0xFF // must not be read

	assert.Equal(t, uint16(0x5080), c.readIndirect(0x30FF))
}

func TestReadIndirectNoWrap(t *testing.T) {
	c, mem := newTestCPU(t)

	mem.data[0x30FE] = 0x80
	mem.data[0x30FF] = 0x50

	assert.Equal(t, uint16(0x5080), c.readIndirect(0x30FE))
}
