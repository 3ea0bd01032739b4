package emulator

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/retroenv/nesgoemu/internal/memory"
	"github.com/retroenv/nesgoemu/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// buildImage places the program at the ROM start and points the reset
// vector at it.
func buildImage(program ...byte) []byte {
	data := make([]byte, memory.ImageSize)
	copy(data[memory.HeaderSize:], program)
	data[memory.HeaderSize+0x7FFC] = 0x00 // reset vector 0x8000
	data[memory.HeaderSize+0x7FFD] = 0x80
	return data
}

func TestRunProgram(t *testing.T) {
	e := New(log.NewTestLogger(t), options.Program{Steps: 10}, nil)

	// lda #$05, sta $0200, lda #$00, sta $0201, jmp $8000
	program := []byte{0xA9, 0x05, 0x8D, 0x00, 0x02, 0xA9, 0x00, 0x8D, 0x01, 0x02, 0x4C, 0x00, 0x80}
	assert.NoError(t, e.LoadImage(buildImage(program...)))

	assert.NoError(t, e.Run(context.Background()))

	assert.Equal(t, byte(0x05), e.Memory().Read(0x0200))
	assert.Equal(t, byte(0x00), e.Memory().Read(0x0201))
	assert.False(t, e.CPU().Halted())
}

func TestRunUntilHalt(t *testing.T) {
	e := New(log.NewTestLogger(t), options.Program{}, nil)

	// lda #$01, hlt
	assert.NoError(t, e.LoadImage(buildImage(0xA9, 0x01, 0x02)))

	assert.NoError(t, e.Run(context.Background()))

	assert.True(t, e.CPU().Halted())
	assert.Equal(t, byte(0x01), e.CPU().A)
	assert.Equal(t, uint16(0x8003), e.CPU().PC)
	assert.Equal(t, uint64(2), e.CPU().Cycles()) // hlt itself costs nothing
}

func TestRunCancelled(t *testing.T) {
	e := New(log.NewTestLogger(t), options.Program{}, nil)

	// endless loop, only the context stops it
	assert.NoError(t, e.LoadImage(buildImage(0x4C, 0x00, 0x80)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Run(ctx)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadImageTooSmall(t *testing.T) {
	e := New(log.NewTestLogger(t), options.Program{}, nil)

	err := e.LoadImage(make([]byte, 16))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, memory.ErrImageSize))
}

func TestTraceOutput(t *testing.T) {
	var buf bytes.Buffer
	e := New(log.NewTestLogger(t), options.Program{Trace: true, Steps: 1}, &buf)

	assert.NoError(t, e.LoadImage(buildImage(0xA9, 0x05)))
	assert.NoError(t, e.Run(context.Background()))

	assert.Contains(t, buf.String(), "8000")
	assert.Contains(t, buf.String(), "lda")
}
