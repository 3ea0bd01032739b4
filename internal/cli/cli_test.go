package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/nesgoemu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.nes"},
			want: options.Program{Input: "test.nes"},
		},
		{
			name: "trace flag",
			args: []string{"prog", "-trace", "test.nes"},
			want: options.Program{Input: "test.nes", Trace: true},
		},
		{
			name: "steps flag",
			args: []string{"prog", "-steps", "100", "test.nes"},
			want: options.Program{Input: "test.nes", Steps: 100},
		},
		{
			name: "debug and quiet flags",
			args: []string{"prog", "-debug", "-q", "test.nes"},
			want: options.Program{Input: "test.nes", Debug: true, Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing input",
			args: []string{"prog"},
		},
		{
			name: "negative step limit",
			args: []string{"prog", "-steps", "-1", "test.nes"},
		},
		{
			name: "argument after input file",
			args: []string{"prog", "test.nes", "-trace"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}
