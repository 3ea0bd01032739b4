// Package options contains the program options.
package options

// Program options of the emulator.
type Program struct {
	Input string // program image to run

	Steps int  // maximum number of instructions to execute, 0 runs until halt
	Trace bool // print a trace line for every executed instruction

	Debug bool
	Quiet bool
}
