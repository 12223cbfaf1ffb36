// Package cpu declares the capability contract the console driver steps
// against. The 6502 instruction set itself is out of scope here: this
// package is a stepping source and NMI sink, not a CPU.
package cpu

// Core is the contract a 6502-family CPU implementation must satisfy to
// drive a console.Console. Step runs one instruction and reports how
// many CPU cycles it consumed, which the driver uses to pace the PPU
// (3 dots per CPU cycle) and APU (1 tick per CPU cycle).
type Core interface {
	// Step executes the next instruction and returns the number of CPU
	// cycles it took.
	Step() (cycles int, err error)

	// SetNMI signals a non-maskable interrupt, to be serviced before the
	// next instruction fetch. The PPU calls this through the driver on
	// the dot its 15-cycle NMI delay expires.
	SetNMI()

	// Reset returns the CPU to its power-on/reset vector state.
	Reset()
}
