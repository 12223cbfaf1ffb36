// Package console ties the CPU, PPU, APU, and cartridge together into
// the stepping loop the rest of the system drives: advance one CPU
// instruction, then the PPU by 3x that many dots, then the APU by that
// many ticks, in that order.
package console

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/retrowave-systems/nescore/pkg/apu"
	"github.com/retrowave-systems/nescore/pkg/bus"
	"github.com/retrowave-systems/nescore/pkg/cartridge"
	"github.com/retrowave-systems/nescore/pkg/cpu"
	"github.com/retrowave-systems/nescore/pkg/ppu"
)

// cyclesPerMicrosecondNum/Den express the NTSC CPU rate as a ratio
// (1.79 cycles/µs) so StepMicros can stay in integer arithmetic.
const (
	cyclesPerMicrosecondNum = 179
	cyclesPerMicrosecondDen = 100
)

// Console owns one running game: its cartridge, bus, PPU, and the
// CPU/APU cores stepping against that bus.
type Console struct {
	cpu       cpu.Core
	apu       apu.Core
	ppu       *ppu.PPU
	bus       *bus.NESBus
	cartridge *cartridge.Cartridge
	cycles    uint64
}

// New loads romPath and wires a Console around it, using the given CPU
// and APU cores (cpu.Stub/apu.Stub are enough to exercise the PPU/bus
// pipeline in the absence of a real 6502 implementation).
func New(romPath string, cpuCore cpu.Core, apuCore apu.Core) (*Console, error) {
	cart, err := cartridge.LoadFromFile(romPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", romPath, err)
	}
	glog.Infof("loaded %s: mapper %d, mirroring %d", romPath, cart.GetMapperID(), cart.GetMirroring())
	return NewFromCartridge(cart, cpuCore, apuCore), nil
}

// NewFromCartridge wires a Console around an already-loaded cartridge.
func NewFromCartridge(cart *cartridge.Cartridge, cpuCore cpu.Core, apuCore apu.Core) *Console {
	ppuUnit := ppu.NewPPU()
	ppuUnit.SetMapper(cart.GetMapper())
	ppuUnit.SetMirroring(cart.GetMirroring())

	return &Console{
		cpu:       cpuCore,
		apu:       apuCore,
		ppu:       ppuUnit,
		bus:       bus.NewNESBus(ppuUnit, cart.GetMapper()),
		cartridge: cart,
	}
}

// Reset restores the CPU and PPU to their power-on state.
func (c *Console) Reset() {
	c.cpu.Reset()
	c.ppu.Reset()
}

// Step executes exactly one CPU instruction, then advances the PPU by
// 3x and the APU by 1x the CPU cycles it reported, delivering any NMI
// the PPU raises mid-advance to the CPU before the next call.
func (c *Console) Step() (frameDone bool, err error) {
	cycles, err := c.cpu.Step()
	if err != nil {
		return false, fmt.Errorf("cpu step: %w", err)
	}

	for i := 0; i < cycles*3; i++ {
		if c.ppu.Step() {
			frameDone = true
		}
		if c.ppu.TakeNMI() {
			c.cpu.SetNMI()
		}
	}
	for i := 0; i < cycles; i++ {
		c.apu.Step()
	}

	c.cycles += uint64(cycles)
	return frameDone, nil
}

// StepMicros advances the console by roughly micros microseconds of
// emulated wall-clock time, at the NTSC CPU rate of 1.79 cycles/µs.
func (c *Console) StepMicros(micros int) error {
	budget := uint64(micros * cyclesPerMicrosecondNum / cyclesPerMicrosecondDen)
	spent := uint64(0)
	for spent < budget {
		before := c.cycles
		if _, err := c.Step(); err != nil {
			return err
		}
		spent += c.cycles - before
	}
	return nil
}

// StepFrame advances roughly one NTSC frame (1/60 second).
func (c *Console) StepFrame() error {
	return c.StepMicros(1_000_000 / 60)
}

// Frame returns the PPU's current frame buffer.
func (c *Console) Frame() *ppu.FrameBuffer {
	return c.ppu.Frame()
}

// SetButtons updates controller port 0 or 1's button state ahead of the
// next Step/StepFrame call.
func (c *Console) SetButtons(port int, state [8]bool) {
	c.bus.Controller(port).SetButtons(state)
}

// Cycles returns the total CPU cycles executed since construction.
func (c *Console) Cycles() uint64 {
	return c.cycles
}

// PPU exposes the underlying PPU for inspection tools.
func (c *Console) PPU() *ppu.PPU {
	return c.ppu
}

// Cartridge exposes the loaded cartridge for inspection tools.
func (c *Console) Cartridge() *cartridge.Cartridge {
	return c.cartridge
}
