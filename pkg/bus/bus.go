// Package bus implements the NES CPU-visible address space: RAM, PPU
// register ports, controller ports, OAM DMA, and cartridge space.
package bus

import (
	"github.com/retrowave-systems/nescore/pkg/cartridge"
	"github.com/retrowave-systems/nescore/pkg/controller"
	"github.com/retrowave-systems/nescore/pkg/ppu"
)

// Bus is the interface a CPU core steps against. NESBus is its only
// implementation; the console driver holds the concrete *NESBus.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// NESBus wires the 2KB of CPU work RAM, the PPU's register ports, two
// controller ports, and the cartridge's PRG space into the CPU's 64KB
// address space.
//
// CPU Memory Map:
//
//	$0000-$07FF: 2KB internal RAM
//	$0800-$1FFF: Mirrors of $0000-$07FF
//	$2000-$2007: PPU registers
//	$2008-$3FFF: Mirrors of $2000-$2007
//	$4014:       OAMDMA
//	$4016-$4017: Controller ports
//	$4020-$FFFF: Cartridge space (PRG-ROM, PRG-RAM, mapper registers)
type NESBus struct {
	cpuRAM [2048]uint8

	ppu    *ppu.PPU
	mapper cartridge.Mapper

	controller1 *controller.Controller
	controller2 *controller.Controller
}

var _ Bus = (*NESBus)(nil)

// NewNESBus creates a bus wiring the given PPU and mapper together.
func NewNESBus(ppuUnit *ppu.PPU, mapper cartridge.Mapper) *NESBus {
	return &NESBus{
		ppu:         ppuUnit,
		mapper:      mapper,
		controller1: controller.NewController(),
		controller2: controller.NewController(),
	}
}

// Read services a CPU memory read.
func (b *NESBus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.cpuRAM[addr&0x07FF]
	case addr < 0x4000:
		return b.ppu.ReadRegister(0x2000 + (addr & 0x0007))
	case addr == 0x4016:
		return b.controller1.Read()
	case addr == 0x4017:
		return b.controller2.Read()
	case addr >= 0x4020:
		return b.mapper.ReadPRG(addr)
	}
	return 0
}

// Write services a CPU memory write.
func (b *NESBus) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		b.cpuRAM[addr&0x07FF] = value
	case addr < 0x4000:
		b.ppu.WriteRegister(0x2000+(addr&0x0007), value)
	case addr == 0x4014:
		b.oamDMA(value)
	case addr == 0x4016:
		b.controller1.Write(value)
		b.controller2.Write(value)
	case addr >= 0x4020:
		b.mapper.WritePRG(addr, value)
	}
}

// oamDMA copies the 256-byte page starting at page<<8 into OAM. Real
// hardware steals 513-514 CPU cycles to do this; since CPU instruction
// timing is out of scope here, the transfer is modeled as instantaneous
// rather than threaded through the stubbed CPU core's cycle count.
func (b *NESBus) oamDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(uint8(i), b.Read(base+uint16(i)))
	}
}

// PPU returns the bus's PPU, for the console driver to step directly.
func (b *NESBus) PPU() *ppu.PPU {
	return b.ppu
}

// Controller returns controller port 0 or 1.
func (b *NESBus) Controller(num int) *controller.Controller {
	if num == 0 {
		return b.controller1
	}
	return b.controller2
}
