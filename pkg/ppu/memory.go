package ppu

// ppuRead reads from the PPU's own address space ($0000-$3FFF, wrapped
// mod $4000): pattern tables through the mapper, nametable RAM through
// the cartridge's mirroring mode, palette RAM with its alias rule.
func (p *PPU) ppuRead(addr uint16) uint8 {
	addr %= 0x4000
	switch {
	case addr < 0x2000:
		if p.mapper != nil {
			return p.mapper.ReadCHR(addr)
		}
		return 0
	case addr < 0x3F00:
		return p.nametable[p.mirrorNametableAddress(addr)]
	case addr < 0x4000:
		return p.readPaletteByte(addr % 32)
	}
	panic(unmappedAccessMessage(addr))
}

// ppuWrite mirrors ppuRead's address decoding for writes.
func (p *PPU) ppuWrite(addr uint16, value uint8) {
	addr %= 0x4000
	switch {
	case addr < 0x2000:
		if p.mapper != nil {
			p.mapper.WriteCHR(addr, value)
		}
	case addr < 0x3F00:
		p.nametable[p.mirrorNametableAddress(addr)] = value
	case addr < 0x4000:
		p.writePaletteByte(addr%32, value)
	default:
		panic(unmappedAccessMessage(addr))
	}
}

func (p *PPU) readPaletteByte(addr uint16) uint8 {
	return p.paletteRAM[aliasPaletteAddress(addr)]
}

func (p *PPU) writePaletteByte(addr uint16, value uint8) {
	p.paletteRAM[aliasPaletteAddress(addr)] = value
}

// aliasPaletteAddress implements the $3F10/$3F14/$3F18/$3F1C mirror onto
// $3F00/$3F04/$3F08/$3F0C.
func aliasPaletteAddress(addr uint16) uint16 {
	if addr >= 16 && addr%4 == 0 {
		return addr - 16
	}
	return addr
}

// mirrorNametableAddress maps a $2000-$3EFF address onto the 2KB of
// internal nametable RAM according to the cartridge's mirroring mode.
// The mode is queried from the mapper on every call rather than cached,
// since mappers like MMC1/MMC3/AxROM can switch it at runtime.
func (p *PPU) mirrorNametableAddress(addr uint16) uint16 {
	addr = (addr - 0x2000) % 0x1000
	table := addr / 0x0400
	offset := addr % 0x0400
	switch p.currentMirroring() {
	case MirrorVertical:
		return addr % 0x0800
	case MirrorHorizontal:
		return (table/2)*0x0400 + offset
	case MirrorSingleLow:
		return offset
	case MirrorSingleHigh:
		return 0x0400 + offset
	case MirrorFourScreen:
		return addr % 2048
	}
	return offset
}

// currentMirroring returns the mapper's live mirroring mode, falling back
// to the cached value set by SetMirroring when no mapper is attached
// (e.g. a bare PPU under test).
func (p *PPU) currentMirroring() uint8 {
	if p.mapper != nil {
		return p.mapper.GetMirroring()
	}
	return p.mirroringMode
}
