package ppu

// ReadRegister services a CPU read of $2000-$2007 (mirrored every 8 bytes
// by the bus). Only PPUSTATUS, OAMDATA, and PPUDATA are readable; the
// others read as 0 (PPU open bus is not modeled).
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr % 8 {
	case 2:
		return p.readStatus()
	case 4:
		return p.readOAMData()
	case 7:
		return p.readData()
	default:
		return 0
	}
}

// WriteRegister services a CPU write of $2000-$2007.
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	p.lastRegister = value
	switch addr % 8 {
	case 0:
		p.writeControl(value)
	case 1:
		p.mask.Set(value)
	case 3:
		p.oamAddress = value
	case 4:
		p.writeOAMData(value)
	case 5:
		p.writeScroll(value)
	case 6:
		p.writeAddress(value)
	case 7:
		p.writeData(value)
	}
}

// WriteOAMByte writes directly to OAM at an explicit index, used by the
// bus's $4014 OAMDMA transfer.
func (p *PPU) WriteOAMByte(index uint8, value uint8) {
	p.oam[index] = value
}

// OAM exposes the raw OAM bytes for sprite debugging tools.
func (p *PPU) OAM() [256]uint8 {
	return p.oam
}

func (p *PPU) readStatus() uint8 {
	result := p.lastRegister & 0x1F
	if p.status.SpriteOverflow() {
		result |= 1 << 5
	}
	if p.status.Sprite0Hit() {
		result |= 1 << 6
	}
	if p.nmiOccurred {
		result |= 1 << 7
	}
	p.nmiOccurred = false
	p.nmiChange()
	p.w = false
	return result
}

func (p *PPU) readOAMData() uint8 {
	return p.oam[p.oamAddress]
}

// readData implements the buffered-PPUDATA-read quirk: non-palette reads
// return the previous buffer contents while the fresh byte refills it;
// palette reads bypass the buffer (mirroring the 2C02's internal latch
// still picking up the underlying nametable byte one page below).
func (p *PPU) readData() uint8 {
	addr := p.v.Get()
	value := p.ppuRead(addr)
	if addr%0x4000 < 0x3F00 {
		value, p.readBuffer = p.readBuffer, value
	} else {
		p.readBuffer = p.ppuRead(addr - 0x1000)
	}
	p.v.Set(addr + p.control.IncrementMode())
	return value
}

func (p *PPU) writeOAMData(value uint8) {
	p.oam[p.oamAddress] = value
	p.oamAddress++
}

func (p *PPU) writeData(value uint8) {
	p.ppuWrite(p.v.Get(), value)
	p.v.Set(p.v.Get() + p.control.IncrementMode())
}

// writeControl decodes PPUCTRL. The base-nametable-select bits feed `t`
// from the low two bits of the written value, matching documented 2C02
// behavior (some early homebrew references derive the nametable flag
// from bit 1 alone; that variant is not reproduced here).
func (p *PPU) writeControl(value uint8) {
	p.control.Set(value)
	p.nmiOutput = p.control.EnableNMI()
	p.nmiChange()
	p.t.SetNametableX(uint16(value) & 0x01)
	p.t.SetNametableY((uint16(value) >> 1) & 0x01)
}

func (p *PPU) writeScroll(value uint8) {
	if !p.w {
		p.t.SetCoarseX(uint16(value) >> 3)
		p.x = value & 0x07
		p.w = true
	} else {
		p.t.SetFineY(uint16(value) & 0x07)
		p.t.SetCoarseY(uint16(value) >> 3)
		p.w = false
	}
}

func (p *PPU) writeAddress(value uint8) {
	if !p.w {
		p.t.Set((p.t.Get() & 0x00FF) | ((uint16(value) & 0x3F) << 8))
		p.w = true
	} else {
		p.t.Set((p.t.Get() & 0xFF00) | uint16(value))
		p.v.Set(p.t.Get())
		p.w = false
	}
}
