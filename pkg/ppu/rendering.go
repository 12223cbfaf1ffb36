package ppu

// fetchNametableByte loads the tile ID for the tile the coarse scroll
// position currently points at.
func (p *PPU) fetchNametableByte() {
	v := p.v.Get()
	addr := 0x2000 | (v & 0x0FFF)
	p.nametableByte = p.ppuRead(addr)
}

// fetchAttributeByte loads the 2-bit palette select for the current
// tile's 32x32-pixel attribute quadrant, already shifted into bits 2-3
// so it can be OR'd straight into the low tile-data nibble.
func (p *PPU) fetchAttributeByte() {
	v := p.v.Get()
	addr := 0x23C0 | (v & 0x0C00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07)
	shift := ((v >> 4) & 4) | (v & 2)
	attr := p.ppuRead(addr)
	p.attributeByte = ((attr >> shift) & 3) << 2
}

func (p *PPU) fetchLoTileByte() {
	fineY := (p.v.Get() >> 12) & 7
	table := p.control.BackgroundPatternTable()
	tile := uint16(p.nametableByte)
	addr := table + tile*16 + fineY
	p.loTileByte = p.ppuRead(addr)
}

func (p *PPU) fetchHiTileByte() {
	fineY := (p.v.Get() >> 12) & 7
	table := p.control.BackgroundPatternTable()
	tile := uint16(p.nametableByte)
	addr := table + tile*16 + fineY
	p.hiTileByte = p.ppuRead(addr + 8)
}

// storeTiledata packs 8 pixels' worth of (attribute | pattern-bit-1 |
// pattern-bit-0) nibbles into the low 32 bits of the 64-bit tile data
// shift register. Whatever was already in the register is shifted left
// by the caller first, so bits 32-63 are always the next pixels due.
func (p *PPU) storeTiledata() {
	var data uint32
	for i := 0; i < 8; i++ {
		a := p.attributeByte
		p1 := (p.loTileByte & 0x80) >> 7
		p2 := (p.hiTileByte & 0x80) >> 6
		p.loTileByte <<= 1
		p.hiTileByte <<= 1
		data <<= 4
		data |= uint32(a | p1 | p2)
	}
	p.tiledata |= uint64(data)
}

func (p *PPU) fetchTiledata() uint32 {
	return uint32(p.tiledata >> 32)
}

func (p *PPU) backgroundPixel() uint8 {
	if !p.mask.RenderBackground() {
		return 0
	}
	data := p.fetchTiledata() >> ((7 - uint32(p.x)) * 4)
	return uint8(data & 0x0F)
}

// spritePixel scans the sprites staged for this scanline and returns the
// first non-transparent hit at the current dot, plus its slot index.
func (p *PPU) spritePixel() (index uint8, color uint8) {
	if !p.mask.RenderSprites() {
		return 0, 0
	}
	for i := int32(0); i < p.spriteCount; i++ {
		offset := (p.cycle - 1) - int32(p.spritePositions[i])
		if offset < 0 || offset > 7 {
			continue
		}
		offset = 7 - offset
		shift := uint(offset * 4)
		c := uint8((p.spritePatterns[i] >> shift) & 0x0F)
		if c%4 == 0 {
			continue
		}
		return uint8(i), c
	}
	return 0, 0
}

// renderPixel composites the background and sprite pixel at the current
// dot, applies left-edge masking and sprite-0-hit detection, and writes
// the resulting ARGB value into the frame buffer.
func (p *PPU) renderPixel() {
	x := int(p.cycle - 1)
	y := int(p.scanline)

	background := p.backgroundPixel()
	spriteIndex, sprite := p.spritePixel()

	if x < 8 && !p.mask.RenderBackgroundLeft() {
		background = 0
	}
	if x < 8 && !p.mask.RenderSpritesLeft() {
		sprite = 0
	}

	bgOpaque := background%4 != 0
	spOpaque := sprite%4 != 0

	var color uint8
	switch {
	case !bgOpaque && !spOpaque:
		color = 0
	case !bgOpaque && spOpaque:
		color = sprite | 0x10
	case bgOpaque && !spOpaque:
		color = background
	default:
		if p.spriteIndices[spriteIndex] == 0 && x < 255 {
			p.status.SetSprite0Hit(true)
		}
		if p.spritePriorities[spriteIndex] == 0 {
			color = sprite | 0x10
		} else {
			color = background
		}
	}

	colorIndex := p.readPaletteByte(uint16(color)) % 64
	if p.mask.Grayscale() {
		colorIndex &= 0x30
	}
	p.frameBuffer.set(x, y, hardwarePalette[colorIndex])
}
