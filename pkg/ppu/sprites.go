package ppu

// fetchSpritePattern computes the packed 4-bit-per-pixel pattern for
// sprite i, row rows into the sprite counting from its top edge (before
// vertical flip; the flip is applied here), handling both 8x8 and 8x16
// addressing and the per-sprite horizontal flip.
func (p *PPU) fetchSpritePattern(i uint8, row int32) uint32 {
	tile := p.oam[i*4+1]
	attributes := p.oam[i*4+2]

	var addr uint16
	if p.control.SpriteSize() == 0 {
		if attributes&0x80 == 0x80 {
			row = 7 - row
		}
		addr = p.control.SpritePatternTable() + uint16(tile)*16 + uint16(row)
	} else {
		if attributes&0x80 == 0x80 {
			row = 15 - row
		}
		table := uint16(tile & 1)
		tile &= 0xFE
		if row > 7 {
			tile++
			row -= 8
		}
		addr = table*0x1000 + uint16(tile)*16 + uint16(row)
	}

	paletteBits := (attributes & 3) << 2
	loByte := p.ppuRead(addr)
	hiByte := p.ppuRead(addr + 8)

	var data uint32
	for px := 0; px < 8; px++ {
		var p1, p2 uint8
		if attributes&0x40 == 0x40 {
			p1 = loByte & 1
			p2 = (hiByte & 1) << 1
			loByte >>= 1
			hiByte >>= 1
		} else {
			p1 = (loByte & 0x80) >> 7
			p2 = (hiByte & 0x80) >> 6
			loByte <<= 1
			hiByte <<= 1
		}
		data <<= 4
		data |= uint32(paletteBits | p1 | p2)
	}
	return data
}

// evaluateSprites scans all 64 OAM entries for sprites visible on the
// scanline about to be drawn, fetching pattern data for up to 8 and
// flagging overflow if more than 8 are in range.
func (p *PPU) evaluateSprites() {
	height := int32(8)
	if p.control.SpriteSize() != 0 {
		height = 16
	}

	count := int32(0)
	for i := uint16(0); i < 64; i++ {
		y := p.oam[i*4]
		attrs := p.oam[i*4+2]
		x := p.oam[i*4+3]
		row := p.scanline - int32(y)
		if row < 0 || row >= height {
			continue
		}
		if count < 8 {
			pattern := p.fetchSpritePattern(uint8(i), row)
			p.spritePatterns[count] = pattern
			p.spritePositions[count] = x
			p.spritePriorities[count] = (attrs >> 5) & 1
			p.spriteIndices[count] = uint8(i)
		}
		count++
	}
	if count > 8 {
		count = 8
		p.status.SetSpriteOverflow(true)
	}
	p.spriteCount = count
}
