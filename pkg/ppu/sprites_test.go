package ppu

import (
	"testing"

	"github.com/retrowave-systems/nescore/pkg/cartridge"
)

// fakeMapper is a minimal cartridge.Mapper for exercising PPU behavior
// that depends on live CHR data or a mapper's (possibly changing)
// mirroring mode, without needing a real iNES image.
type fakeMapper struct {
	chr       [0x2000]uint8
	mirroring uint8
}

func (m *fakeMapper) ReadPRG(addr uint16) uint8         { return 0 }
func (m *fakeMapper) WritePRG(addr uint16, value uint8) {}
func (m *fakeMapper) ReadCHR(addr uint16) uint8         { return m.chr[addr%0x2000] }
func (m *fakeMapper) WriteCHR(addr uint16, value uint8) { m.chr[addr%0x2000] = value }
func (m *fakeMapper) Scanline()                         {}
func (m *fakeMapper) GetMirroring() uint8               { return m.mirroring }

var _ cartridge.Mapper = (*fakeMapper)(nil)

// Scenario 2: nametable addressing follows the mapper's *current*
// mirroring mode, queried per access, not a value cached at attach time
// (mappers such as MMC1/MMC3/AxROM switch mirroring mid-game).
func TestNametableAddressFollowsMapperMirroringLive(t *testing.T) {
	p := NewPPU()
	mapper := &fakeMapper{mirroring: MirrorHorizontal}
	p.SetMapper(mapper)

	p.ppuWrite(0x2000, 0xAA)
	if got := p.ppuRead(0x2400); got != 0xAA {
		t.Fatalf("horizontal mirroring: $2400 read %#02x, want 0xaa (mirrors $2000)", got)
	}

	mapper.mirroring = MirrorVertical
	p.ppuWrite(0x2000, 0xBB)
	if got := p.ppuRead(0x2400); got == 0xBB {
		t.Fatalf("after switching to vertical mirroring, $2400 still mirrors $2000")
	}
	if got := p.ppuRead(0x2800); got != 0xBB {
		t.Fatalf("vertical mirroring: $2800 read %#02x, want 0xbb (mirrors $2000)", got)
	}
}

// Scenario 3: the odd-frame short pre-render scanline skips cycle 340 of
// scanline 261 straight to (0, 0) when rendering is enabled, but not when
// it's disabled.
func TestOddFrameSkipsLastPrerenderDotWhenRendering(t *testing.T) {
	p := NewPPU()
	p.mask.Set(0x08) // enable background rendering
	p.scanline = 261
	p.cycle = 339
	p.oddFrame = true

	p.Step()
	if p.scanline != 0 || p.cycle != 0 {
		t.Fatalf("odd frame + rendering: landed at scanline=%d cycle=%d, want 0,0", p.scanline, p.cycle)
	}
}

func TestEvenFrameDoesNotSkip(t *testing.T) {
	p := NewPPU()
	p.mask.Set(0x08)
	p.scanline = 261
	p.cycle = 339
	p.oddFrame = false

	p.Step()
	if p.scanline != 261 || p.cycle != 340 {
		t.Fatalf("even frame: landed at scanline=%d cycle=%d, want 261,340 (no skip)", p.scanline, p.cycle)
	}
}

func TestNoRenderingDoesNotSkipOnOddFrame(t *testing.T) {
	p := NewPPU()
	p.mask.Set(0x00) // rendering disabled
	p.scanline = 261
	p.cycle = 339
	p.oddFrame = true

	p.Step()
	if p.scanline != 261 || p.cycle != 340 {
		t.Fatalf("rendering disabled: landed at scanline=%d cycle=%d, want 261,340 (no skip)", p.scanline, p.cycle)
	}
}

// Scenario 4: with an all-zero nametable/attribute/pattern and rendering
// enabled, every background pixel is transparent and renderPixel falls
// through to the universal backdrop color in palette RAM.
func TestUniformBackdropPixel(t *testing.T) {
	p := NewPPU()
	p.SetMapper(&fakeMapper{}) // all-zero CHR: every tile is blank
	p.mask.Set(0x08)           // background rendering on, sprites off
	p.writePaletteByte(0x00, 0x21)

	p.cycle = 1
	p.scanline = 0
	p.renderPixel()

	want := hardwarePalette[0x21%64]
	if got := p.frameBuffer[0]; got != want {
		t.Errorf("backdrop pixel = %#08x, want %#08x", got, want)
	}
}

// Scenario 5: sprite 0 hit fires only while both background and sprite
// pixels are opaque, sprite slot 0 holds OAM sprite 0, and x < 255 — the
// rightmost column never sets the flag even if everything else lines up.
func TestSprite0HitBoundary(t *testing.T) {
	newReady := func() *PPU {
		p := NewPPU()
		p.mask.Set(0x1E) // background + sprites on, including the leftmost 8 pixels
		p.writePaletteByte(0x01, 0x01)
		p.writePaletteByte(0x11, 0x02)
		p.spriteCount = 1
		p.spritePositions[0] = 0
		p.spritePriorities[0] = 0
		p.spriteIndices[0] = 0
		p.spritePatterns[0] = 0x11111111 // opaque (pattern bit 0 set) at every offset
		p.SetMapper(&fakeMapper{chr: [0x2000]uint8{0: 0xFF}})
		return p
	}

	p := newReady()
	// Force an opaque background pixel independent of the blank nametable
	// fixture by monkeying the tile data register directly: storeTiledata
	// packs (attr<<2 | p1 | p2) nibbles, so 0x1 in every nibble is opaque
	// palette entry 1.
	p.tiledata = 0x1111111111111111
	p.cycle = 1
	p.scanline = 10
	p.renderPixel()
	if !p.status.Sprite0Hit() {
		t.Fatalf("sprite 0 hit not set at x=0 with opaque bg+sprite overlap")
	}

	p = newReady()
	p.tiledata = 0x1111111111111111
	p.spritePositions[0] = 248 // sprite's 8 columns span x=248..255
	p.cycle = 256              // x = 255, the boundary case that must NOT set the flag
	p.scanline = 10
	p.renderPixel()
	if p.status.Sprite0Hit() {
		t.Fatalf("sprite 0 hit set at x=255, rightmost column must be excluded")
	}
}

// Scenario 6: 8x16 sprites read the second (odd) tile of the pair for
// rows 8-15, and a vertical flip mirrors the row order across the whole
// 16-row pair, not just within one 8-row tile: logical row 15 normally
// lands on tile 1 row 7, but flipped it must land on tile 0 row 0.
func TestFetchSpritePattern8x16VerticalFlip(t *testing.T) {
	p := NewPPU()
	mapper := &fakeMapper{}
	mapper.chr[0x0000] = 0x80 // tile 0 (even, top half), row 0, leftmost pixel set
	mapper.chr[0x0017] = 0x00 // tile 1 (odd, bottom half), row 7, left blank
	p.SetMapper(mapper)

	var control PPUControl
	control.Set(0x20) // sprite size = 8x16
	p.control = control

	const oamIndex = 0
	p.oam[oamIndex*4+1] = 0 // tile number (even member of the pair)

	p.oam[oamIndex*4+2] = 0x80 // vertical flip
	flipped := p.fetchSpritePattern(oamIndex, 15)
	flippedTop := uint8((flipped >> 28) & 0x0F) // leftmost pixel

	p.oam[oamIndex*4+2] = 0x00 // no flip
	unflipped := p.fetchSpritePattern(oamIndex, 15)
	unflippedTop := uint8((unflipped >> 28) & 0x0F)

	if flippedTop == 0 {
		t.Errorf("flipped fetch at logical row 15 should read tile 0 row 0 (opaque), got a transparent top pixel")
	}
	if unflippedTop != 0 {
		t.Errorf("unflipped fetch at logical row 15 should read tile 1 row 7 (blank), got an opaque top pixel")
	}
}
