// Package ppu implements the NES Picture Processing Unit (2C02) as a
// per-dot state machine: register file, renderer, and sprite evaluator.
//
// Hardware Specifications:
//   - Clock speed: ~5.37 MHz (NTSC), runs 3x the CPU clock
//   - 341 PPU cycles per scanline, 262 scanlines per frame
//   - Output: 256x240 pixels, packed ARGB
//
// Memory Map:
//   - $0000-$1FFF: Pattern tables (CHR-ROM/RAM, via the cartridge mapper)
//   - $2000-$2FFF: Nametables (2KB internal RAM, mirrored per cartridge)
//   - $3000-$3EFF: Mirrors of $2000-$2EFF
//   - $3F00-$3F1F: Palette RAM (32 bytes, aliased every 4th entry >= $10)
//   - $3F20-$3FFF: Mirrors of $3F00-$3F1F
package ppu

import "github.com/retrowave-systems/nescore/pkg/cartridge"

// Mirroring modes for nametables.
const (
	MirrorHorizontal = 0
	MirrorVertical   = 1
	MirrorSingleLow  = 2
	MirrorSingleHigh = 3
	MirrorFourScreen = 4
)

// Screen dimensions.
const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

// Timing constants (NTSC).
const (
	CyclesPerScanline = 341
	ScanlinesPerFrame = 262
	VisibleScanlines  = 240
)

// PPU is the NES Picture Processing Unit (2C02).
type PPU struct {
	// Memory banks.
	nametable  [2048]uint8
	paletteRAM [32]uint8
	oam        [256]uint8
	oamAddress uint8

	// CPU-visible registers ($2000-$2007).
	control      PPUControl
	mask         PPUMask
	status       PPUStatus
	lastRegister uint8 // last byte written to any PPU register (open-bus low bits)
	readBuffer   uint8 // buffered PPUDATA read

	// Loopy scroll/address registers.
	v, t LoopyRegister
	x    uint8 // fine X scroll, 3 bits
	w    bool  // write toggle

	// NMI edge-detection bookkeeping.
	nmiOccurred bool
	nmiOutput   bool
	nmiPrevious bool
	nmiDelay    uint8
	pendingNMI  bool

	// Dot-level rendering position.
	cycle    int32 // 0-340
	scanline int32 // 0-261
	frame    uint64
	oddFrame bool

	// Background fetch pipeline scratch.
	nametableByte     uint8
	attributeByte     uint8
	loTileByte        uint8
	hiTileByte        uint8
	tiledata          uint64

	// Sprite evaluation scratch (up to 8 sprites per scanline).
	spriteCount      int32
	spritePatterns   [8]uint32
	spritePositions  [8]uint8
	spritePriorities [8]uint8
	spriteIndices    [8]uint8

	mapper        cartridge.Mapper
	mirroringMode uint8 // fallback only; see currentMirroring

	frameBuffer *FrameBuffer
}

// NewPPU creates a PPU in its post-reset state, matching the console's
// power-on/reset convention of parking the renderer near end-of-frame.
func NewPPU() *PPU {
	p := &PPU{
		cycle:       340,
		scanline:    240,
		frameBuffer: new(FrameBuffer),
	}
	return p
}

// SetMapper connects a cartridge mapper for CHR-ROM/RAM access.
func (p *PPU) SetMapper(mapper cartridge.Mapper) {
	p.mapper = mapper
}

// SetMirroring sets the nametable mirroring mode used when no mapper is
// attached (tests exercising the PPU in isolation). Once a mapper is set
// via SetMapper, its GetMirroring() is queried on every nametable access
// instead, since mappers such as MMC1/MMC3/AxROM switch mirroring at
// runtime.
func (p *PPU) SetMirroring(mode uint8) {
	p.mirroringMode = mode
}

// Reset restores the PPU to its post-power-on state without clearing the
// frame buffer contents.
func (p *PPU) Reset() {
	p.cycle = 340
	p.scanline = 240
	p.control.Set(0)
	p.mask.Set(0)
	p.oamAddress = 0
}

// Frame returns the current frame buffer. The returned pointer is stable
// across calls. The renderer writes into it pixel by pixel as visible dots
// are drawn, so it is complete only once Step has reported a finished frame.
func (p *PPU) Frame() *FrameBuffer {
	return p.frameBuffer
}

// FrameCount returns the number of frames completed since construction.
func (p *PPU) FrameCount() uint64 {
	return p.frame
}

// TakeNMI reports whether an NMI edge became due this tick and clears the
// pending flag. The driver calls this once after every Step.
func (p *PPU) TakeNMI() bool {
	fired := p.pendingNMI
	p.pendingNMI = false
	return fired
}

// nmiChange recomputes the NMI output line and arms the 15-dot delay
// whenever it transitions low-to-high, mirroring the 2C02's internal
// NMI edge detector.
func (p *PPU) nmiChange() {
	nmi := p.nmiOutput && p.nmiOccurred
	if nmi && !p.nmiPrevious {
		p.nmiDelay = 15
	}
	p.nmiPrevious = nmi
}

// Step advances the PPU by one dot and reports whether this dot completed
// a frame (i.e. the video sink should blit).
func (p *PPU) Step() (frameDone bool) {
	p.tick()

	rendering := p.mask.RenderBackground() || p.mask.RenderSprites()
	preline := p.scanline == 261
	visibleLine := p.scanline < 240
	renderLine := preline || visibleLine
	prefetchCycle := p.cycle >= 321 && p.cycle <= 336
	visibleCycle := p.cycle >= 1 && p.cycle <= 256
	fetchCycle := prefetchCycle || visibleCycle

	if rendering {
		if visibleLine && visibleCycle {
			p.renderPixel()
		}
		if renderLine && fetchCycle {
			p.tiledata <<= 4
			switch p.cycle % 8 {
			case 1:
				p.fetchNametableByte()
			case 3:
				p.fetchAttributeByte()
			case 5:
				p.fetchLoTileByte()
			case 7:
				p.fetchHiTileByte()
			case 0:
				p.storeTiledata()
			}
		}
		if preline && p.cycle >= 280 && p.cycle <= 304 {
			p.v.TransferY(&p.t)
		}
		if renderLine {
			if fetchCycle && p.cycle%8 == 0 {
				p.v.IncrementX()
			}
			if p.cycle == 256 {
				p.v.IncrementY()
			}
			if p.cycle == 257 {
				p.v.TransferX(&p.t)
			}
		}
	}

	if rendering && visibleLine && p.cycle == 260 && p.mapper != nil {
		p.mapper.Scanline()
	}

	if rendering && p.cycle == 257 {
		if visibleLine {
			p.evaluateSprites()
		} else {
			p.spriteCount = 0
		}
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.setVBlank()
		frameDone = true
	}
	if preline && p.cycle == 1 {
		p.clearVBlank()
		p.status.SetSprite0Hit(false)
		p.status.SetSpriteOverflow(false)
	}
	return frameDone
}

// tick advances cycle/scanline/frame counters and the NMI delay counter
// by one dot, applying the odd-frame short pre-render skip.
func (p *PPU) tick() {
	if p.nmiDelay > 0 {
		p.nmiDelay--
		wasNMI := p.nmiOutput && p.nmiOccurred
		if p.nmiDelay == 0 && wasNMI {
			p.pendingNMI = true
		}
	}

	renderingSomething := p.mask.RenderBackground() || p.mask.RenderSprites()
	shouldSkip := p.oddFrame && p.scanline == 261 && p.cycle == 339
	if renderingSomething && shouldSkip {
		p.cycle = 0
		p.scanline = 0
		p.oddFrame = !p.oddFrame
		p.frame++
		return
	}

	p.cycle++
	if p.cycle > 340 {
		p.cycle = 0
		p.scanline++
		if p.scanline > 261 {
			p.scanline = 0
			p.oddFrame = !p.oddFrame
			p.frame++
		}
	}
}

func (p *PPU) setVBlank() {
	p.nmiOccurred = true
	p.nmiChange()
}

func (p *PPU) clearVBlank() {
	p.nmiOccurred = false
	p.nmiChange()
}
