package ppu

import "testing"

// stepTo advances p until it reaches the given scanline/cycle, failing the
// test if that takes more than one full frame (guards against infinite
// loops if the timing constants ever drift).
func stepTo(t *testing.T, p *PPU, scanline, cycle int32) {
	t.Helper()
	for i := 0; i < CyclesPerScanline*ScanlinesPerFrame+1; i++ {
		if p.scanline == scanline && p.cycle == cycle {
			return
		}
		p.Step()
	}
	t.Fatalf("never reached scanline %d cycle %d", scanline, cycle)
}

func TestVBlankSetAndClear(t *testing.T) {
	p := NewPPU()
	stepTo(t, p, 241, 1)
	if !p.nmiOccurred {
		t.Fatalf("nmiOccurred false at scanline 241 cycle 1")
	}

	stepTo(t, p, 261, 1)
	if p.nmiOccurred {
		t.Fatalf("nmiOccurred true at pre-render cycle 1")
	}
}

func TestNMIFiresAfterDelay(t *testing.T) {
	p := NewPPU()
	p.nmiOutput = true
	stepTo(t, p, 241, 1) // sets nmiOccurred, arms the 15-dot delay

	fired := false
	for i := 0; i < 20; i++ {
		if p.TakeNMI() {
			fired = true
			break
		}
		p.Step()
	}
	if !fired {
		t.Fatalf("NMI never fired within 20 dots of vblank start")
	}
}

func TestNMIDoesNotFireWhenOutputDisabled(t *testing.T) {
	p := NewPPU()
	p.nmiOutput = false
	stepTo(t, p, 241, 1)

	for i := 0; i < 20; i++ {
		if p.TakeNMI() {
			t.Fatalf("NMI fired with nmiOutput disabled")
		}
		p.Step()
	}
}

func TestFrameCountIncrementsOncePerFrame(t *testing.T) {
	p := NewPPU()
	start := p.FrameCount()
	total := int32(CyclesPerScanline) * int32(ScanlinesPerFrame)

	var firstIncrementAt int32 = -1
	for i := int32(0); i < 2*total; i++ {
		p.Step()
		if p.FrameCount() == start+1 && firstIncrementAt < 0 {
			firstIncrementAt = i
		}
	}
	if firstIncrementAt < 0 {
		t.Fatalf("FrameCount never incremented within two frames' worth of dots")
	}
	if got := p.FrameCount(); got != start+2 {
		t.Errorf("FrameCount() after two frames' worth of dots = %d, want %d", got, start+2)
	}
}

func TestPaletteWriteReadRoundTrip(t *testing.T) {
	p := NewPPU()
	p.writePaletteByte(0x01, 0x2C)
	if got := p.readPaletteByte(0x01); got != 0x2C {
		t.Errorf("readPaletteByte(1) = %#02x, want 0x2c", got)
	}
}

func TestPaletteBackdropAliasing(t *testing.T) {
	p := NewPPU()
	p.writePaletteByte(0x00, 0x0F)
	if got := p.readPaletteByte(0x10); got != 0x0F {
		t.Errorf("readPaletteByte(0x10) = %#02x, want 0x0f (should alias to 0x00)", got)
	}
	p.writePaletteByte(0x14, 0x01)
	if got := p.readPaletteByte(0x04); got != 0x01 {
		t.Errorf("readPaletteByte(0x04) = %#02x, want 0x01 (0x14 aliases onto it)", got)
	}
}

func TestNametableMirroringVertical(t *testing.T) {
	p := NewPPU()
	p.SetMirroring(MirrorVertical)
	if a, b := p.mirrorNametableAddress(0x2000), p.mirrorNametableAddress(0x2800); a != b {
		t.Errorf("vertical mirroring: $2000 -> %#04x, $2800 -> %#04x, want equal", a, b)
	}
	if a, b := p.mirrorNametableAddress(0x2000), p.mirrorNametableAddress(0x2400); a == b {
		t.Errorf("vertical mirroring: $2000 and $2400 should map to different offsets")
	}
}

func TestNametableMirroringHorizontal(t *testing.T) {
	p := NewPPU()
	p.SetMirroring(MirrorHorizontal)
	if a, b := p.mirrorNametableAddress(0x2000), p.mirrorNametableAddress(0x2400); a != b {
		t.Errorf("horizontal mirroring: $2000 -> %#04x, $2400 -> %#04x, want equal", a, b)
	}
	if a, b := p.mirrorNametableAddress(0x2000), p.mirrorNametableAddress(0x2800); a == b {
		t.Errorf("horizontal mirroring: $2000 and $2800 should map to different offsets")
	}
}

func TestRegisterReadWriteStatusClearsWriteToggle(t *testing.T) {
	p := NewPPU()
	p.WriteRegister(0x2006, 0x3F) // first write, sets w=true
	if !p.w {
		t.Fatalf("write toggle not set after first $2006 write")
	}
	p.ReadRegister(0x2002) // status read clears w
	if p.w {
		t.Errorf("write toggle still set after status read")
	}
}

func TestOAMWriteReadRoundTrip(t *testing.T) {
	p := NewPPU()
	p.WriteRegister(0x2003, 0x10) // OAMADDR
	p.WriteRegister(0x2004, 0x42) // OAMDATA
	if got := p.OAM()[0x10]; got != 0x42 {
		t.Errorf("OAM()[0x10] = %#02x, want 0x42", got)
	}
}
