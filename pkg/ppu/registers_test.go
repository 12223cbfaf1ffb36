package ppu

import "testing"

func TestLoopyCoarseX(t *testing.T) {
	cases := []struct {
		set  uint16
		want uint16
	}{
		{0, 0},
		{31, 31},
		{32, 0},
		{0x1F, 0x1F},
	}
	for i, tc := range cases {
		var l LoopyRegister
		l.SetCoarseX(tc.set)
		if got := l.CoarseX(); got != tc.want {
			t.Errorf("%d: CoarseX() = %d, want %d", i, got, tc.want)
		}
	}
}

func TestLoopyIncrementXWraps(t *testing.T) {
	var l LoopyRegister
	l.SetCoarseX(31)
	l.SetNametableX(0)
	l.IncrementX()
	if got := l.CoarseX(); got != 0 {
		t.Errorf("CoarseX() = %d, want 0", got)
	}
	if got := l.NametableX(); got != 1 {
		t.Errorf("NametableX() = %d, want 1 (should flip on wrap)", got)
	}
}

func TestLoopyIncrementYRow29FlipsNametable(t *testing.T) {
	var l LoopyRegister
	l.SetFineY(7)
	l.SetCoarseY(29)
	l.SetNametableY(0)
	l.IncrementY()
	if got := l.CoarseY(); got != 0 {
		t.Errorf("CoarseY() = %d, want 0", got)
	}
	if got := l.NametableY(); got != 1 {
		t.Errorf("NametableY() = %d, want 1", got)
	}
}

func TestLoopyIncrementYRow31WrapsWithoutFlip(t *testing.T) {
	var l LoopyRegister
	l.SetFineY(7)
	l.SetCoarseY(31)
	l.SetNametableY(0)
	l.IncrementY()
	if got := l.CoarseY(); got != 0 {
		t.Errorf("CoarseY() = %d, want 0", got)
	}
	if got := l.NametableY(); got != 0 {
		t.Errorf("NametableY() = %d, want 0 (row 31 doesn't flip)", got)
	}
}

func TestLoopySetMasksTo15Bits(t *testing.T) {
	var l LoopyRegister
	l.Set(0xFFFF)
	if got := l.Get(); got != 0x7FFF {
		t.Errorf("Get() = %#04x, want 0x7fff", got)
	}
}

func TestLoopyTransferXY(t *testing.T) {
	var v, tReg LoopyRegister
	tReg.Set(0x7FFF)
	v.TransferX(&tReg)
	if v.CoarseX() != 31 || v.NametableX() != 1 {
		t.Errorf("TransferX did not copy coarse/nametable X: v=%#04x", v.Get())
	}
	if v.CoarseY() != 0 || v.FineY() != 0 {
		t.Errorf("TransferX leaked Y bits: v=%#04x", v.Get())
	}

	v = LoopyRegister{}
	v.TransferY(&tReg)
	if v.CoarseY() != 31 || v.NametableY() != 1 || v.FineY() != 7 {
		t.Errorf("TransferY did not copy Y bits: v=%#04x", v.Get())
	}
	if v.CoarseX() != 0 {
		t.Errorf("TransferY leaked coarse X: v=%#04x", v.Get())
	}
}

func TestPPUControlNametableBits(t *testing.T) {
	var c PPUControl
	c.Set(0x03)
	if c.NametableX() != 1 || c.NametableY() != 1 {
		t.Errorf("NametableX/Y = %d/%d, want 1/1", c.NametableX(), c.NametableY())
	}
}

func TestPPUControlIncrementMode(t *testing.T) {
	var c PPUControl
	c.Set(0)
	if got := c.IncrementMode(); got != 1 {
		t.Errorf("IncrementMode() = %d, want 1", got)
	}
	c.Set(0x04)
	if got := c.IncrementMode(); got != 32 {
		t.Errorf("IncrementMode() = %d, want 32", got)
	}
}

func TestPPUMaskRenderingFlags(t *testing.T) {
	var m PPUMask
	m.Set(0)
	if m.IsRenderingEnabled() {
		t.Errorf("IsRenderingEnabled() = true, want false")
	}
	m.Set(0x08)
	if !m.IsRenderingEnabled() || !m.RenderBackground() {
		t.Errorf("background-only mask not detected as rendering")
	}
	m.Set(0x10)
	if !m.IsRenderingEnabled() || !m.RenderSprites() {
		t.Errorf("sprite-only mask not detected as rendering")
	}
}

func TestPPUStatusSprite0HitAndOverflow(t *testing.T) {
	var s PPUStatus
	s.SetSprite0Hit(true)
	if !s.Sprite0Hit() {
		t.Errorf("Sprite0Hit() = false after SetSprite0Hit(true)")
	}
	s.SetSprite0Hit(false)
	if s.Sprite0Hit() {
		t.Errorf("Sprite0Hit() = true after SetSprite0Hit(false)")
	}
	s.SetSpriteOverflow(true)
	if !s.SpriteOverflow() {
		t.Errorf("SpriteOverflow() = false after SetSpriteOverflow(true)")
	}
}
