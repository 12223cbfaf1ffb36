package controller

import "testing"

func TestReadSequenceMatchesButtonOrder(t *testing.T) {
	c := NewController()
	c.SetButtons([8]bool{true, false, true, false, false, false, false, true})

	want := []uint8{1, 0, 1, 0, 0, 0, 0, 1}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("read %d: got %d, want %d", i, got, w)
		}
	}

	// Reads beyond the 8 buttons return 1.
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read %d past button 8: got %d, want 1", i, got)
		}
	}
}

func TestStrobeHighAlwaysReturnsButtonA(t *testing.T) {
	c := NewController()
	c.SetButton(ButtonA, true)
	c.Write(0x01) // strobe on

	for i := 0; i < 5; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read %d with strobe high: got %d, want 1", i, got)
		}
	}
}

func TestStrobeFallingEdgeResetsIndex(t *testing.T) {
	c := NewController()
	c.SetButtons([8]bool{true, true, true, true, true, true, true, true})

	c.Write(0x01)
	c.Write(0x00) // falling edge, index reset to 0

	c.Read()
	c.Read()
	c.Read()

	c.Write(0x01)
	c.Write(0x00)

	if got := c.Read(); got != 1 {
		t.Errorf("first read after re-latch = %d, want 1 (button A)", got)
	}
}
