package ppu

import "fmt"

// ErrUnmappedPPUAccess indicates an internal PPU memory access fell
// outside every mapped range ($0000-$3FFF wrapped). Given the PPU's
// address decode masks every access to 14 bits first, this signals a
// decode bug rather than anything a caller can recover from.
type ErrUnmappedPPUAccess struct {
	Addr uint16
}

func (e ErrUnmappedPPUAccess) Error() string {
	return fmt.Sprintf("unmapped PPU memory access at $%04X", e.Addr)
}

func unmappedAccessMessage(addr uint16) string {
	return ErrUnmappedPPUAccess{Addr: addr}.Error()
}
