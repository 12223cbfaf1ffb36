package cartridge

import (
	"errors"
	"testing"
)

// buildROM constructs a minimal synthetic iNES image: prgBanks *
// 16KB of PRG-ROM and chrBanks * 8KB of CHR-ROM, all zeroed, with the
// given mapper ID and mirroring split across flags 6/7.
func buildROM(mapperID, prgBanks, chrBanks uint8, vertical bool) []byte {
	data := make([]byte, inesHeaderSize)
	copy(data, inesMagic)
	data[4] = prgBanks
	data[5] = chrBanks
	flags6 := (mapperID & 0x0F) << 4
	if vertical {
		flags6 |= 0x01
	}
	data[6] = flags6
	data[7] = mapperID & 0xF0

	data = append(data, make([]byte, int(prgBanks)*prgROMBankSize)...)
	data = append(data, make([]byte, int(chrBanks)*chrROMBankSize)...)
	return data
}

func TestLoadFromBytesTooSmall(t *testing.T) {
	_, err := LoadFromBytes([]byte{1, 2, 3})
	var fmtErr ErrUnrecognisedFormat
	if !errors.As(err, &fmtErr) {
		t.Fatalf("LoadFromBytes(tiny) error = %v, want ErrUnrecognisedFormat", err)
	}
}

func TestLoadFromBytesBadMagic(t *testing.T) {
	data := buildROM(0, 1, 1, false)
	data[0] = 'X'
	_, err := LoadFromBytes(data)
	var fmtErr ErrUnrecognisedFormat
	if !errors.As(err, &fmtErr) {
		t.Fatalf("LoadFromBytes(bad magic) error = %v, want ErrUnrecognisedFormat", err)
	}
}

func TestLoadFromBytesTruncatedPRG(t *testing.T) {
	data := buildROM(0, 2, 1, false)
	data = data[:len(data)-prgROMBankSize] // drop the second declared PRG bank
	_, err := LoadFromBytes(data)
	var fmtErr ErrUnrecognisedFormat
	if !errors.As(err, &fmtErr) {
		t.Fatalf("LoadFromBytes(truncated PRG) error = %v, want ErrUnrecognisedFormat", err)
	}
}

func TestLoadFromBytesUnknownMapper(t *testing.T) {
	data := buildROM(250, 1, 1, false)
	_, err := LoadFromBytes(data)
	var mapperErr ErrUnknownMapper
	if !errors.As(err, &mapperErr) {
		t.Fatalf("LoadFromBytes(mapper 250) error = %v, want ErrUnknownMapper", err)
	}
	if mapperErr.Number != 250 {
		t.Errorf("ErrUnknownMapper.Number = %d, want 250", mapperErr.Number)
	}
}

func TestLoadFromBytesKnownMappers(t *testing.T) {
	for _, id := range []uint8{0, 1, 2, 3, 4, 7} {
		cart, err := LoadFromBytes(buildROM(id, 2, 1, true))
		if err != nil {
			t.Fatalf("mapper %d: LoadFromBytes failed: %v", id, err)
		}
		if cart.GetMapperID() != id {
			t.Errorf("mapper %d: GetMapperID() = %d", id, cart.GetMapperID())
		}
		if cart.GetMirroring() != MirrorVertical {
			t.Errorf("mapper %d: GetMirroring() = %d, want vertical", id, cart.GetMirroring())
		}
		if cart.GetMapper() == nil {
			t.Errorf("mapper %d: GetMapper() returned nil", id)
		}
	}
}

func TestLoadFromBytesCHRRAMWhenNoCHRBanks(t *testing.T) {
	cart, err := LoadFromBytes(buildROM(0, 1, 0, false))
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	mapper := cart.GetMapper()
	mapper.WriteCHR(0, 0xAB)
	if got := mapper.ReadCHR(0); got != 0xAB {
		t.Errorf("CHR-RAM round trip: ReadCHR(0) = %#02x, want 0xab", got)
	}
}
