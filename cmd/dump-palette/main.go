// Command dump-palette runs a ROM for a number of frames, then prints
// the background/sprite palette RAM contents and a frame buffer
// scanline sample, for comparing against known-good reference output.
package main

import (
	"fmt"
	"os"

	"github.com/retrowave-systems/nescore/pkg/apu"
	"github.com/retrowave-systems/nescore/pkg/console"
	"github.com/retrowave-systems/nescore/pkg/cpu"
	"github.com/retrowave-systems/nescore/pkg/ppu"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: dump-palette <rom-file> [frames]")
		os.Exit(1)
	}

	romPath := os.Args[1]
	frames := 120
	if len(os.Args) > 2 {
		fmt.Sscanf(os.Args[2], "%d", &frames)
	}

	fmt.Printf("Loading %s...\n", romPath)
	nes, err := console.New(romPath, cpu.NewStub(4), apu.NewStub(1_789_773, 0, nil))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	nes.Reset()

	fmt.Printf("Running %d frames...\n\n", frames)
	for i := 0; i < frames; i++ {
		if err := nes.StepFrame(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	ppuUnit := nes.PPU()

	fmt.Println("Reading Palette RAM via $2006/$2007:")
	fmt.Println()

	printPalettes := func(label string, base uint16) {
		fmt.Println(label)
		for pal := 0; pal < 4; pal++ {
			fmt.Printf("  Palette %d: ", pal)
			for i := 0; i < 4; i++ {
				addr := base + uint16(pal*4+i)
				ppuUnit.WriteRegister(0x2006, uint8(addr>>8))
				ppuUnit.WriteRegister(0x2006, uint8(addr&0xFF))
				value := ppuUnit.ReadRegister(0x2007)
				argb := ppu.Color(value)
				fmt.Printf("$%02X(#%06X) ", value, argb&0xFFFFFF)
			}
			fmt.Println()
		}
		fmt.Println()
	}

	printPalettes("Background Palettes:", 0x3F00)
	printPalettes("Sprite Palettes:", 0x3F10)

	fmt.Println("Frame buffer sample (scanline 60, pixels 0-31):")
	frame := nes.Frame()
	for x := 0; x < 32; x++ {
		argb := frame[60*ppu.ScreenWidth+x]
		fmt.Printf("#%06X ", argb&0xFFFFFF)
		if (x+1)%8 == 0 {
			fmt.Println()
		}
	}
}
