// Command run is the primary entry point: it loads a ROM, wires stub
// CPU/APU cores around the PPU and bus, and drives playback through an
// SDL2 window at roughly 60 frames/second.
package main

import (
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/retrowave-systems/nescore/internal/config"
	"github.com/retrowave-systems/nescore/internal/hostio"
	"github.com/retrowave-systems/nescore/pkg/apu"
	"github.com/retrowave-systems/nescore/pkg/console"
	"github.com/retrowave-systems/nescore/pkg/cpu"
)

func main() {
	defer glog.Flush()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		glog.Exitf("%v", err)
	}

	samples := make(chan float32, hostio.AudioSampleRate/10)
	cpuCore := cpu.NewStub(4)
	apuCore := apu.NewStub(1_789_773, hostio.AudioSampleRate, samples)

	nes, err := console.New(cfg.ROMPath, cpuCore, apuCore)
	if err != nil {
		glog.Exitf("loading %s: %v", cfg.ROMPath, err)
	}
	nes.Reset()

	if cfg.Headless {
		runHeadless(nes)
		return
	}
	runWindowed(nes, samples, cfg.Scale)
}

// runHeadless advances the console without opening a window, for
// scripted frame dumps and smoke tests run without a display.
func runHeadless(nes *console.Console) {
	for i := 0; i < 600; i++ {
		if err := nes.StepFrame(); err != nil {
			glog.Exitf("step: %v", err)
		}
	}
}

func runWindowed(nes *console.Console, samples chan float32, scale int) {
	display, err := hostio.NewDisplay("nescore", scale)
	if err != nil {
		glog.Exitf("display: %v", err)
	}
	defer display.Close()

	audio, err := hostio.NewAudio(samples)
	if err != nil {
		glog.Errorf("audio disabled: %v", err)
	} else {
		defer audio.Close()
	}

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	input := &hostio.Input{}
	for !input.Quit() {
		input.PollEvents()
		nes.SetButtons(0, input.Buttons())

		if !input.Paused() {
			if err := nes.StepFrame(); err != nil {
				glog.Exitf("step: %v", err)
			}
		}

		if err := display.Present(nes.Frame()); err != nil {
			glog.Exitf("present: %v", err)
		}
		<-ticker.C
	}
}
