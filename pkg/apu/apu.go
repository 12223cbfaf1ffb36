// Package apu declares the audio capability contract the console driver
// steps alongside the CPU and PPU, and a stub sample-rate-correct
// implementation. Cycle-accurate channel synthesis (pulse/triangle/
// noise/DMC) is out of scope; what this package keeps real is the
// pipeline shape: a bounded channel of samples a host audio sink drains.
package apu

// Core is the contract a 6502-family APU implementation must satisfy.
// Step advances internal timers by one CPU cycle, matching the driver's
// "one APU tick per CPU cycle" discipline.
type Core interface {
	Step()
	Reset()
}

// Stub approximates sample-rate pacing without any channel synthesis:
// it emits silence once enough CPU cycles have accrued for one sample
// period, so the audio channel/host-sink plumbing around it is
// exercised the same way it would be by a real APU.
type Stub struct {
	cpuHz      float64
	sampleHz   float64
	acc        float64
	out        chan<- float32
}

// NewStub creates a Stub that emits one float32 sample into out per
// sampleHz'th fraction of a second of CPU-cycle time, given the CPU runs
// at cpuHz cycles per second.
func NewStub(cpuHz, sampleHz float64, out chan<- float32) *Stub {
	return &Stub{cpuHz: cpuHz, sampleHz: sampleHz, out: out}
}

func (s *Stub) Step() {
	if s.out == nil || s.sampleHz <= 0 {
		return
	}
	s.acc += s.sampleHz
	for s.acc >= s.cpuHz {
		s.acc -= s.cpuHz
		select {
		case s.out <- 0:
		default:
			// Host sink is behind; drop the sample rather than block
			// the console driver.
		}
	}
}

func (s *Stub) Reset() {
	s.acc = 0
}
