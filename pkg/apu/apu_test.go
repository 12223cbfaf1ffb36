package apu

import "testing"

func TestStubEmitsOneSamplePerPeriod(t *testing.T) {
	out := make(chan float32, 4)
	s := NewStub(4, 1, out) // 4 cycles/sec CPU, 1 sample/sec

	for i := 0; i < 4; i++ {
		s.Step()
	}

	select {
	case <-out:
	default:
		t.Fatalf("no sample emitted after a full sample period's worth of Steps")
	}
}

func TestStubDropsSamplesWhenSinkIsFull(t *testing.T) {
	out := make(chan float32, 1)
	s := NewStub(1, 1, out) // one sample emitted per Step

	for i := 0; i < 10; i++ {
		s.Step() // must not block even once the channel is full
	}
}

func TestStubResetClearsAccumulator(t *testing.T) {
	s := NewStub(100, 1, nil)
	s.Step()
	s.Reset()
	if s.acc != 0 {
		t.Errorf("acc = %v after Reset, want 0", s.acc)
	}
}

func TestStubNilSinkIsNoop(t *testing.T) {
	s := NewStub(4, 1, nil)
	s.Step() // must not panic
}
