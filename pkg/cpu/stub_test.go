package cpu

import "testing"

func TestStubStepReturnsFixedCycles(t *testing.T) {
	s := NewStub(6)
	cycles, err := s.Step()
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if cycles != 6 {
		t.Errorf("Step() cycles = %d, want 6", cycles)
	}
}

func TestStubZeroCyclesDefaultsToOne(t *testing.T) {
	s := NewStub(0)
	cycles, _ := s.Step()
	if cycles != 1 {
		t.Errorf("NewStub(0).Step() cycles = %d, want 1", cycles)
	}
}

func TestStubNMIPendingClearedByStep(t *testing.T) {
	s := NewStub(1)
	s.SetNMI()
	if !s.NMIPending() {
		t.Fatalf("NMIPending() = false after SetNMI")
	}
	s.Step()
	if s.NMIPending() {
		t.Errorf("NMIPending() = true after Step, want cleared")
	}
}

func TestStubResetCount(t *testing.T) {
	s := NewStub(1)
	s.Reset()
	s.Reset()
	if got := s.ResetCount(); got != 2 {
		t.Errorf("ResetCount() = %d, want 2", got)
	}
}
