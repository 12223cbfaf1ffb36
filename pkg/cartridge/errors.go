package cartridge

import "fmt"

// ErrUnknownMapper is returned when an iNES header names a mapper number
// this module has no implementation for.
type ErrUnknownMapper struct {
	Number uint8
}

func (e ErrUnknownMapper) Error() string {
	return fmt.Sprintf("unsupported mapper: %d", e.Number)
}

// ErrUnrecognisedFormat is returned when ROM data fails the iNES header
// checks (magic bytes, minimum size, declared bank sizes vs actual data).
type ErrUnrecognisedFormat struct {
	Reason string
}

func (e ErrUnrecognisedFormat) Error() string {
	return fmt.Sprintf("unrecognised ROM format: %s", e.Reason)
}
