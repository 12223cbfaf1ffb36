// Package config parses the command-line flags cmd/run accepts.
package config

import (
	"errors"
	"flag"
)

// Config holds the flag-parsed settings for one emulator run.
type Config struct {
	ROMPath string
	Scale   int
	Headless bool
}

// Parse parses args (excluding the program name) into a Config.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("nescore", flag.ContinueOnError)
	scale := fs.Int("scale", 3, "window scale factor")
	headless := fs.Bool("headless", false, "run without opening a window (for scripted frame dumps)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() < 1 {
		return Config{}, errors.New("usage: nescore [-scale N] [-headless] <rom-file>")
	}

	return Config{
		ROMPath:  fs.Arg(0),
		Scale:    *scale,
		Headless: *headless,
	}, nil
}
