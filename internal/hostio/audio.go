package hostio

import (
	"fmt"

	"github.com/hajimehoshi/oto/v3"
)

// AudioSampleRate is the sample rate the APU stub and the oto context
// agree on.
const AudioSampleRate = 44100

// sampleReader adapts a float32 sample channel to the io.Reader oto/v3
// expects: little-endian 16-bit signed mono PCM.
type sampleReader struct {
	samples <-chan float32
}

func (r *sampleReader) Read(p []byte) (int, error) {
	n := 0
	for n+2 <= len(p) {
		var s float32
		select {
		case s = <-r.samples:
		default:
			s = 0
		}
		v := int16(s * 32767)
		p[n] = byte(v)
		p[n+1] = byte(v >> 8)
		n += 2
	}
	return n, nil
}

// Audio plays an APU sample stream through the host's default output
// device.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewAudio starts an oto/v3 context at AudioSampleRate and begins
// streaming samples from the given channel as they arrive.
func NewAudio(samples <-chan float32) (*Audio, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   AudioSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("oto new context: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(&sampleReader{samples: samples})
	player.Play()

	return &Audio{ctx: ctx, player: player}, nil
}

// Close stops playback.
func (a *Audio) Close() {
	a.player.Close()
}
