// Package hostio wraps the host-facing presentation layer: an SDL2
// window/texture pair for video and keyboard input, and an oto/v3
// player fed from the APU's sample channel. None of this is part of
// the emulation core; it exists so cmd/run has somewhere to put pixels
// and read buttons.
package hostio

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/retrowave-systems/nescore/pkg/ppu"
)

// Display is an SDL2 window streaming a *ppu.FrameBuffer at a fixed
// integer scale.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	scale    int
}

// NewDisplay opens a window titled title, sized scale times the NES's
// native 256x240 resolution, with a streaming ARGB8888 texture it
// blits frame buffers into directly (no palette/format conversion).
func NewDisplay(title string, scale int) (*Display, error) {
	if scale <= 0 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(ppu.ScreenWidth*scale),
		int32(ppu.ScreenHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(ppu.ScreenWidth),
		int32(ppu.ScreenHeight),
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl create texture: %w", err)
	}

	return &Display{window: window, renderer: renderer, texture: texture, scale: scale}, nil
}

// Present blits frame to the window. frame is packed ARGB, row-major,
// matching sdl.PIXELFORMAT_ARGB8888 byte order on little-endian hosts.
func (d *Display) Present(frame *ppu.FrameBuffer) error {
	pitch := ppu.ScreenWidth * 4
	if err := d.texture.Update(nil, unsafe.Pointer(&frame[0]), pitch); err != nil {
		return fmt.Errorf("texture update: %w", err)
	}
	d.renderer.Clear()
	d.renderer.Copy(d.texture, nil, nil)
	d.renderer.Present()
	return nil
}

// Close tears down the window and the SDL video subsystem.
func (d *Display) Close() {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
	sdl.Quit()
}
