package raster

import "fmt"

// BytesPerPixel is the size of one pixel in a Buffer (8-bit RGBA).
const BytesPerPixel = 4

// Buffer holds one rendered frame as raw 8-bit RGBA pixels in row-major
// order. Buffers are transient: they exist only long enough to be
// fingerprinted and optionally encoded to disk.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// New allocates a fully transparent buffer of the given dimensions.
func New(width, height int) Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}
}

// Validate reports whether the pixel slice matches the declared geometry.
func (b Buffer) Validate() error {
	expected := b.Width * b.Height * BytesPerPixel
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("raster: negative dimensions %dx%d", b.Width, b.Height)
	}
	if len(b.Pix) != expected {
		return fmt.Errorf("raster: pixel data is %d bytes, want %d for %dx%d", len(b.Pix), expected, b.Width, b.Height)
	}
	return nil
}

// Empty reports whether the buffer carries no pixel data at all.
func (b Buffer) Empty() bool {
	return len(b.Pix) == 0
}

// Blank reports whether every pixel is fully transparent. A blank rendered
// keyframe marks a stop frame on its track.
func (b Buffer) Blank() bool {
	for i := 3; i < len(b.Pix); i += BytesPerPixel {
		if b.Pix[i] != 0 {
			return false
		}
	}
	return true
}
