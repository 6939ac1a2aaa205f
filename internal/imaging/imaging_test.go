package imaging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"xsheet/internal/raster"
	"xsheet/internal/render"
)

func gradientBuffer(w, h int) raster.Buffer {
	buf := raster.New(w, h)
	for i := 0; i < len(buf.Pix); i += raster.BytesPerPixel {
		buf.Pix[i] = byte(i)
		buf.Pix[i+1] = byte(i / 2)
		buf.Pix[i+2] = byte(255 - i%256)
		buf.Pix[i+3] = 0xff
	}
	return buf
}

func TestWriteImagePNGRoundTrip(t *testing.T) {
	buf := gradientBuffer(8, 6)
	path := filepath.Join(t.TempDir(), "cells", "Line_0001.png")

	writer := NewFileWriter()
	err := writer.WriteImage(buf, path, render.EncodeOptions{Format: render.FormatPNG, PNGCompression: 6})
	if err != nil {
		t.Fatalf("WriteImage() error: %v", err)
	}

	decoded, err := ReadImage(path)
	if err != nil {
		t.Fatalf("ReadImage() error: %v", err)
	}
	if decoded.Width != buf.Width || decoded.Height != buf.Height {
		t.Fatalf("decoded %dx%d, want %dx%d", decoded.Width, decoded.Height, buf.Width, buf.Height)
	}
	if !bytes.Equal(decoded.Pix, buf.Pix) {
		t.Error("PNG round trip altered pixel data")
	}
}

func TestWriteImageTGAHeader(t *testing.T) {
	buf := gradientBuffer(4, 2)
	path := filepath.Join(t.TempDir(), "cell.tga")

	writer := NewFileWriter()
	if err := writer.WriteImage(buf, path, render.EncodeOptions{Format: render.FormatTGA}); err != nil {
		t.Fatalf("WriteImage() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read tga: %v", err)
	}
	if len(data) != 18+4*2*raster.BytesPerPixel {
		t.Fatalf("tga is %d bytes, want %d", len(data), 18+4*2*raster.BytesPerPixel)
	}
	if data[2] != 2 {
		t.Errorf("image type = %d, want 2 (uncompressed true-color)", data[2])
	}
	if w := int(data[12]) | int(data[13])<<8; w != 4 {
		t.Errorf("width = %d, want 4", w)
	}
	if h := int(data[14]) | int(data[15])<<8; h != 2 {
		t.Errorf("height = %d, want 2", h)
	}
	if data[16] != 32 {
		t.Errorf("bpp = %d, want 32", data[16])
	}

	// First pixel is stored BGRA.
	px := data[18:22]
	if px[0] != buf.Pix[2] || px[1] != buf.Pix[1] || px[2] != buf.Pix[0] || px[3] != buf.Pix[3] {
		t.Errorf("first pixel = %v, want BGRA of %v", px, buf.Pix[:4])
	}
}

func TestWriteImageTGARejectsOversizedDimensions(t *testing.T) {
	// 65536 overflows the header's 16-bit width field.
	buf := raster.New(maxTGADimension+1, 1)
	writer := NewFileWriter()
	err := writer.WriteImage(buf, filepath.Join(t.TempDir(), "wide.tga"), render.EncodeOptions{Format: render.FormatTGA})
	if err == nil {
		t.Error("expected error for width beyond the TGA dimension limit")
	}
}

func TestWriteImageRejectsInvalidBuffer(t *testing.T) {
	writer := NewFileWriter()
	bad := raster.Buffer{Width: 2, Height: 2, Pix: []byte{0}}
	err := writer.WriteImage(bad, filepath.Join(t.TempDir(), "x.png"), render.EncodeOptions{Format: render.FormatPNG})
	if err == nil {
		t.Error("expected error for mismatched buffer")
	}
}

func TestWriteImageRejectsUnknownFormat(t *testing.T) {
	writer := NewFileWriter()
	err := writer.WriteImage(gradientBuffer(1, 1), filepath.Join(t.TempDir(), "x.bmp"), render.EncodeOptions{Format: "bmp"})
	if err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestPNGCompressionLevels(t *testing.T) {
	buf := gradientBuffer(16, 16)
	dir := t.TempDir()
	writer := NewFileWriter()

	for _, level := range []int{0, 3, 6, 9} {
		path := filepath.Join(dir, "lvl.png")
		if err := writer.WriteImage(buf, path, render.EncodeOptions{Format: render.FormatPNG, PNGCompression: level}); err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		decoded, err := ReadImage(path)
		if err != nil {
			t.Fatalf("level %d decode: %v", level, err)
		}
		if !bytes.Equal(decoded.Pix, buf.Pix) {
			t.Errorf("level %d is not lossless", level)
		}
	}
}
