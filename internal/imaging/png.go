package imaging

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"xsheet/internal/raster"
)

// encodePNG writes buf as a non-interlaced PNG with an alpha channel.
// level follows the 0 (store) to 9 (smallest) convention and is mapped onto
// the encoder's coarser compression settings.
func encodePNG(w io.Writer, buf raster.Buffer, level int) error {
	img := &image.NRGBA{
		Pix:    buf.Pix,
		Stride: buf.Width * raster.BytesPerPixel,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
	encoder := png.Encoder{CompressionLevel: pngCompressionLevel(level)}
	return encoder.Encode(w, img)
}

func pngCompressionLevel(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// ReadImage decodes an image file into a raster buffer. Any format the
// stdlib decoder registry knows is accepted; pixels are converted to
// straight-alpha RGBA.
func ReadImage(path string) (raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return raster.Buffer{}, fmt.Errorf("imaging: open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return raster.Buffer{}, fmt.Errorf("imaging: decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	buf := raster.New(bounds.Dx(), bounds.Dy())
	dst := &image.NRGBA{
		Pix:    buf.Pix,
		Stride: buf.Width * raster.BytesPerPixel,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
	draw.Draw(dst, dst.Rect, src, bounds.Min, draw.Src)
	return buf, nil
}
