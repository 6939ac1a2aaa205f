package imaging

import (
	"fmt"
	"io"

	"xsheet/internal/raster"
)

// maxTGADimension is the largest width or height the TGA header's 16-bit
// dimension fields can express.
const maxTGADimension = 0xFFFF

// encodeTGA writes buf as an uncompressed 32-bit true-color TGA with an
// 8-bit alpha channel, top-left origin. The format carries no compression
// knobs; it exists for pipelines that cannot read PNG.
func encodeTGA(w io.Writer, buf raster.Buffer) error {
	if buf.Width > maxTGADimension || buf.Height > maxTGADimension {
		return fmt.Errorf("imaging: %dx%d exceeds the TGA dimension limit of %d",
			buf.Width, buf.Height, maxTGADimension)
	}

	header := [18]byte{}
	header[2] = 2 // uncompressed true-color
	header[12] = byte(buf.Width)
	header[13] = byte(buf.Width >> 8)
	header[14] = byte(buf.Height)
	header[15] = byte(buf.Height >> 8)
	header[16] = 32   // bits per pixel
	header[17] = 0x28 // top-left origin, 8 alpha bits

	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	// TGA stores pixels as BGRA.
	row := make([]byte, buf.Width*raster.BytesPerPixel)
	for y := 0; y < buf.Height; y++ {
		src := buf.Pix[y*buf.Width*raster.BytesPerPixel:]
		for x := 0; x < buf.Width; x++ {
			i := x * raster.BytesPerPixel
			row[i] = src[i+2]
			row[i+1] = src[i+1]
			row[i+2] = src[i]
			row[i+3] = src[i+3]
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
