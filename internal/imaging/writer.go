package imaging

import (
	"fmt"
	"os"
	"path/filepath"

	"xsheet/internal/raster"
	"xsheet/internal/render"
)

// FileWriter persists raster buffers as image files on the local
// filesystem. It implements render.ImageWriter.
type FileWriter struct{}

// NewFileWriter returns a writer for local files.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// WriteImage encodes buf in the requested format and writes it to path,
// creating parent directories as needed.
func (w *FileWriter) WriteImage(buf raster.Buffer, path string, opts render.EncodeOptions) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("imaging: create directory %q: %w", dir, err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imaging: create %s: %w", path, err)
	}
	defer out.Close()

	switch opts.Format {
	case render.FormatPNG:
		err = encodePNG(out, buf, opts.PNGCompression)
	case render.FormatTGA:
		err = encodeTGA(out, buf)
	default:
		err = fmt.Errorf("imaging: unsupported format %q", opts.Format)
	}
	if err != nil {
		return fmt.Errorf("imaging: encode %s: %w", path, err)
	}
	return out.Close()
}
