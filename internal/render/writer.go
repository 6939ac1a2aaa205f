package render

import (
	"fmt"

	"xsheet/internal/raster"
)

// Format selects the on-disk image encoding for exported cells.
type Format string

const (
	// FormatPNG is lossless with an alpha channel and a configurable
	// compression level.
	FormatPNG Format = "png"
	// FormatTGA is uncompressed true-color with an alpha channel.
	FormatTGA Format = "tga"
)

// ParseFormat validates a configured image format string.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatTGA:
		return FormatTGA, nil
	default:
		return "", fmt.Errorf("render: unsupported image format %q", value)
	}
}

// Extension returns the filename extension for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// EncodeOptions carries per-format encoder settings.
type EncodeOptions struct {
	Format Format
	// PNGCompression ranges 0 (store) to 9 (smallest); ignored for TGA.
	PNGCompression int
}

// ImageWriter persists raster buffers to image files.
type ImageWriter interface {
	WriteImage(buf raster.Buffer, path string, opts EncodeOptions) error
}
