// Package imaging encodes raster buffers to image files (PNG with a
// configurable compression level, uncompressed TGA) and decodes source
// frame images back into buffers.
package imaging
