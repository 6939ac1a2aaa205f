// Package render declares the boundaries between the export pipeline and
// its external collaborators: the host document source (layer enumeration,
// frame positioning, rasterization) and the image writer that persists
// exported cells.
package render
