// Package raster defines the transient pixel buffer exchanged between the
// rendering source and the export pipeline, plus the content fingerprint
// used for per-track deduplication.
package raster
