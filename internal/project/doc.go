// Package project loads file-backed animation documents: a TOML manifest
// describing canvas geometry, frame range, and layers whose keyframes
// reference image files on disk. A loaded project implements the
// render.Source boundary so the export pipeline can drive it like any
// other host document.
package project
