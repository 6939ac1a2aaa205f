package render

import (
	"context"

	"xsheet/internal/raster"
)

// LayerKind distinguishes layers with per-frame content from layers whose
// content never changes.
type LayerKind string

const (
	LayerAnimated LayerKind = "animated"
	LayerStatic   LayerKind = "static"
)

// Layer describes one exportable layer of the host document. The export
// pipeline only reads it; the source owns it. ID is an opaque handle the
// source uses to identify the layer across calls; names may repeat.
type Layer struct {
	ID        string
	Name      string
	Kind      LayerKind
	Visible   bool
	Reference bool
}

// DocumentInfo is an immutable snapshot of the host document taken once at
// export start.
type DocumentInfo struct {
	Width         int
	Height        int
	StartFrame    int
	EndFrame      int
	PlaybackStart int
	PlaybackEnd   int
}

// Duration returns the inclusive frame count of the full clip range.
func (d DocumentInfo) Duration() int {
	return d.EndFrame - d.StartFrame + 1
}

// Positioner moves the source's current frame position. The position is a
// single shared resource on one underlying document: repositioning mutates
// it and blocks until rasterization settles, so calls across the entire
// export must be strictly serialized. The export runner is the only caller.
type Positioner interface {
	SetPosition(ctx context.Context, frame int) error
}

// Renderer rasterizes layers at the source's current position. Render and
// IsBlank consume whatever frame the last SetPosition established; callers
// must position immediately before every render and never assume the
// position persists across unrelated calls.
type Renderer interface {
	Positioner

	// Render returns the layer's pixels at the current position.
	Render(ctx context.Context, layer Layer) (raster.Buffer, error)

	// IsBlank reports whether the layer's content at the current position
	// is fully transparent. Blank keyframes are stop frames.
	IsBlank(ctx context.Context, layer Layer) (bool, error)
}

// Source is the complete host-document boundary: document metadata, layer
// enumeration, keyframe enumeration, and rendering.
type Source interface {
	Renderer

	// Info returns the document snapshot.
	Info() DocumentInfo

	// Layers returns all layers in host order.
	Layers() []Layer

	// Keyframes returns the strictly increasing frames in [start, end] at
	// which the layer's content changes.
	Keyframes(layer Layer, start, end int) ([]int, error)
}
