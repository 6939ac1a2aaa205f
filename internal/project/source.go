package project

import (
	"context"
	"fmt"
	"strconv"

	"xsheet/internal/imaging"
	"xsheet/internal/raster"
	"xsheet/internal/render"
)

// Source adapts a loaded Project to the render.Source boundary. Like the
// hosts it stands in for, it exposes exactly one shared current position;
// callers reposition it before every render and must not issue renders
// concurrently.
type Source struct {
	project  *Project
	position int

	// decoded caches source images by resolved path. Content holds for
	// the whole run; decoding once per unique file is enough.
	decoded map[string]raster.Buffer
}

// NewSource wraps a loaded project. The position starts at the clip start.
func NewSource(p *Project) *Source {
	return &Source{
		project:  p,
		position: p.Document.StartFrame,
		decoded:  make(map[string]raster.Buffer),
	}
}

// Info returns the document snapshot.
func (s *Source) Info() render.DocumentInfo {
	doc := s.project.Document
	info := render.DocumentInfo{
		Width:         doc.Width,
		Height:        doc.Height,
		StartFrame:    doc.StartFrame,
		EndFrame:      doc.EndFrame,
		PlaybackStart: doc.StartFrame,
		PlaybackEnd:   doc.EndFrame,
	}
	if doc.PlaybackStart != nil {
		info.PlaybackStart = *doc.PlaybackStart
	}
	if doc.PlaybackEnd != nil {
		info.PlaybackEnd = *doc.PlaybackEnd
	}
	return info
}

// Layers returns the project's layers in file order.
func (s *Source) Layers() []render.Layer {
	layers := make([]render.Layer, 0, len(s.project.Layers))
	for i := range s.project.Layers {
		src := &s.project.Layers[i]
		kind := render.LayerAnimated
		if src.Kind == "static" {
			kind = render.LayerStatic
		}
		layers = append(layers, render.Layer{
			ID:        strconv.Itoa(i),
			Name:      src.Name,
			Kind:      kind,
			Visible:   src.visible(),
			Reference: src.Reference,
		})
	}
	return layers
}

// Keyframes returns the layer's keyframe frames within [start, end].
func (s *Source) Keyframes(layer render.Layer, start, end int) ([]int, error) {
	src, err := s.layerByID(layer.ID)
	if err != nil {
		return nil, err
	}
	frames := make([]int, 0, len(src.Keyframes))
	for _, kf := range src.Keyframes {
		if kf.Frame >= start && kf.Frame <= end {
			frames = append(frames, kf.Frame)
		}
	}
	return frames, nil
}

// SetPosition moves the shared current frame position.
func (s *Source) SetPosition(_ context.Context, frame int) error {
	s.position = frame
	return nil
}

// Render rasterizes the layer at the current position: the content of the
// last keyframe at or before the position, held until the next keyframe.
func (s *Source) Render(_ context.Context, layer render.Layer) (raster.Buffer, error) {
	src, err := s.layerByID(layer.ID)
	if err != nil {
		return raster.Buffer{}, err
	}

	image := s.imageAtPosition(src)
	if image == "" {
		return raster.New(s.project.Document.Width, s.project.Document.Height), nil
	}

	buf, err := s.decode(image)
	if err != nil {
		return raster.Buffer{}, err
	}
	if buf.Width != s.project.Document.Width || buf.Height != s.project.Document.Height {
		return raster.Buffer{}, fmt.Errorf("project: image %s is %dx%d, document is %dx%d",
			image, buf.Width, buf.Height, s.project.Document.Width, s.project.Document.Height)
	}
	return buf, nil
}

// IsBlank reports whether the layer shows nothing at the current position.
func (s *Source) IsBlank(ctx context.Context, layer render.Layer) (bool, error) {
	src, err := s.layerByID(layer.ID)
	if err != nil {
		return false, err
	}
	if s.imageAtPosition(src) == "" {
		return true, nil
	}
	buf, err := s.Render(ctx, layer)
	if err != nil {
		return false, err
	}
	return buf.Blank(), nil
}

func (s *Source) layerByID(id string) (*Layer, error) {
	index, err := strconv.Atoi(id)
	if err != nil || index < 0 || index >= len(s.project.Layers) {
		return nil, fmt.Errorf("project: unknown layer id %q", id)
	}
	return &s.project.Layers[index], nil
}

// imageAtPosition returns the resolved image path the layer holds at the
// current position, or "" when nothing is exposed there.
func (s *Source) imageAtPosition(layer *Layer) string {
	if layer.Kind == "static" {
		return s.project.resolve(layer.Image)
	}
	image := ""
	found := false
	for _, kf := range layer.Keyframes {
		if kf.Frame > s.position {
			break
		}
		image = kf.Image
		found = true
	}
	if !found {
		return ""
	}
	return s.project.resolve(image)
}

func (s *Source) decode(path string) (raster.Buffer, error) {
	if buf, ok := s.decoded[path]; ok {
		return buf, nil
	}
	buf, err := imaging.ReadImage(path)
	if err != nil {
		return raster.Buffer{}, err
	}
	s.decoded[path] = buf
	return buf, nil
}
