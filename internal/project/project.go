package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Document describes the project's canvas and frame range.
type Document struct {
	Width         int  `toml:"width"`
	Height        int  `toml:"height"`
	StartFrame    int  `toml:"start_frame"`
	EndFrame      int  `toml:"end_frame"`
	PlaybackStart *int `toml:"playback_start"`
	PlaybackEnd   *int `toml:"playback_end"`
}

// Keyframe binds a frame number to a source image. An empty image path
// marks a blank keyframe (a stop frame).
type Keyframe struct {
	Frame int    `toml:"frame"`
	Image string `toml:"image"`
}

// Layer is one drawable layer of the project file.
type Layer struct {
	Name      string     `toml:"name"`
	Kind      string     `toml:"kind"`
	Visible   *bool      `toml:"visible"`
	Reference bool       `toml:"reference"`
	Image     string     `toml:"image"`
	Keyframes []Keyframe `toml:"keyframe"`
}

// Project is a file-backed animation document: a TOML manifest pointing at
// per-keyframe image files.
type Project struct {
	Document Document `toml:"document"`
	Layers   []Layer  `toml:"layer"`

	baseDir string
}

// Load reads and validates a project manifest. Relative image paths resolve
// against the manifest's directory.
func Load(path string) (*Project, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("project: open %s: %w", path, err)
	}
	defer file.Close()

	var p Project
	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("project: parse %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("project: resolve %s: %w", path, err)
	}
	p.baseDir = filepath.Dir(abs)

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("project: %s: %w", path, err)
	}
	return &p, nil
}

func (p *Project) validate() error {
	doc := p.Document
	if doc.Width <= 0 || doc.Height <= 0 {
		return fmt.Errorf("document dimensions %dx%d are invalid", doc.Width, doc.Height)
	}
	if doc.EndFrame < doc.StartFrame {
		return fmt.Errorf("end_frame %d precedes start_frame %d", doc.EndFrame, doc.StartFrame)
	}
	if doc.PlaybackStart != nil && doc.PlaybackEnd != nil && *doc.PlaybackEnd < *doc.PlaybackStart {
		return fmt.Errorf("playback_end %d precedes playback_start %d", *doc.PlaybackEnd, *doc.PlaybackStart)
	}

	for i := range p.Layers {
		layer := &p.Layers[i]
		switch layer.Kind {
		case "animated":
			last := doc.StartFrame - 1
			for _, kf := range layer.Keyframes {
				if kf.Frame < doc.StartFrame || kf.Frame > doc.EndFrame {
					return fmt.Errorf("layer %q keyframe %d outside range [%d, %d]",
						layer.Name, kf.Frame, doc.StartFrame, doc.EndFrame)
				}
				if kf.Frame <= last {
					return fmt.Errorf("layer %q keyframes not strictly increasing at %d", layer.Name, kf.Frame)
				}
				last = kf.Frame
			}
		case "static":
			if strings.TrimSpace(layer.Image) == "" {
				return fmt.Errorf("static layer %q has no image", layer.Name)
			}
			if len(layer.Keyframes) > 0 {
				return fmt.Errorf("static layer %q cannot carry keyframes", layer.Name)
			}
		default:
			return fmt.Errorf("layer %q has unknown kind %q", layer.Name, layer.Kind)
		}
	}
	return nil
}

func (l *Layer) visible() bool {
	return l.Visible == nil || *l.Visible
}

func (p *Project) resolve(image string) string {
	if image == "" || filepath.IsAbs(image) {
		return image
	}
	return filepath.Join(p.baseDir, image)
}
