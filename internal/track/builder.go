package track

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"xsheet/internal/logging"
	"xsheet/internal/naming"
	"xsheet/internal/raster"
	"xsheet/internal/render"
	"xsheet/internal/services"
	"xsheet/internal/sheet"
)

// Stats aggregates the work one track build performed.
type Stats struct {
	Keyframes    int
	UniqueAssets int
}

// Params configures a Builder for one layer.
type Params struct {
	Layer     render.Layer
	TrackName string
	// TrackDir receives this track's unique cell images.
	TrackDir   string
	Scheme     naming.Scheme
	Renderer   render.Renderer
	Writer     render.ImageWriter
	Encode     render.EncodeOptions
	StartFrame int
	Duration   int
	Logger     *slog.Logger
}

// Builder turns one layer's keyframe sequence into a sparse track,
// rendering, fingerprinting, and deduplicating as it goes. A Builder is
// created per layer with a fresh cell cache and discarded after Build.
type Builder struct {
	params Params
	cache  *CellCache
	logger *slog.Logger
}

// NewBuilder prepares a builder with a fresh deduplication cache.
func NewBuilder(params Params) *Builder {
	return &Builder{
		params: params,
		cache:  NewCellCache(),
		logger: logging.NewComponentLogger(params.Logger, "track"),
	}
}

// Build consumes keyframes in ascending order and produces the track.
// onKeyframe, when set, runs before each keyframe is processed; the runner
// uses it for progress reporting. Build checks ctx once per keyframe and
// returns ctx's error on cancellation. Render and asset-write failures are
// fatal and abort the build.
func (b *Builder) Build(ctx context.Context, keyframes []int, onKeyframe func(frame int)) (sheet.Track, Stats, error) {
	track := sheet.NewTrack(b.params.TrackName)
	var stats Stats

	lastWasStop := false
	for _, frame := range keyframes {
		if err := ctx.Err(); err != nil {
			return track, stats, err
		}
		if onKeyframe != nil {
			onKeyframe(frame)
		}
		stats.Keyframes++

		offset := frame - b.params.StartFrame

		// Position before every render; the shared position never
		// survives unrelated calls.
		if err := b.params.Renderer.SetPosition(ctx, frame); err != nil {
			return track, stats, b.fatal("position frame", frame, err)
		}

		blank, err := b.params.Renderer.IsBlank(ctx, b.params.Layer)
		if err != nil {
			return track, stats, b.fatal("check stop frame", frame, err)
		}
		if blank {
			// Stop frame: end the hold here. Later keyframes may
			// restart exposure, so iteration continues.
			if err := track.Append(offset, sheet.NullCell); err != nil {
				return track, stats, err
			}
			lastWasStop = true
			continue
		}
		lastWasStop = false

		buf, err := b.params.Renderer.Render(ctx, b.params.Layer)
		if err != nil {
			return track, stats, b.fatal("render frame", frame, err)
		}

		label, isNew := b.cache.LookupOrAssign(raster.Fingerprint(buf))
		if isNew {
			filename := b.params.Scheme.Filename(b.params.TrackName, label)
			path := filepath.Join(b.params.TrackDir, filename)
			if err := b.params.Writer.WriteImage(buf, path, b.params.Encode); err != nil {
				return track, stats, services.Wrap(services.ErrAssetWrite, "track", "write cell image",
					fmt.Sprintf("%s frame %d", b.params.TrackName, frame), err)
			}
			stats.UniqueAssets++
			b.logger.Debug("exported unique cell",
				logging.String("track", b.params.TrackName),
				logging.Int("frame", frame),
				logging.Int("cell", label),
				logging.String("file", filename),
			)
		}

		if err := track.Append(offset, sheet.CellLabel(label)); err != nil {
			return track, stats, err
		}
	}

	// The terminator is a unit of work like any keyframe; a cancelled run
	// must not close out tracks it never processed.
	if err := ctx.Err(); err != nil {
		return track, stats, err
	}

	// Every track needs a well-defined end-of-exposure signal. An explicit
	// stop already provides one; otherwise close the track at the clip
	// boundary. Tracks with no keyframes at all stop at offset zero.
	if len(track.Entries) == 0 {
		if err := track.Append(0, sheet.NullCell); err != nil {
			return track, stats, err
		}
	} else if !lastWasStop {
		if err := track.Append(b.params.Duration, sheet.NullCell); err != nil {
			return track, stats, err
		}
	}

	return track, stats, nil
}

func (b *Builder) fatal(operation string, frame int, err error) error {
	return services.Wrap(services.ErrRender, "track", operation,
		fmt.Sprintf("%s frame %d", b.params.TrackName, frame), err)
}
