package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"xsheet/internal/logging"
	"xsheet/internal/naming"
	"xsheet/internal/render"
	"xsheet/internal/services"
	"xsheet/internal/sheet"
	"xsheet/internal/track"
)

// SheetExtension is the filename extension of the serialized document.
const SheetExtension = ".xdts"

// Params configures a Runner.
type Params struct {
	Source   render.Source
	Writer   render.ImageWriter
	Options  Options
	Progress ProgressSink
	Logger   *slog.Logger
}

// Runner sequences a whole export: animated layers become deduplicated
// tracks, static layers become single images, and the assembled document is
// serialized once at the end. All rendering runs on the caller's goroutine
// because the source's frame position is a single shared resource.
type Runner struct {
	source   render.Source
	writer   render.ImageWriter
	opts     Options
	progress ProgressSink
	logger   *slog.Logger
}

// NewRunner validates the options and assembles a runner.
func NewRunner(params Params) (*Runner, error) {
	if params.Source == nil || params.Writer == nil {
		return nil, services.Wrap(services.ErrConfiguration, "export", "new runner",
			"source and writer are required", nil)
	}
	if err := params.Options.Validate(); err != nil {
		return nil, err
	}
	progress := params.Progress
	if progress == nil {
		progress = NopProgress
	}
	return &Runner{
		source:   params.Source,
		writer:   params.Writer,
		opts:     params.Options,
		progress: progress,
		logger:   logging.NewComponentLogger(params.Logger, "export"),
	}, nil
}

type animatedWork struct {
	layer     render.Layer
	keyframes []int
}

// Run executes the export into exportDir. The returned Result always
// carries the final outcome; the error is non-nil for failed and cancelled
// runs. Assets already written before a failure or cancellation stay on
// disk; the run performs no rollback.
func (r *Runner) Run(ctx context.Context, exportDir string) (Result, error) {
	res := Result{Outcome: OutcomeFailed}

	info := r.source.Info()
	start, end := info.StartFrame, info.EndFrame
	if !r.opts.UseFullClipRange {
		start, end = info.PlaybackStart, info.PlaybackEnd
	}
	duration := end - start + 1

	animated, static := r.eligibleLayers()
	if len(animated) == 0 && len(static) == 0 {
		res.Message = "no exportable layers found"
		return res, services.Wrap(services.ErrNoWork, "export", "select layers", res.Message, nil)
	}

	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		res.Message = err.Error()
		return res, services.Wrap(services.ErrConfiguration, "export", "create export directory", exportDir, err)
	}
	lock, err := acquireLock(exportDir)
	if err != nil {
		res.Message = err.Error()
		return res, services.Wrap(services.ErrConfiguration, "export", "lock export directory", "", err)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			r.logger.Warn("failed to release export lock", logging.Error(unlockErr))
		}
	}()

	work := make([]animatedWork, 0, len(animated))
	total := len(static)
	for _, layer := range animated {
		keyframes, err := r.source.Keyframes(layer, start, end)
		if err != nil {
			res.Message = err.Error()
			return res, services.Wrap(services.ErrRender, "export", "enumerate keyframes", layer.Name, err)
		}
		work = append(work, animatedWork{layer: layer, keyframes: keyframes})
		total += len(keyframes)
	}

	r.logger.Info("starting export",
		logging.String("dir", exportDir),
		logging.Int("animated_layers", len(animated)),
		logging.Int("static_layers", len(static)),
		logging.Int("duration", duration),
		logging.Int("total_units", total),
	)

	doc := sheet.NewDocument(duration)
	names := naming.NewUniqueSet()
	processed := 0

	for _, item := range work {
		name := names.Claim(naming.Sanitize(item.layer.Name))
		trackDir := filepath.Join(exportDir, name)
		if err := os.MkdirAll(trackDir, 0o755); err != nil {
			res.Message = err.Error()
			return res, services.Wrap(services.ErrAssetWrite, "export", "create track directory", trackDir, err)
		}

		builder := track.NewBuilder(track.Params{
			Layer:      item.layer,
			TrackName:  name,
			TrackDir:   trackDir,
			Scheme:     r.opts.Scheme,
			Renderer:   r.source,
			Writer:     r.writer,
			Encode:     r.opts.Encode,
			StartFrame: start,
			Duration:   duration,
			Logger:     r.logger,
		})

		built, stats, err := builder.Build(ctx, item.keyframes, func(frame int) {
			processed++
			r.progress.Report(processed, total, fmt.Sprintf("Exporting %s - frame %d", name, frame))
		})
		if err != nil {
			return r.abort(res, err)
		}

		doc.AddTrack(built)
		res.TrackCount++
		res.KeyframeCount += stats.Keyframes
		res.UniqueAssets += stats.UniqueAssets
	}

	for _, layer := range static {
		if err := ctx.Err(); err != nil {
			return r.abort(res, err)
		}
		name := names.Claim(naming.Sanitize(layer.Name))
		processed++
		r.progress.Report(processed, total, fmt.Sprintf("Exporting static layer %s", name))

		if err := r.exportStatic(ctx, layer, name, exportDir, start); err != nil {
			// Non-fatal: report and continue with remaining layers.
			r.logger.Warn("static layer export failed",
				logging.String("layer", name),
				logging.Error(err),
			)
			res.StaticSkipped = append(res.StaticSkipped, name)
			continue
		}
		res.StaticCount++
	}

	sheetPath := filepath.Join(exportDir, naming.Sanitize(r.opts.ExportName)+SheetExtension)
	if err := doc.WriteFile(sheetPath); err != nil {
		res.Message = err.Error()
		return res, services.Wrap(services.ErrSerialize, "export", "write sheet document", sheetPath, err)
	}

	res.SheetPath = sheetPath
	res.Outcome = OutcomeSucceeded
	res.Message = res.Summary()

	r.logger.Info("export finished",
		logging.String("sheet", sheetPath),
		logging.Int("tracks", res.TrackCount),
		logging.Int("keyframes", res.KeyframeCount),
		logging.Int("unique_assets", res.UniqueAssets),
		logging.Int("static_exported", res.StaticCount),
	)
	return res, nil
}

func (r *Runner) abort(res Result, err error) (Result, error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		res.Outcome = OutcomeCancelled
		res.Message = "export cancelled by user"
		return res, err
	}
	res.Outcome = OutcomeFailed
	res.Message = err.Error()
	return res, err
}

func (r *Runner) exportStatic(ctx context.Context, layer render.Layer, name, exportDir string, frame int) error {
	if err := r.source.SetPosition(ctx, frame); err != nil {
		return err
	}
	buf, err := r.source.Render(ctx, layer)
	if err != nil {
		return err
	}
	path := filepath.Join(exportDir, name+"."+r.opts.Encode.Format.Extension())
	return r.writer.WriteImage(buf, path, r.opts.Encode)
}

// eligibleLayers filters the source's layers by the configured visibility,
// reference, and static rules, preserving input order.
func (r *Runner) eligibleLayers() (animated, static []render.Layer) {
	for _, layer := range r.source.Layers() {
		if !layer.Visible && !r.opts.IncludeInvisible {
			continue
		}
		if layer.Reference && !r.opts.IncludeReference {
			continue
		}
		switch layer.Kind {
		case render.LayerAnimated:
			animated = append(animated, layer)
		case render.LayerStatic:
			if r.opts.IncludeStatic {
				static = append(static, layer)
			}
		}
	}
	return animated, static
}
