package track

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"xsheet/internal/naming"
	"xsheet/internal/raster"
	"xsheet/internal/render"
	"xsheet/internal/services"
	"xsheet/internal/sheet"
)

// fakeRenderer serves per-frame content keyed by the shared current
// position, mirroring the host's single stateful cursor.
type fakeRenderer struct {
	position   int
	positioned bool
	// frames maps frame number to a pixel fill byte; a zero fill renders a
	// fully transparent (stop) frame.
	frames    map[int]byte
	renderErr map[int]error
}

func (r *fakeRenderer) SetPosition(_ context.Context, frame int) error {
	r.position = frame
	r.positioned = true
	return nil
}

func (r *fakeRenderer) Render(_ context.Context, _ render.Layer) (raster.Buffer, error) {
	if !r.positioned {
		return raster.Buffer{}, errors.New("render before SetPosition")
	}
	if err := r.renderErr[r.position]; err != nil {
		return raster.Buffer{}, err
	}
	fill := r.frames[r.position]
	buf := raster.New(2, 2)
	for i := 0; i < len(buf.Pix); i += raster.BytesPerPixel {
		buf.Pix[i] = fill
		buf.Pix[i+3] = fill
	}
	return buf, nil
}

func (r *fakeRenderer) IsBlank(ctx context.Context, layer render.Layer) (bool, error) {
	buf, err := r.Render(ctx, layer)
	if err != nil {
		return false, err
	}
	return buf.Blank(), nil
}

// memWriter records written paths instead of touching the filesystem.
type memWriter struct {
	paths []string
	err   error
}

func (w *memWriter) WriteImage(_ raster.Buffer, path string, _ render.EncodeOptions) error {
	if w.err != nil {
		return w.err
	}
	w.paths = append(w.paths, path)
	return nil
}

func newTestBuilder(renderer *fakeRenderer, writer *memWriter, duration int) *Builder {
	return NewBuilder(Params{
		Layer:      render.Layer{Name: "Line", Kind: render.LayerAnimated, Visible: true},
		TrackName:  "Line",
		TrackDir:   "out/Line",
		Scheme:     naming.DefaultScheme("png"),
		Renderer:   renderer,
		Writer:     writer,
		Encode:     render.EncodeOptions{Format: render.FormatPNG, PNGCompression: 6},
		StartFrame: 0,
		Duration:   duration,
	})
}

func entriesOf(track sheet.Track) []string {
	out := make([]string, 0, len(track.Entries))
	for _, e := range track.Entries {
		out = append(out, fmt.Sprintf("%d:%s", e.Offset, e.Cell))
	}
	return out
}

func assertEntries(t *testing.T, track sheet.Track, want []string) {
	t.Helper()
	got := entriesOf(track)
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}
}

func TestBuildDeduplicatesAndTerminates(t *testing.T) {
	// Frames 0 and 10 render identical content, frame 5 differs. Range
	// [0,10] gives duration 11, so the terminator lands at offset 11.
	renderer := &fakeRenderer{frames: map[int]byte{0: 1, 5: 2, 10: 1}}
	writer := &memWriter{}

	builder := newTestBuilder(renderer, writer, 11)
	track, stats, err := builder.Build(context.Background(), []int{0, 5, 10}, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	assertEntries(t, track, []string{"0:1", "5:2", "10:1", "11:SYMBOL_NULL_CELL"})

	if stats.Keyframes != 3 {
		t.Errorf("Keyframes = %d, want 3", stats.Keyframes)
	}
	if stats.UniqueAssets != 2 {
		t.Errorf("UniqueAssets = %d, want 2", stats.UniqueAssets)
	}
	wantPaths := []string{
		filepath.Join("out/Line", "Line_0001.png"),
		filepath.Join("out/Line", "Line_0002.png"),
	}
	if len(writer.paths) != 2 || writer.paths[0] != wantPaths[0] || writer.paths[1] != wantPaths[1] {
		t.Errorf("written paths = %v, want %v", writer.paths, wantPaths)
	}
}

func TestBuildStopFrameEndsHoldWithoutTerminator(t *testing.T) {
	renderer := &fakeRenderer{frames: map[int]byte{0: 1, 3: 0}}
	writer := &memWriter{}

	builder := newTestBuilder(renderer, writer, 24)
	track, _, err := builder.Build(context.Background(), []int{0, 3}, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	assertEntries(t, track, []string{"0:1", "3:SYMBOL_NULL_CELL"})
}

func TestBuildExposureRestartsAfterStop(t *testing.T) {
	renderer := &fakeRenderer{frames: map[int]byte{0: 1, 3: 0, 6: 2}}
	writer := &memWriter{}

	builder := newTestBuilder(renderer, writer, 12)
	track, stats, err := builder.Build(context.Background(), []int{0, 3, 6}, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	assertEntries(t, track, []string{"0:1", "3:SYMBOL_NULL_CELL", "6:2", "12:SYMBOL_NULL_CELL"})
	if stats.UniqueAssets != 2 {
		t.Errorf("UniqueAssets = %d, want 2", stats.UniqueAssets)
	}
}

func TestBuildZeroKeyframes(t *testing.T) {
	builder := newTestBuilder(&fakeRenderer{frames: map[int]byte{}}, &memWriter{}, 24)
	track, stats, err := builder.Build(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	assertEntries(t, track, []string{"0:SYMBOL_NULL_CELL"})
	if stats.Keyframes != 0 || stats.UniqueAssets != 0 {
		t.Errorf("stats = %+v, want zero work", stats)
	}
}

func TestBuildConsecutiveIdenticalFramesReuseLabel(t *testing.T) {
	renderer := &fakeRenderer{frames: map[int]byte{0: 5, 4: 5}}
	writer := &memWriter{}

	builder := newTestBuilder(renderer, writer, 10)
	track, stats, err := builder.Build(context.Background(), []int{0, 4}, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	assertEntries(t, track, []string{"0:1", "4:1", "10:SYMBOL_NULL_CELL"})
	if stats.UniqueAssets != 1 {
		t.Errorf("UniqueAssets = %d, want 1 (no re-export)", stats.UniqueAssets)
	}
	if len(writer.paths) != 1 {
		t.Errorf("wrote %d images, want 1", len(writer.paths))
	}
}

func TestBuildOffsetsRelativeToStartFrame(t *testing.T) {
	renderer := &fakeRenderer{frames: map[int]byte{100: 1, 105: 2}}
	builder := NewBuilder(Params{
		Layer:      render.Layer{Name: "Line", Kind: render.LayerAnimated, Visible: true},
		TrackName:  "Line",
		TrackDir:   "out/Line",
		Scheme:     naming.DefaultScheme("png"),
		Renderer:   renderer,
		Writer:     &memWriter{},
		Encode:     render.EncodeOptions{Format: render.FormatPNG},
		StartFrame: 100,
		Duration:   10,
	})

	track, _, err := builder.Build(context.Background(), []int{100, 105}, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	assertEntries(t, track, []string{"0:1", "5:2", "10:SYMBOL_NULL_CELL"})
}

func TestBuildRenderFailureIsFatal(t *testing.T) {
	renderer := &fakeRenderer{
		frames:    map[int]byte{0: 1},
		renderErr: map[int]error{5: errors.New("projection failed")},
	}

	builder := newTestBuilder(renderer, &memWriter{}, 11)
	_, _, err := builder.Build(context.Background(), []int{0, 5}, nil)
	if !errors.Is(err, services.ErrRender) {
		t.Fatalf("Build() error = %v, want render marker", err)
	}
}

func TestBuildWriteFailureIsFatal(t *testing.T) {
	renderer := &fakeRenderer{frames: map[int]byte{0: 1}}
	writer := &memWriter{err: errors.New("disk full")}

	builder := newTestBuilder(renderer, writer, 11)
	_, _, err := builder.Build(context.Background(), []int{0}, nil)
	if !errors.Is(err, services.ErrAssetWrite) {
		t.Fatalf("Build() error = %v, want asset write marker", err)
	}
}

func TestBuildHonorsCancellation(t *testing.T) {
	renderer := &fakeRenderer{frames: map[int]byte{0: 1, 5: 2}}
	ctx, cancel := context.WithCancel(context.Background())

	builder := newTestBuilder(renderer, &memWriter{}, 11)
	processed := 0
	_, _, err := builder.Build(ctx, []int{0, 5}, func(int) {
		processed++
		cancel()
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Build() error = %v, want context.Canceled", err)
	}
	if processed != 1 {
		t.Errorf("processed %d keyframes after cancellation, want 1", processed)
	}
}

func TestBuildCancelledBeforeTerminator(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	builder := newTestBuilder(&fakeRenderer{}, &memWriter{}, 24)
	track, _, err := builder.Build(ctx, nil, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Build() error = %v, want context.Canceled", err)
	}
	if len(track.Entries) != 0 {
		t.Errorf("cancelled build emitted entries %v, want none", entriesOf(track))
	}
}

func TestBuildReportsEachKeyframe(t *testing.T) {
	renderer := &fakeRenderer{frames: map[int]byte{0: 1, 5: 0, 10: 2}}

	builder := newTestBuilder(renderer, &memWriter{}, 11)
	var seen []int
	_, _, err := builder.Build(context.Background(), []int{0, 5, 10}, func(frame int) {
		seen = append(seen, frame)
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(seen) != 3 || seen[0] != 0 || seen[1] != 5 || seen[2] != 10 {
		t.Errorf("observed keyframes %v, want [0 5 10]", seen)
	}
}
