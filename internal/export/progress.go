package export

// ProgressSink receives one report per unit of work (one keyframe or one
// static layer). Reports arrive between units, never mid-render.
type ProgressSink interface {
	Report(completed, total int, message string)
}

// ProgressFunc adapts a function to the ProgressSink interface.
type ProgressFunc func(completed, total int, message string)

func (f ProgressFunc) Report(completed, total int, message string) {
	f(completed, total, message)
}

type nopProgress struct{}

func (nopProgress) Report(int, int, string) {}

// NopProgress discards all reports.
var NopProgress ProgressSink = nopProgress{}
