package export

import "fmt"

// Outcome is the final classification of an export run.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeCancelled Outcome = "cancelled"
)

// Result carries everything a caller needs to report success, partial
// success (static-layer skips), or the specific failure reason.
type Result struct {
	Outcome       Outcome
	SheetPath     string
	TrackCount    int
	KeyframeCount int
	UniqueAssets  int
	StaticCount   int
	StaticSkipped []string
	Message       string
}

// Succeeded reports whether the run completed, including runs with
// non-fatal static-layer skips.
func (r Result) Succeeded() bool {
	return r.Outcome == OutcomeSucceeded
}

// Summary renders a one-line human-readable outcome.
func (r Result) Summary() string {
	switch r.Outcome {
	case OutcomeSucceeded:
		summary := fmt.Sprintf("Export complete: %d tracks, %d unique frames",
			r.TrackCount, r.UniqueAssets+r.StaticCount)
		if len(r.StaticSkipped) > 0 {
			summary += fmt.Sprintf(" (%d static layers skipped)", len(r.StaticSkipped))
		}
		return summary
	case OutcomeCancelled:
		return "Export cancelled by user"
	default:
		return "Export failed: " + r.Message
	}
}
