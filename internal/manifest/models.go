package manifest

import "time"

// Run statuses recorded in the manifest. "running" marks a run that started
// but never reported a final outcome, usually a crashed process.
const (
	OutcomeRunning   = "running"
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
)

// Run is one export run's manifest row.
type Run struct {
	ID            string
	ProjectPath   string
	ExportDir     string
	Outcome       string
	SheetPath     string
	TrackCount    int
	KeyframeCount int
	UniqueAssets  int
	StaticCount   int
	Message       string
	StartedAt     time.Time
	FinishedAt    *time.Time
}

// Finished reports whether the run recorded a final outcome.
func (r Run) Finished() bool {
	return r.FinishedAt != nil
}

// RunUpdate carries the final figures written when a run completes.
type RunUpdate struct {
	Outcome       string
	SheetPath     string
	TrackCount    int
	KeyframeCount int
	UniqueAssets  int
	StaticCount   int
	Message       string
}
