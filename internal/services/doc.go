// Package services defines the shared error taxonomy for the export
// pipeline.
//
// Component failures are tagged with sentinel markers (render, asset write,
// serialize, configuration, no-work) via the Wrap helper so the export
// runner, the only layer allowed to decide fatal-vs-skippable, can
// classify them into a final outcome without string matching.
package services
