// Package track encodes one layer's keyframe sequence into a sparse
// exposure-sheet track, deduplicating rendered content so each distinct
// image is exported exactly once per track.
package track
