// Package export orchestrates a full exposure-sheet export run: it selects
// eligible layers, drives one track build per animated layer through the
// shared rendering source, exports static layers as single images, and
// serializes the assembled document.
//
// The runner is the only component that decides fatal-vs-skippable and maps
// component errors to a final succeeded/failed/cancelled outcome.
package export
