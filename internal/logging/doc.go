// Package logging assembles the structured slog loggers used across the
// exporter.
//
// It owns the compact console handler and JSON plumbing, typed attr helpers,
// and a no-op logger for tests. Prefer these constructors over hand-rolled
// slog setup so every component emits data with the same shape.
package logging
