package sheet

import (
	"fmt"
	"strconv"
)

// FormatVersion is the exposure-sheet document format version this package
// reads and writes.
const FormatVersion = 5

// NullCellMarker is the reserved token meaning "nothing exposed from this
// point forward". It is distinct from every valid decimal cell label.
const NullCellMarker = "SYMBOL_NULL_CELL"

// CellRef references one unique exported image within a track, or the null
// cell. Numbered cells serialize as decimal strings ("1", "2", ...).
type CellRef string

// NullCell is the sentinel cell closing an exposure.
const NullCell CellRef = NullCellMarker

// CellLabel returns the reference for the numbered cell n.
func CellLabel(n int) CellRef {
	return CellRef(strconv.Itoa(n))
}

// IsNull reports whether the reference is the null cell.
func (c CellRef) IsNull() bool {
	return c == NullCell
}

// Valid reports whether the reference is either the null marker or a
// positive decimal label.
func (c CellRef) Valid() bool {
	if c.IsNull() {
		return true
	}
	n, err := strconv.Atoi(string(c))
	return err == nil && n > 0
}

// Entry exposes one cell from a frame offset until the next entry.
type Entry struct {
	Offset int     `json:"offset"`
	Cell   CellRef `json:"cell"`
}

// Track is one layer's timeline of cell references. Entries are kept in
// strictly increasing offset order; offsets never repeat.
type Track struct {
	Name    string  `json:"name"`
	Index   int     `json:"index"`
	Entries []Entry `json:"entries"`
}

// NewTrack returns an empty track. The index is assigned when the track is
// added to a document.
func NewTrack(name string) Track {
	return Track{Name: name, Entries: []Entry{}}
}

// Append adds an entry, enforcing the offset ordering invariant.
func (t *Track) Append(offset int, cell CellRef) error {
	if offset < 0 {
		return fmt.Errorf("sheet: negative offset %d on track %q", offset, t.Name)
	}
	if n := len(t.Entries); n > 0 && offset <= t.Entries[n-1].Offset {
		return fmt.Errorf("sheet: offset %d not after %d on track %q", offset, t.Entries[n-1].Offset, t.Name)
	}
	t.Entries = append(t.Entries, Entry{Offset: offset, Cell: cell})
	return nil
}

// Terminated reports whether the track ends with a null-cell entry.
func (t *Track) Terminated() bool {
	n := len(t.Entries)
	return n > 0 && t.Entries[n-1].Cell.IsNull()
}

// Document is the in-memory exposure-sheet model. It is built incrementally
// during an export run and serialized exactly once at the end.
type Document struct {
	Version  int     `json:"version"`
	Duration int     `json:"duration"`
	Tracks   []Track `json:"tracks"`
}

// NewDocument returns an empty document covering duration frames.
func NewDocument(duration int) *Document {
	return &Document{
		Version:  FormatVersion,
		Duration: duration,
		Tracks:   []Track{},
	}
}

// AddTrack appends a completed track, assigning it the next zero-based
// index. Tracks are never reordered or removed.
func (d *Document) AddTrack(t Track) {
	t.Index = len(d.Tracks)
	d.Tracks = append(d.Tracks, t)
}
