package sheet

import (
	"encoding/json"
	"fmt"
	"os"
)

// Marshal renders the document to its persisted form. Output is
// reproducible: the same model always yields byte-identical bytes.
func (d *Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sheet: encode document: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile serializes the document to path.
func (d *Document) WriteFile(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("sheet: write %s: %w", path, err)
	}
	return nil
}

// ParseFile reads and parses a serialized document from path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a serialized document and verifies its structural
// invariants: known version, offset-sorted offset-unique entries, and valid
// cell references.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sheet: decode document: %w", err)
	}
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("sheet: unsupported format version %d, want %d", doc.Version, FormatVersion)
	}
	if doc.Duration < 0 {
		return nil, fmt.Errorf("sheet: negative duration %d", doc.Duration)
	}
	if doc.Tracks == nil {
		doc.Tracks = []Track{}
	}
	for i := range doc.Tracks {
		track := &doc.Tracks[i]
		if track.Index != i {
			return nil, fmt.Errorf("sheet: track %q has index %d, want %d", track.Name, track.Index, i)
		}
		if track.Entries == nil {
			track.Entries = []Entry{}
		}
		for j, entry := range track.Entries {
			if !entry.Cell.Valid() {
				return nil, fmt.Errorf("sheet: track %q entry %d has invalid cell %q", track.Name, j, entry.Cell)
			}
			if j > 0 && entry.Offset <= track.Entries[j-1].Offset {
				return nil, fmt.Errorf("sheet: track %q entries out of order at offset %d", track.Name, entry.Offset)
			}
		}
	}
	return &doc, nil
}
