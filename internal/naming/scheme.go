package naming

import (
	"fmt"
	"strings"
)

// Variant selects which parts make up an exported image filename.
type Variant string

const (
	// VariantSeqOnly names files by sequence number alone: 0001.png.
	VariantSeqOnly Variant = "seq-only"
	// VariantNameSeq prefixes the layer name: Line_0001.png.
	VariantNameSeq Variant = "name-seq"
)

// sequenceDigits is the zero-padded width of cell sequence numbers. Four
// digits cover any realistic unique-cell count per track.
const sequenceDigits = 4

// Scheme describes how exported image filenames are assembled. Parts are
// joined in prefix, name, suffix, sequence order; absent parts are skipped.
type Scheme struct {
	Variant   Variant
	Prefix    string
	Suffix    string
	Separator string
	Extension string
}

// DefaultScheme matches the layer-name-plus-sequence naming the exporter
// ships with.
func DefaultScheme(extension string) Scheme {
	return Scheme{
		Variant:   VariantNameSeq,
		Separator: "_",
		Extension: extension,
	}
}

// Validate checks the scheme for recognized options.
func (s Scheme) Validate() error {
	switch s.Variant {
	case VariantSeqOnly, VariantNameSeq:
	default:
		return fmt.Errorf("naming: unknown variant %q", s.Variant)
	}
	if strings.TrimSpace(s.Extension) == "" {
		return fmt.Errorf("naming: extension must be set")
	}
	return nil
}

// Filename builds the output filename for one unique cell of a layer.
// Pure string construction; the caller supplies an already-sanitized name.
func (s Scheme) Filename(layerName string, sequence int) string {
	parts := make([]string, 0, 4)
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	if s.Variant == VariantNameSeq {
		parts = append(parts, layerName)
	}
	if s.Suffix != "" {
		parts = append(parts, s.Suffix)
	}
	parts = append(parts, FormatSequence(sequence))

	sep := s.Separator
	if sep == "" {
		sep = "_"
	}
	return strings.Join(parts, sep) + "." + strings.TrimPrefix(s.Extension, ".")
}

// FormatSequence renders a sequence number as a fixed-width zero-padded
// decimal string.
func FormatSequence(n int) string {
	return fmt.Sprintf("%0*d", sequenceDigits, n)
}
