package track

import "xsheet/internal/raster"

// CellCache assigns cell labels to distinct raster fingerprints within one
// track. The n-th distinct fingerprint observed receives label n. The cache
// lives exactly as long as one track build and is never shared across
// tracks: each layer's exposure sheet deduplicates independently, even when
// two layers render identical pixels.
type CellCache struct {
	labels map[raster.ID]int
	next   int
}

// NewCellCache returns an empty cache.
func NewCellCache() *CellCache {
	return &CellCache{labels: make(map[raster.ID]int)}
}

// LookupOrAssign returns the label for fp, assigning the next label in
// first-seen order when fp is new.
func (c *CellCache) LookupOrAssign(fp raster.ID) (label int, isNew bool) {
	if label, ok := c.labels[fp]; ok {
		return label, false
	}
	c.next++
	c.labels[fp] = c.next
	return c.next, true
}

// Len returns the number of distinct fingerprints seen.
func (c *CellCache) Len() int {
	return len(c.labels)
}
