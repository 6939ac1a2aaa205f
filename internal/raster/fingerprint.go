package raster

import (
	"crypto/sha256"
	"encoding/hex"
)

// ID is a fixed-width content identifier for a raster buffer. Buffers with
// byte-identical pixel data always produce the same ID.
type ID [sha256.Size]byte

// Fingerprint computes the content identifier for a buffer. It is pure and
// deterministic; callers may invoke it any number of times within a run.
func Fingerprint(b Buffer) ID {
	return sha256.Sum256(b.Pix)
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}
