// Package naming builds unique, filesystem-safe names for tracks and
// deterministic filenames for exported cell images.
//
// Sanitize strips characters that are unsafe in file paths and never
// returns an empty string. UniqueSet disambiguates duplicate layer names
// with numeric suffixes. Scheme assembles image filenames from the
// configured prefix/name/suffix/sequence parts.
package naming
