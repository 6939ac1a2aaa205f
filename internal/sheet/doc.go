// Package sheet holds the exposure-sheet document model and its serialized
// form: a versioned document with one sparse track per layer, each track an
// offset-ordered sequence of cell references ending in a null-cell stop or
// terminator.
package sheet
