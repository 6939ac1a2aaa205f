package naming

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fallbackName substitutes for layer names that sanitize down to nothing.
const fallbackName = "layer"

// unsafeReplacer replaces filesystem-unsafe characters with safe
// alternatives. Path separators and drive markers become underscores;
// characters that carry no visual weight are removed.
var unsafeReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
	"\x00", "",
)

// Sanitize converts an arbitrary layer or document name into a string safe
// for use as a file or directory name. Unicode input is NFC-normalized so
// visually identical names map to identical output. Never returns an empty
// string.
func Sanitize(name string) string {
	name = norm.NFC.String(strings.TrimSpace(name))
	name = unsafeReplacer.Replace(name)
	name = strings.Trim(name, ". ")
	if name == "" {
		return fallbackName
	}
	return name
}
