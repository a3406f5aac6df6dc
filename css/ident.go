package css

import (
	"github.com/gosimple/slug"
)

// Ident normalizes arbitrary text into a CSS-safe identifier usable as a
// class or id name. The result is lowercase ASCII with hyphens; a leading
// digit gets an underscore prefix since CSS identifiers may not start with
// one.
func Ident(s string) string {
	out := slug.Make(s)
	if out == "" {
		return "_"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}
