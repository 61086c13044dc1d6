package termatlas

import (
	"unicode"

	"golang.org/x/text/width"
)

// WidthOracle reports how many terminal columns a codepoint occupies.
// Implementations must be consistent for the lifetime of a build: the
// filter consults the oracle in both the sizing and the blit pass.
type WidthOracle interface {
	// DisplayWidth returns 0, 1 or 2.
	DisplayWidth(r rune) int
}

// UnicodeWidth is the default WidthOracle, derived from the Unicode East
// Asian Width property via golang.org/x/text/width. Wide and fullwidth
// characters occupy two columns; combining marks and format controls occupy
// none; everything else occupies one.
type UnicodeWidth struct{}

// DisplayWidth implements WidthOracle.
func (UnicodeWidth) DisplayWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
