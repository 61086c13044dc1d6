package termatlas

import "unicode"

const (
	// MissingGlyphMarker is the internal codepoint a terminal substitutes
	// for characters the font cannot display. It always gets an atlas cell.
	// U+FFFF is a Unicode noncharacter and can never collide with text.
	MissingGlyphMarker rune = 0xFFFF

	// maxBMP is the highest codepoint the atlas can hold. Cell positions
	// are looked up with 16-bit keys downstream, so the atlas is restricted
	// to the Basic Multilingual Plane.
	maxBMP rune = 0xFFFF
)

// codepointFilter decides whether a codepoint gets an atlas cell.
//
// The exact same predicate sizes the atlas and selects glyphs during the
// blit pass; keeping it in one place guarantees the reserved slot count
// matches the number of cells actually claimed.
type codepointFilter struct {
	oracle      WidthOracle
	doubleWidth bool
}

// loadable reports whether r must be given a cell in this variant's atlas.
// The two sentinel codepoints are always loadable; otherwise a double-width
// variant takes exactly the two-column characters and every other variant
// takes the rest. Codepoints beyond the BMP are never loadable.
func (f codepointFilter) loadable(r rune) bool {
	if r > maxBMP {
		return false
	}
	if r == MissingGlyphMarker || r == unicode.ReplacementChar {
		return true
	}
	if f.doubleWidth {
		return f.oracle.DisplayWidth(r) == 2
	}
	return f.oracle.DisplayWidth(r) < 2
}
