package termatlas

// PixelMode identifies the pixel encoding of a rasterized glyph bitmap.
type PixelMode uint8

const (
	// PixelModeMono is 1 bit per pixel, 8 pixels per byte, MSB first.
	PixelModeMono PixelMode = iota + 1

	// PixelModeGray is one 8-bit intensity value per pixel.
	PixelModeGray

	// PixelModeLCD is three bytes per pixel, a horizontal RGB triple.
	// The bitmap's raw width counts bytes-derived pixels, so the logical
	// glyph width is the raw width divided by three.
	PixelModeLCD
)

// String returns the string representation of the pixel mode.
func (m PixelMode) String() string {
	switch m {
	case PixelModeMono:
		return "Mono"
	case PixelModeGray:
		return "Gray"
	case PixelModeLCD:
		return "LCD"
	default:
		return "Unknown"
	}
}

// Bitmap is one rasterized glyph as produced by a Rasterizer.
type Bitmap struct {
	// Mode is the pixel encoding of Pix.
	Mode PixelMode

	// Pix holds the raw bitmap bytes, Height rows of Pitch bytes each.
	Pix []byte

	// Pitch is the byte increment between rows. It may exceed the bytes
	// covered by the logical width (row padding).
	Pitch int

	// Width is the raw pixel width. For PixelModeLCD this is three times
	// the logical glyph width.
	Width int

	// Height is the number of rows.
	Height int

	// Left is the horizontal offset of the bitmap's left edge relative to
	// the glyph origin. Negative values extend left of the cell origin.
	Left int

	// Top is the height of the bitmap's top edge above the baseline.
	Top int
}

// Strike is one pre-rendered bitmap size offered by a fixed-size font.
type Strike struct {
	Width, Height int
}

// FontMetrics is the sizing information a Rasterizer reports for an open
// font: the available fixed bitmap strikes, if any, and the scalable outline
// metrics in font units, if the font has outlines.
type FontMetrics struct {
	// Strikes lists the fixed bitmap sizes, empty for outline-only fonts.
	Strikes []Strike

	// UnitsPerEm is zero when the font is not scalable.
	UnitsPerEm int

	// MaxAdvanceWidth is the widest glyph advance, in font units.
	MaxAdvanceWidth int

	// Ascender is the typographic ascender, in font units.
	Ascender int

	// Height is the line height, in font units.
	Height int
}

// Scalable reports whether the font can render outlines at arbitrary sizes.
func (m FontMetrics) Scalable() bool { return m.UnitsPerEm > 0 }
