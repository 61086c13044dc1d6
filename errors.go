package termatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for termatlas.
var (
	// ErrFontNotFound is returned when no font matches a style specification.
	// Fatal for the regular variant; optional variants are logged and omitted.
	ErrFontNotFound = errors.New("termatlas: no font matches the requested style")

	// ErrInvalidFontSpec is returned when a style specification cannot be
	// used for matching (for example an empty family name).
	ErrInvalidFontSpec = errors.New("termatlas: invalid font specification")
)

// OverflowError is returned when the planned atlas grid cannot be addressed
// with single-byte cell coordinates.
type OverflowError struct {
	Nx, Ny int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("termatlas: atlas grid %dx%d exceeds single-byte cell addressing", e.Nx, e.Ny)
}

// SizeMismatchError is returned when an overlay or double-width variant
// resolves a fixed-strike cell size that disagrees with the primary's.
// The variant is omitted rather than silently resized.
type SizeMismatchError struct {
	Style                Style
	WantWidth, WantHeight int
	GotWidth, GotHeight   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("termatlas: %s cell size %dx%d does not match primary %dx%d",
		e.Style, e.GotWidth, e.GotHeight, e.WantWidth, e.WantHeight)
}

// PixelFormatError is returned when a rasterizer reports a bitmap in an
// encoding the blitter does not handle. This is treated as a rasterizer
// misconfiguration and aborts the build rather than skipping the glyph.
type PixelFormatError struct {
	Mode PixelMode
}

func (e *PixelFormatError) Error() string {
	return fmt.Sprintf("termatlas: unhandled pixel mode %d", e.Mode)
}

// GlyphError reports a per-codepoint load or render failure. Glyph errors
// are non-fatal: the codepoint is skipped and its atlas slot left unassigned.
type GlyphError struct {
	Rune rune
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("termatlas: glyph U+%04X: %v", e.Rune, e.Err)
}

func (e *GlyphError) Unwrap() error { return e.Err }
