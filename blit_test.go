package termatlas

import (
	"errors"
	"testing"
)

// testAtlas allocates a 2x2 grid of 8x4 cells with the fourth byte of every
// pixel prefilled, so tests can verify the blitter never touches it.
func testAtlas(baseline int) *Atlas {
	a := newAtlas(Geometry{Nx: 2, Ny: 2}, Cell{Width: 8, Height: 4, Baseline: baseline})
	for i := 3; i < len(a.buf); i += 4 {
		a.buf[i] = 0xAA
	}
	return a
}

// pixel returns the RGB channels of the pixel at (x, y) within the cell at
// pos, plus the fourth byte.
func pixel(a *Atlas, pos Position, x, y int) [4]byte {
	rowStride := bytesPerPixel * a.geom.Nx * a.cell.Width
	off := int(pos.Row)*rowStride*a.cell.Height + bytesPerPixel*int(pos.Col)*a.cell.Width +
		rowStride*y + bytesPerPixel*x
	return [4]byte{a.buf[off], a.buf[off+1], a.buf[off+2], a.buf[off+3]}
}

func TestBlit_Mono(t *testing.T) {
	a := testAtlas(0)
	bmp := &Bitmap{
		Mode:   PixelModeMono,
		Pix:    []byte{0b10000000},
		Pitch:  1,
		Width:  8,
		Height: 1,
	}
	if err := a.blit(bmp, Position{Col: 1, Row: 0}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}

	got := pixel(a, Position{Col: 1}, 0, 0)
	if got != [4]byte{0xFF, 0xFF, 0xFF, 0xAA} {
		t.Errorf("pixel(0,0) = %v, want FF FF FF AA", got)
	}
	for x := 1; x < 8; x++ {
		got := pixel(a, Position{Col: 1}, x, 0)
		if got != [4]byte{0, 0, 0, 0xAA} {
			t.Errorf("pixel(%d,0) = %v, want 00 00 00 AA", x, got)
		}
	}
}

func TestBlit_MonoMSBFirst(t *testing.T) {
	a := testAtlas(0)
	// Two source bytes: bits spell 10100000 01000000.
	bmp := &Bitmap{
		Mode:   PixelModeMono,
		Pix:    []byte{0b10100000, 0b01000000},
		Pitch:  2,
		Width:  10,
		Height: 1,
	}
	if err := a.blit(bmp, Position{}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}
	want := []byte{0xFF, 0, 0xFF, 0, 0, 0, 0, 0} // clipped to cell width 8
	for x, w := range want {
		if got := pixel(a, Position{}, x, 0); got[0] != w {
			t.Errorf("pixel(%d,0) = %#x, want %#x", x, got[0], w)
		}
	}
}

func TestBlit_Gray(t *testing.T) {
	a := testAtlas(0)
	bmp := &Bitmap{
		Mode:   PixelModeGray,
		Pix:    []byte{0x80, 0x20},
		Pitch:  2,
		Width:  2,
		Height: 1,
	}
	if err := a.blit(bmp, Position{}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}
	if got := pixel(a, Position{}, 0, 0); got != [4]byte{0x80, 0x80, 0x80, 0xAA} {
		t.Errorf("pixel(0,0) = %v, want 80 80 80 AA", got)
	}
	if got := pixel(a, Position{}, 1, 0); got != [4]byte{0x20, 0x20, 0x20, 0xAA} {
		t.Errorf("pixel(1,0) = %v, want 20 20 20 AA", got)
	}
}

func TestBlit_GrayPitchPadding(t *testing.T) {
	a := testAtlas(0)
	// Logical width 2, pitch 4: the padding bytes must not leak into row 2.
	bmp := &Bitmap{
		Mode:   PixelModeGray,
		Pix:    []byte{1, 2, 0xEE, 0xEE, 3, 4, 0xEE, 0xEE},
		Pitch:  4,
		Width:  2,
		Height: 2,
	}
	if err := a.blit(bmp, Position{}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}
	if got := pixel(a, Position{}, 0, 1); got[0] != 3 {
		t.Errorf("pixel(0,1) = %#x, want 0x03", got[0])
	}
	if got := pixel(a, Position{}, 1, 1); got[0] != 4 {
		t.Errorf("pixel(1,1) = %#x, want 0x04", got[0])
	}
	if got := pixel(a, Position{}, 2, 0); got[0] != 0 {
		t.Errorf("pixel(2,0) = %#x, want 0 (padding must not be copied)", got[0])
	}
}

func TestBlit_LCD(t *testing.T) {
	a := testAtlas(0)
	bmp := &Bitmap{
		Mode:   PixelModeLCD,
		Pix:    []byte{1, 2, 3, 4, 5, 6},
		Pitch:  6,
		Width:  6, // logical width 2
		Height: 1,
	}
	if err := a.blit(bmp, Position{}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}
	if got := pixel(a, Position{}, 0, 0); got != [4]byte{1, 2, 3, 0xAA} {
		t.Errorf("pixel(0,0) = %v, want 1 2 3 AA", got)
	}
	if got := pixel(a, Position{}, 1, 0); got != [4]byte{4, 5, 6, 0xAA} {
		t.Errorf("pixel(1,0) = %v, want 4 5 6 AA", got)
	}
	if got := pixel(a, Position{}, 2, 0); got[0] != 0 {
		t.Errorf("pixel(2,0) = %#x, want 0 (logical width is raw/3)", got[0])
	}
}

func TestBlit_NegativeLeftSkipsColumns(t *testing.T) {
	a := testAtlas(0)
	bmp := &Bitmap{
		Mode:   PixelModeGray,
		Pix:    []byte{1, 2, 3, 4, 5},
		Pitch:  5,
		Width:  5,
		Height: 1,
		Left:   -2,
	}
	if err := a.blit(bmp, Position{}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}
	for x, want := range []byte{3, 4, 5, 0} {
		if got := pixel(a, Position{}, x, 0); got[0] != want {
			t.Errorf("pixel(%d,0) = %#x, want %#x", x, got[0], want)
		}
	}
}

func TestBlit_MonoNegativeLeftSkipsBits(t *testing.T) {
	a := testAtlas(0)
	bmp := &Bitmap{
		Mode:   PixelModeMono,
		Pix:    []byte{0b10100000, 0b01000000},
		Pitch:  1,
		Width:  8,
		Height: 2,
		Left:   -1,
	}
	if err := a.blit(bmp, Position{}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}
	// One source column is skipped per row, at bit granularity: row 0
	// becomes 0100000 and row 1 becomes 1000000.
	for x, want := range []byte{0, 0xFF, 0, 0, 0, 0, 0} {
		if got := pixel(a, Position{}, x, 0); got[0] != want {
			t.Errorf("pixel(%d,0) = %#x, want %#x", x, got[0], want)
		}
	}
	if got := pixel(a, Position{}, 0, 1); got[0] != 0xFF {
		t.Errorf("pixel(0,1) = %#x, want 0xFF", got[0])
	}
	if got := pixel(a, Position{}, 1, 1); got[0] != 0 {
		t.Errorf("pixel(1,1) = %#x, want 0", got[0])
	}
}

func TestBlit_MonoSkipCrossesByteBoundary(t *testing.T) {
	a := testAtlas(0)
	bmp := &Bitmap{
		Mode:   PixelModeMono,
		Pix:    []byte{0b00000011, 0b10110000},
		Pitch:  2,
		Width:  12,
		Height: 1,
		Left:   -6,
	}
	if err := a.blit(bmp, Position{}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}
	// Columns 6..11 of the source: the last two bits of byte 0 followed by
	// the first four bits of byte 1.
	for x, want := range []byte{0xFF, 0xFF, 0xFF, 0, 0xFF, 0xFF, 0, 0} {
		if got := pixel(a, Position{}, x, 0); got[0] != want {
			t.Errorf("pixel(%d,0) = %#x, want %#x", x, got[0], want)
		}
	}
}

func TestBlit_FullyOffCellWritesNothing(t *testing.T) {
	// Left bearings beyond the bitmap width clamp the copy width to zero;
	// the blit must bail out without touching the source rows at all.
	bitmaps := []*Bitmap{
		{Mode: PixelModeGray, Pix: []byte{1, 2, 3, 4}, Pitch: 2, Width: 2, Height: 2, Left: -5},
		{Mode: PixelModeMono, Pix: []byte{0xFF, 0xFF}, Pitch: 1, Width: 8, Height: 2, Left: -9},
		{Mode: PixelModeLCD, Pix: []byte{1, 2, 3}, Pitch: 3, Width: 3, Height: 1, Left: -4},
		{Mode: PixelModeGray}, // empty bitmap, as rendered for a space
	}
	for _, bmp := range bitmaps {
		a := testAtlas(0)
		if err := a.blit(bmp, Position{}, false); err != nil {
			t.Fatalf("blit(%v, Left %d): %v", bmp.Mode, bmp.Left, err)
		}
		for x := 0; x < 8; x++ {
			for y := 0; y < 4; y++ {
				if got := pixel(a, Position{}, x, y); got[0] != 0 {
					t.Fatalf("blit(%v, Left %d) wrote pixel(%d,%d) = %#x",
						bmp.Mode, bmp.Left, x, y, got[0])
				}
			}
		}
	}
}

func TestBlit_PositiveLeftOffsets(t *testing.T) {
	a := testAtlas(0)
	bmp := &Bitmap{
		Mode:   PixelModeGray,
		Pix:    []byte{9},
		Pitch:  1,
		Width:  1,
		Height: 1,
		Left:   3,
	}
	if err := a.blit(bmp, Position{}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}
	if got := pixel(a, Position{}, 3, 0); got[0] != 9 {
		t.Errorf("pixel(3,0) = %#x, want 9", got[0])
	}
	if got := pixel(a, Position{}, 0, 0); got[0] != 0 {
		t.Errorf("pixel(0,0) = %#x, want 0", got[0])
	}
}

func TestBlit_BaselineAlignment(t *testing.T) {
	a := testAtlas(3)
	bmp := &Bitmap{
		Mode:   PixelModeGray,
		Pix:    []byte{7},
		Pitch:  1,
		Width:  1,
		Height: 1,
		Top:    1,
	}
	if err := a.blit(bmp, Position{}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}
	// baseline 3, top 1: glyph lands two rows down.
	if got := pixel(a, Position{}, 0, 2); got[0] != 7 {
		t.Errorf("pixel(0,2) = %#x, want 7", got[0])
	}
	if got := pixel(a, Position{}, 0, 0); got[0] != 0 {
		t.Errorf("pixel(0,0) = %#x, want 0", got[0])
	}
}

func TestBlit_ClipsToCell(t *testing.T) {
	a := testAtlas(0)
	bmp := grayGlyph(12, 9, 0x55) // larger than the 8x4 cell
	if err := a.blit(bmp, Position{}, false); err != nil {
		t.Fatalf("blit: %v", err)
	}
	// Neighboring cell (1,0) must stay untouched.
	if got := pixel(a, Position{Col: 1}, 0, 0); got[0] != 0 {
		t.Errorf("neighbor pixel = %#x, want 0", got[0])
	}
	// Cell row below (0,1) must stay untouched.
	if got := pixel(a, Position{Row: 1}, 0, 0); got[0] != 0 {
		t.Errorf("cell below pixel = %#x, want 0", got[0])
	}
}

func TestBlit_OverlayStalePixels(t *testing.T) {
	a := testAtlas(0)
	pos := Position{Col: 1, Row: 1}
	if err := a.blit(grayGlyph(4, 3, 0x11), pos, false); err != nil {
		t.Fatalf("first blit: %v", err)
	}
	// Patch with a smaller glyph: only its own 2x1 box is cleared first.
	if err := a.blit(grayGlyph(2, 1, 0xFF), pos, true); err != nil {
		t.Fatalf("overlay blit: %v", err)
	}

	if got := pixel(a, pos, 0, 0); got[0] != 0xFF {
		t.Errorf("pixel(0,0) = %#x, want FF (patched)", got[0])
	}
	if got := pixel(a, pos, 1, 0); got[0] != 0xFF {
		t.Errorf("pixel(1,0) = %#x, want FF (patched)", got[0])
	}
	// Pixels of the old glyph outside the new bounding box survive the
	// patch. This mirrors the documented latent artifact.
	if got := pixel(a, pos, 2, 0); got[0] != 0x11 {
		t.Errorf("pixel(2,0) = %#x, want 11 (stale pixel preserved)", got[0])
	}
	if got := pixel(a, pos, 0, 1); got[0] != 0x11 {
		t.Errorf("pixel(0,1) = %#x, want 11 (stale pixel preserved)", got[0])
	}
}

func TestBlit_UnsupportedPixelFormat(t *testing.T) {
	a := testAtlas(0)
	bmp := &Bitmap{Mode: PixelMode(200), Pix: []byte{1}, Pitch: 1, Width: 1, Height: 1}
	err := a.blit(bmp, Position{}, false)
	var pfe *PixelFormatError
	if !errors.As(err, &pfe) {
		t.Fatalf("blit err = %v, want *PixelFormatError", err)
	}
	if pfe.Mode != PixelMode(200) {
		t.Errorf("PixelFormatError.Mode = %d, want 200", pfe.Mode)
	}
}
