package termatlas

import (
	"fmt"
	"iter"
)

// fakeHandle is an in-memory font for tests. Glyphs default to a 2x2 gray
// block whose intensity is derived from the codepoint, so tests can tell
// which font a cell was blitted from.
type fakeHandle struct {
	runes     []rune
	glyphs    map[rune]*Bitmap
	renderErr map[rune]error
	metrics   FontMetrics
	size      int
	closed    bool
}

func (h *fakeHandle) Codepoints() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range h.runes {
			if !yield(r) {
				return
			}
		}
	}
}

func (h *fakeHandle) Metrics() (FontMetrics, error) { return h.metrics, nil }

func (h *fakeHandle) SetPixelSize(size int) error {
	h.size = size
	return nil
}

func (h *fakeHandle) Render(r rune, flags LoadFlags, mode RenderMode) (*Bitmap, error) {
	if err := h.renderErr[r]; err != nil {
		return nil, err
	}
	if b, ok := h.glyphs[r]; ok {
		return b, nil
	}
	v := byte(r&0x7F) | 1
	return &Bitmap{
		Mode:   PixelModeGray,
		Pix:    []byte{v, v, v, v},
		Pitch:  2,
		Width:  2,
		Height: 2,
	}, nil
}

func (h *fakeHandle) Close() error {
	h.closed = true
	return nil
}

// scalableMetrics is a convenient outline-only metrics block: at pixel size
// 10 it resolves a 6x13 cell with baseline 8.
func scalableMetrics() FontMetrics {
	return FontMetrics{
		UnitsPerEm:      1000,
		MaxAdvanceWidth: 600,
		Ascender:        800,
		Height:          1200,
	}
}

// fakeRasterizer maps resource paths to fake handles.
type fakeRasterizer struct {
	handles map[string]*fakeHandle
}

func (f *fakeRasterizer) Open(res Resource) (Handle, error) {
	h, ok := f.handles[res.Path]
	if !ok {
		return nil, fmt.Errorf("no fake font at %q: %w", res.Path, ErrFontNotFound)
	}
	return h, nil
}

// register installs the fake under a unique name and returns build options
// selecting it together with the path matcher.
func (f *fakeRasterizer) register(name string) Option {
	RegisterRasterizer(name, f)
	return WithRasterizer(name)
}

// fakeOracle reports configured widths, defaulting to one column.
type fakeOracle struct {
	widths map[rune]int
}

func (o fakeOracle) DisplayWidth(r rune) int {
	if w, ok := o.widths[r]; ok {
		return w
	}
	return 1
}

// grayGlyph builds a w-by-h gray bitmap filled with v.
func grayGlyph(w, h int, v byte) *Bitmap {
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = v
	}
	return &Bitmap{Mode: PixelModeGray, Pix: pix, Pitch: w, Width: w, Height: h}
}
