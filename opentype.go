package termatlas

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OpenTypeRasterizer is the default Rasterizer backend, built on
// golang.org/x/image/font/opentype. It renders outline fonts to grayscale
// masks; monochrome and LCD render modes are derived from the grayscale
// rendering (thresholding and channel replication respectively). It does
// not read embedded bitmap strikes, so Metrics always reports the font as
// scalable.
type OpenTypeRasterizer struct{}

// Open implements Rasterizer.
func (OpenTypeRasterizer) Open(res Resource) (Handle, error) {
	data := res.Data
	if len(data) == 0 {
		if res.Path == "" {
			return nil, fmt.Errorf("termatlas: resource %q has neither data nor path: %w",
				res.Family, ErrFontNotFound)
		}
		b, err := os.ReadFile(res.Path)
		if err != nil {
			return nil, fmt.Errorf("termatlas: reading font file: %w", err)
		}
		data = b
	}

	var f *opentype.Font
	if res.Index > 0 {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("termatlas: parsing font collection: %w", err)
		}
		f, err = coll.Font(res.Index)
		if err != nil {
			return nil, fmt.Errorf("termatlas: face %d of collection: %w", res.Index, err)
		}
	} else {
		var err error
		f, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("termatlas: parsing font: %w", err)
		}
	}
	return &opentypeHandle{font: f}, nil
}

// opentypeHandle is an open font for OpenTypeRasterizer.
type opentypeHandle struct {
	font *opentype.Font
	buf  sfnt.Buffer

	size        int
	face        font.Face
	faceHinting font.Hinting

	metrics *FontMetrics
}

// Codepoints implements Handle. Coverage is scanned over the Basic
// Multilingual Plane; the atlas never loads beyond it, so the scan doubles
// as the coverage table.
func (h *opentypeHandle) Codepoints() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for r := rune(1); r <= 0xFFFF; r++ {
			if r >= 0xD800 && r <= 0xDFFF {
				continue // surrogates
			}
			gi, err := h.font.GlyphIndex(&h.buf, r)
			if err != nil || gi == 0 {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Metrics implements Handle. Values are reported in font units by querying
// sfnt at upem scale. sfnt does not expose hhea's maximum advance, so the
// widest advance across the BMP coverage stands in for it; the scan runs
// once per handle.
func (h *opentypeHandle) Metrics() (FontMetrics, error) {
	if h.metrics != nil {
		return *h.metrics, nil
	}
	upem := int(h.font.UnitsPerEm())
	if upem == 0 {
		return FontMetrics{}, errors.New("termatlas: font reports zero units per em")
	}
	scale := fixed.I(upem)
	m, err := h.font.Metrics(&h.buf, scale, font.HintingNone)
	if err != nil {
		return FontMetrics{}, fmt.Errorf("termatlas: reading font metrics: %w", err)
	}
	fm := FontMetrics{
		UnitsPerEm: upem,
		Ascender:   m.Ascent.Round(),
		Height:     m.Height.Round(),
	}

	var maxAdv fixed.Int26_6
	for r := range h.Codepoints() {
		gi, err := h.font.GlyphIndex(&h.buf, r)
		if err != nil || gi == 0 {
			continue
		}
		adv, err := h.font.GlyphAdvance(&h.buf, gi, scale, font.HintingNone)
		if err == nil && adv > maxAdv {
			maxAdv = adv
		}
	}
	fm.MaxAdvanceWidth = maxAdv.Round()
	if fm.MaxAdvanceWidth == 0 {
		fm.MaxAdvanceWidth = upem / 2
	}

	h.metrics = &fm
	return fm, nil
}

// SetPixelSize implements Handle.
func (h *opentypeHandle) SetPixelSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("termatlas: pixel size must be positive, got %d", size)
	}
	h.size = size
	h.face = nil
	return nil
}

// Render implements Handle.
func (h *opentypeHandle) Render(r rune, flags LoadFlags, mode RenderMode) (*Bitmap, error) {
	if h.size <= 0 {
		return nil, errors.New("termatlas: pixel size not set before Render")
	}

	hinting := font.HintingFull
	if flags&LoadNoHinting != 0 {
		hinting = font.HintingNone
	}
	if h.face == nil || h.faceHinting != hinting {
		face, err := opentype.NewFace(h.font, &opentype.FaceOptions{
			Size:    float64(h.size),
			DPI:     72, // size in points == size in pixels
			Hinting: hinting,
		})
		if err != nil {
			return nil, fmt.Errorf("termatlas: creating face: %w", err)
		}
		h.face = face
		h.faceHinting = hinting
	}

	dr, maskImg, maskp, _, ok := h.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, &GlyphError{Rune: r, Err: errors.New("no glyph in face")}
	}
	mask, ok := maskImg.(*image.Alpha)
	if !ok {
		return nil, &GlyphError{Rune: r, Err: errors.New("mask is not an alpha image")}
	}

	w, ht := dr.Dx(), dr.Dy()
	pix := make([]byte, w*ht)
	for j := 0; j < ht; j++ {
		src := mask.Pix[(maskp.Y+j)*mask.Stride+maskp.X:]
		copy(pix[j*w:(j+1)*w], src[:w])
	}
	bmp := &Bitmap{
		Mode:   PixelModeGray,
		Pix:    pix,
		Pitch:  w,
		Width:  w,
		Height: ht,
		Left:   dr.Min.X,
		Top:    -dr.Min.Y,
	}
	switch mode {
	case RenderModeMono:
		return monoBitmap(bmp), nil
	case RenderModeLCD:
		return lcdBitmap(bmp), nil
	}
	return bmp, nil
}

// Close implements Handle.
func (h *opentypeHandle) Close() error {
	if h.face != nil {
		err := h.face.Close()
		h.face = nil
		return err
	}
	return nil
}

// monoBitmap thresholds a grayscale bitmap into 1-bit packed rows.
func monoBitmap(g *Bitmap) *Bitmap {
	pitch := (g.Width + 7) / 8
	pix := make([]byte, pitch*g.Height)
	for j := 0; j < g.Height; j++ {
		for k := 0; k < g.Width; k++ {
			if g.Pix[j*g.Pitch+k] >= 0x80 {
				pix[j*pitch+k/8] |= 0x80 >> (k % 8)
			}
		}
	}
	return &Bitmap{
		Mode:   PixelModeMono,
		Pix:    pix,
		Pitch:  pitch,
		Width:  g.Width,
		Height: g.Height,
		Left:   g.Left,
		Top:    g.Top,
	}
}

// lcdBitmap expands a grayscale bitmap to the LCD triple layout. There is
// no subpixel filter here; each intensity is replicated across the triple.
func lcdBitmap(g *Bitmap) *Bitmap {
	pitch := 3 * g.Width
	pix := make([]byte, pitch*g.Height)
	for j := 0; j < g.Height; j++ {
		for k := 0; k < g.Width; k++ {
			v := g.Pix[j*g.Pitch+k]
			o := j*pitch + 3*k
			pix[o] = v
			pix[o+1] = v
			pix[o+2] = v
		}
	}
	return &Bitmap{
		Mode:   PixelModeLCD,
		Pix:    pix,
		Pitch:  pitch,
		Width:  3 * g.Width,
		Height: g.Height,
		Left:   g.Left,
		Top:    g.Top,
	}
}
