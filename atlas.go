package termatlas

import (
	"github.com/gogpu/gputypes"
)

// bytesPerPixel is the atlas buffer depth: RGB plus one unused byte.
const bytesPerPixel = 4

// TextureFormat is the pixel format of every atlas buffer, for rendering
// layers that upload the buffer as a texture.
const TextureFormat = gputypes.TextureFormatRGBA8Unorm

// TextureUsage is the usage a rendering layer needs to sample the atlas
// after copying the buffer into a texture.
const TextureUsage = gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst

// Position is the grid coordinates of one atlas cell. Both coordinates are
// single bytes; PlanGeometry guarantees the grid fits.
type Position struct {
	Col, Row uint8
}

// Atlas is one packed glyph buffer and its codepoint index. An Atlas is
// exclusively owned by the primary variant that allocated it (or by a
// double-width variant, which has its own); overlay variants write to it by
// reference during the strictly sequential build, and it is immutable
// afterwards.
type Atlas struct {
	buf     []byte
	geom    Geometry
	cell    Cell
	mapping map[rune]Position

	// seq is the next free slot in row-major order. It starts at 1: the
	// slot at (0,0) is reserved blank so unmapped codepoints have a
	// well-defined fallback cell.
	seq int
}

// newAtlas allocates a zeroed buffer for the given grid and cell footprint.
func newAtlas(geom Geometry, cell Cell) *Atlas {
	return &Atlas{
		buf:     make([]byte, bytesPerPixel*geom.Nx*cell.Width*geom.Ny*cell.Height),
		geom:    geom,
		cell:    cell,
		mapping: make(map[rune]Position),
		seq:     1,
	}
}

// nextPosition returns the next free slot without claiming it. The slot is
// claimed by assign once the glyph has actually been blitted, so render
// failures leave no gap in the map and no half-claimed cell.
func (a *Atlas) nextPosition() Position {
	row := a.seq / a.geom.Nx
	col := a.seq - row*a.geom.Nx
	return Position{Col: uint8(col), Row: uint8(row)}
}

// assign records the codepoint's cell and advances the slot sequence.
func (a *Atlas) assign(r rune, pos Position) {
	a.mapping[r] = pos
	a.seq++
}

// Buffer returns the raw atlas pixels: 4 bytes per pixel, row-major across
// the full atlas width. The returned slice is the atlas's backing store and
// must not be modified.
func (a *Atlas) Buffer() []byte { return a.buf }

// Geometry returns the grid dimensions in cells.
func (a *Atlas) Geometry() Geometry { return a.geom }

// Cell returns the pixel footprint of one grid slot.
func (a *Atlas) Cell() Cell { return a.cell }

// Lookup returns the cell holding the glyph for r. Codepoints without an
// entry should be drawn from the blank cell at (0,0).
func (a *Atlas) Lookup(r rune) (Position, bool) {
	pos, ok := a.mapping[r]
	return pos, ok
}

// Len returns the number of codepoints mapped into the atlas.
func (a *Atlas) Len() int { return len(a.mapping) }

// PixelSize returns the overall atlas dimensions in pixels.
func (a *Atlas) PixelSize() (w, h int) {
	return a.geom.Nx * a.cell.Width, a.geom.Ny * a.cell.Height
}

// Extent returns the atlas pixel dimensions as a texture extent.
func (a *Atlas) Extent() gputypes.Extent3D {
	w, h := a.PixelSize()
	return gputypes.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1}
}

// DataLayout describes the buffer layout for a texture upload.
func (a *Atlas) DataLayout() gputypes.TextureDataLayout {
	w, _ := a.PixelSize()
	return gputypes.TextureDataLayout{BytesPerRow: uint32(bytesPerPixel * w)}
}
