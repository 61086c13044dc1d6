package termatlas

// blit copies one rasterized glyph into the cell at pos, converting the
// source encoding to the atlas's 4-byte RGBA layout. The intensity is
// written to the RGB channels; the fourth byte is left untouched.
//
// The glyph is aligned horizontally by its reported left offset and
// vertically so its top sits at the cell baseline, then clipped to the cell.
// Source columns left of the cell origin (negative Left) are skipped.
//
// When overlay is set, the glyph's clipped bw-by-bh rectangle is zeroed at
// the cell origin before copying, because an earlier glyph occupies the
// cell. Note the clear covers only that rectangle: if the replacement glyph
// is smaller than the one it patches, pixels of the old glyph outside the
// new bounding box survive. Known latent visual artifact, kept as-is.
func (a *Atlas) blit(bmp *Bitmap, pos Position, overlay bool) error {
	cell := a.cell

	// Destination pixel offsets within the cell.
	xskip := 0
	if bmp.Left < 0 {
		xskip = -bmp.Left
	}
	dx := 0
	if bmp.Left > 0 {
		dx = bmp.Left
	}
	dy := 0
	if cell.Baseline > 0 && cell.Baseline > bmp.Top {
		dy = cell.Baseline - bmp.Top
	}

	// Logical source width: LCD rows carry three bytes per pixel.
	var tw int
	switch bmp.Mode {
	case PixelModeMono, PixelModeGray:
		tw = bmp.Width
	case PixelModeLCD:
		tw = bmp.Width / 3
	default:
		return &PixelFormatError{Mode: bmp.Mode}
	}
	bw := min(tw-xskip, cell.Width-dx)
	bh := min(bmp.Height, cell.Height-dy)
	if bw <= 0 || bh <= 0 {
		// The glyph lies entirely outside the cell. Nothing to copy, and
		// the source rows must not be sliced at an out-of-range offset.
		return nil
	}

	// One full pixel row of the atlas, and the glyph's cell within it.
	rowStride := bytesPerPixel * a.geom.Nx * cell.Width
	glyphOff := int(pos.Row)*rowStride*cell.Height + bytesPerPixel*int(pos.Col)*cell.Width
	writeOff := glyphOff + rowStride*dy + bytesPerPixel*dx

	if overlay {
		for j := 0; j < bh; j++ {
			dst := a.buf[glyphOff+rowStride*j:]
			for k := 0; k < bytesPerPixel*bw; k++ {
				dst[k] = 0
			}
		}
	}

	switch bmp.Mode {
	case PixelModeMono:
		// Rows are bit-packed, so the skipped columns select a start byte
		// and a bit offset within it.
		for j := 0; j < bh; j++ {
			src := bmp.Pix[j*bmp.Pitch:]
			dst := a.buf[writeOff+rowStride*j:]
			si := xskip / 8
			b := src[si] << (xskip % 8)
			rem := 8 - xskip%8
			di := 0
			for k := 0; k < bw; k++ {
				if rem == 0 {
					si++
					b = src[si]
					rem = 8
				}
				var v byte
				if b&0x80 != 0 {
					v = 0xFF
				}
				dst[di] = v
				dst[di+1] = v
				dst[di+2] = v
				di += bytesPerPixel
				b <<= 1
				rem--
			}
		}
	case PixelModeGray:
		for j := 0; j < bh; j++ {
			src := bmp.Pix[j*bmp.Pitch+xskip:]
			dst := a.buf[writeOff+rowStride*j:]
			di := 0
			for k := 0; k < bw; k++ {
				v := src[k]
				dst[di] = v
				dst[di+1] = v
				dst[di+2] = v
				di += bytesPerPixel
			}
		}
	case PixelModeLCD:
		for j := 0; j < bh; j++ {
			src := bmp.Pix[j*bmp.Pitch+3*xskip:]
			dst := a.buf[writeOff+rowStride*j:]
			si, di := 0, 0
			for k := 0; k < bw; k++ {
				dst[di] = src[si]
				dst[di+1] = src[si+1]
				dst[di+2] = src[si+2]
				si += 3
				di += bytesPerPixel
			}
		}
	}
	return nil
}
