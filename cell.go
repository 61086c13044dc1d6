package termatlas

// Cell is the pixel footprint of one atlas slot.
type Cell struct {
	// Width and Height are the cell dimensions in pixels.
	Width, Height int

	// Baseline is the row, counted from the cell top, at which glyph tops
	// are aligned. Zero means no baseline alignment.
	Baseline int
}

// bestStrike returns the fixed strike whose height is closest to the
// requested pixel size, and the absolute height difference.
func bestStrike(strikes []Strike, pixelSize int) (Strike, int) {
	best := strikes[0]
	bestDiff := abs(pixelSize - strikes[0].Height)
	for _, s := range strikes[1:] {
		if diff := abs(pixelSize - s.Height); diff < bestDiff {
			best = s
			bestDiff = diff
		}
	}
	return best, bestDiff
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// resolveSize derives the variant's cell footprint from the rasterizer
// metrics and configures the handle's pixel size.
//
// Fonts offering fixed bitmap strikes use the strike closest to the target
// size, unless the mismatch exceeds one pixel and the font is also scalable,
// in which case outlines are rendered instead. Overlay and double-width
// variants must resolve the exact footprint they were seeded with; a
// fixed-strike disagreement fails with *SizeMismatchError.
func (v *Variant) resolveSize(h Handle, m FontMetrics, pixelSize int) error {
	if len(m.Strikes) > 0 {
		strike, diff := bestStrike(m.Strikes, pixelSize)
		logger().Debug("fixed strike selected",
			"style", v.style, "width", strike.Width, "height", strike.Height,
			"target", pixelSize)
		if diff > 1 && m.Scalable() {
			logger().Debug("strike mismatch too large, rendering outlines",
				"style", v.style, "diff", diff)
			return v.resolveScaled(h, m, pixelSize)
		}

		if v.role == RolePrimary {
			v.cell = Cell{Width: strike.Width, Height: strike.Height}
		} else if v.cell.Width != strike.Width || v.cell.Height != strike.Height {
			return &SizeMismatchError{
				Style:      v.style,
				WantWidth:  v.cell.Width,
				WantHeight: v.cell.Height,
				GotWidth:   strike.Width,
				GotHeight:  strike.Height,
			}
		}
		if v.role != RoleOverlay && m.Height != 0 {
			// A fixed strike of an otherwise scalable font still needs
			// the baseline metric.
			v.cell.Baseline = int(float64(v.cell.Height) * float64(m.Ascender) / float64(m.Height))
		}
		return h.SetPixelSize(v.cell.Height)
	}
	return v.resolveScaled(h, m, pixelSize)
}

// resolveScaled derives the cell footprint from scalable outline metrics.
// Overlays keep the primary's footprint and baseline; double-width variants
// keep their seeded footprint but align to their own font's baseline.
func (v *Variant) resolveScaled(h Handle, m FontMetrics, pixelSize int) error {
	tpx := int(float64(pixelSize) * float64(m.MaxAdvanceWidth) / float64(m.UnitsPerEm))
	tpy := int(float64(tpx)*float64(m.Height)/float64(m.MaxAdvanceWidth)) + 1
	if v.role == RolePrimary {
		v.cell.Width = tpx
		v.cell.Height = tpy
	}
	if v.role != RoleOverlay {
		v.cell.Baseline = int(float64(tpy) * float64(m.Ascender) / float64(m.Height))
	}
	logger().Debug("scaled cell resolved",
		"style", v.style, "width", v.cell.Width, "height", v.cell.Height,
		"baseline", v.cell.Baseline)
	return h.SetPixelSize(pixelSize)
}
