package termatlas

import "fmt"

// Style identifies one of the five variant slots of a Set.
type Style uint8

const (
	StyleRegular Style = iota
	StyleItalic
	StyleBoldItalic
	StyleBold
	StyleDoubleWidth
	numStyles
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleRegular:
		return "regular"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	case StyleBold:
		return "bold"
	case StyleDoubleWidth:
		return "double-width"
	default:
		return "unknown"
	}
}

// Role determines how a variant relates to the shared atlas.
type Role uint8

const (
	// RolePrimary plans the geometry and owns the atlas buffer and map.
	RolePrimary Role = iota

	// RoleOverlay reuses the primary's atlas and patches cells in place.
	RoleOverlay

	// RoleDoubleWidth owns a separate atlas with cells twice as wide.
	RoleDoubleWidth
)

// buildState tracks a variant through construction. Transitions run
// forward only; a variant is terminal at statePopulated.
type buildState uint8

const (
	stateUnloaded buildState = iota
	stateSizingResolved
	stateGeometryAllocated
	statePopulated
)

// Variant is one font style populated into an atlas. Variants are built
// synchronously at startup and immutable afterwards.
type Variant struct {
	style  Style
	role   Role
	family string
	cell   Cell
	atlas  *Atlas // owned by primary and double-width, shared for overlays

	filter     codepointFilter
	loadFlags  LoadFlags
	renderMode RenderMode

	skipCount int
	state     buildState
}

// Style returns the style slot this variant fills.
func (v *Variant) Style() Style { return v.style }

// Role returns how the variant relates to its atlas.
func (v *Variant) Role() Role { return v.role }

// Family returns the matched font family name.
func (v *Variant) Family() string { return v.family }

// Cell returns the variant's cell footprint. For overlays this is the
// primary's footprint; for double-width variants the width is doubled.
func (v *Variant) Cell() Cell { return v.cell }

// Atlas returns the atlas this variant writes to. Overlays return the
// primary's atlas.
func (v *Variant) Atlas() *Atlas { return v.atlas }

// SkipCount returns how many codepoints outside the Basic Multilingual
// Plane the font covered but the atlas excluded.
func (v *Variant) SkipCount() int { return v.skipCount }

// newVariant runs one style through the full build pipeline: resolve the
// cell footprint, count loadable codepoints, plan and allocate the grid
// (primary and double-width only), then populate every selected glyph.
func newVariant(h Handle, style Style, role Role, family string, primary *Variant, cfg config) (*Variant, error) {
	v := &Variant{
		style:  style,
		role:   role,
		family: family,
		filter: codepointFilter{oracle: cfg.oracle, doubleWidth: role == RoleDoubleWidth},
	}
	v.loadFlags, v.renderMode = cfg.renderParams()

	// Seed the expected footprint for variants bound to the primary.
	switch role {
	case RoleOverlay:
		v.cell = primary.cell
	case RoleDoubleWidth:
		v.cell = Cell{Width: 2 * primary.cell.Width, Height: primary.cell.Height}
	}

	m, err := h.Metrics()
	if err != nil {
		return nil, err
	}
	if err := v.resolveSize(h, m, cfg.effectivePixelSize()); err != nil {
		return nil, err
	}
	v.state = stateSizingResolved

	// The loadable count is needed up front: the grid is planned before
	// any glyph is rendered. The blit pass below applies the identical
	// predicate, so every counted codepoint gets its reserved slot.
	loadable := 0
	for r := range h.Codepoints() {
		if r > maxBMP {
			v.skipCount++
		}
		if v.filter.loadable(r) {
			loadable++
		}
	}

	switch role {
	case RoleOverlay:
		v.atlas = primary.atlas
	default:
		reserved := loadable + 1 // slot (0,0) stays blank
		geom, err := PlanGeometry(reserved, v.cell.Width, v.cell.Height)
		if err != nil {
			return nil, err
		}
		logger().Debug("atlas geometry planned",
			"style", style, "nx", geom.Nx, "ny", geom.Ny,
			"cellWidth", v.cell.Width, "cellHeight", v.cell.Height,
			"reserved", reserved, "free", geom.Slots()-reserved)
		v.atlas = newAtlas(geom, v.cell)
		v.state = stateGeometryAllocated
	}

	if err := v.populate(h); err != nil {
		return nil, err
	}
	v.state = statePopulated

	if v.skipCount > 0 {
		logger().Info("skipped codepoints outside the Basic Multilingual Plane",
			"style", style, "family", family, "count", v.skipCount)
	}
	logger().Info("variant populated",
		"style", style, "family", family, "glyphs", v.atlas.Len())
	return v, nil
}

// populate runs the blit pass.
//
// Primary and double-width variants walk their font's coverage and claim
// slots in sequence; a glyph the rasterizer cannot produce is logged and
// skipped, leaving its slot unassigned. Overlays instead walk the cells the
// primary already assigned and patch those their font can render; glyphs
// the overlay font lacks silently keep the primary's rendering.
func (v *Variant) populate(h Handle) error {
	if v.role == RoleOverlay {
		for r, pos := range v.atlas.mapping {
			if !v.filter.loadable(r) {
				continue
			}
			bmp, err := h.Render(r, v.loadFlags, v.renderMode)
			if err != nil {
				continue
			}
			if err := v.atlas.blit(bmp, pos, true); err != nil {
				return err
			}
		}
		return nil
	}

	for r := range h.Codepoints() {
		if !v.filter.loadable(r) {
			continue
		}
		pos, seen := v.atlas.mapping[r]
		if !seen {
			pos = v.atlas.nextPosition()
		}
		bmp, err := h.Render(r, v.loadFlags, v.renderMode)
		if err != nil {
			logger().Warn("failed to render glyph",
				"style", v.style, "codepoint", fmt.Sprintf("U+%04X", r), "err", err)
			continue
		}
		if err := v.atlas.blit(bmp, pos, seen); err != nil {
			return err
		}
		if !seen {
			v.atlas.assign(r, pos)
		}
	}
	return nil
}
