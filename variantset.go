package termatlas

import (
	"errors"
	"fmt"
)

// Set holds up to five style variants of one terminal font: the mandatory
// regular variant that owns the shared atlas, the optional italic,
// bold-italic and bold overlays patched into it, and an optional
// double-width variant with its own atlas. A Set is immutable once Build
// returns.
type Set struct {
	variants [numStyles]*Variant
}

// Build constructs the variant set for a font family.
//
// The regular variant is resolved first; failure there is fatal. The
// optional styles are then attempted in a fixed order — italic,
// bold-italic, bold, double-width — by overriding one attribute of the
// style specification per query. An optional style that cannot be matched
// or loaded is logged at warn level and left absent; it never aborts the
// remaining variants.
func Build(family string, opts ...Option) (*Set, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.matcher == nil {
		cfg.matcher = NewSystemMatcher()
	}
	ras := getRasterizer(cfg.rasterizer)

	spec := StyleSpec{
		Family:    family,
		PixelSize: cfg.effectivePixelSize(),
		DPI:       cfg.dpi,
	}
	logger().Info("building glyph atlas",
		"family", family, "pixelSize", spec.PixelSize)

	s := &Set{}
	regular, err := loadVariant(cfg, ras, spec, StyleRegular, RolePrimary, nil)
	if err != nil {
		return nil, fmt.Errorf("termatlas: regular variant of %q: %w", family, err)
	}
	s.variants[StyleRegular] = regular

	// One attribute flips per query: italic on, then bold on (bold-italic),
	// then italic off (bold).
	spec.Italic = true
	if err := s.tryVariant(cfg, ras, spec, StyleItalic, RoleOverlay, regular); err != nil {
		return nil, err
	}
	spec.Bold = true
	if err := s.tryVariant(cfg, ras, spec, StyleBoldItalic, RoleOverlay, regular); err != nil {
		return nil, err
	}
	spec.Italic = false
	if err := s.tryVariant(cfg, ras, spec, StyleBold, RoleOverlay, regular); err != nil {
		return nil, err
	}

	if cfg.dwFamily != "" {
		dwSpec := StyleSpec{
			Family:      cfg.dwFamily,
			DoubleWidth: true,
			PixelSize:   spec.PixelSize,
			DPI:         cfg.dpi,
		}
		if err := s.tryVariant(cfg, ras, dwSpec, StyleDoubleWidth, RoleDoubleWidth, regular); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// tryVariant loads one optional style, logging and omitting it on failure.
// A pixel format the blitter cannot handle is a rasterizer misconfiguration,
// not a property of the one font that hit it, so it aborts the build even
// for an optional style.
func (s *Set) tryVariant(cfg config, ras Rasterizer, spec StyleSpec, style Style, role Role, primary *Variant) error {
	v, err := loadVariant(cfg, ras, spec, style, role, primary)
	if err != nil {
		var pfe *PixelFormatError
		if errors.As(err, &pfe) {
			return fmt.Errorf("termatlas: %s variant of %q: %w", style, spec.Family, err)
		}
		logger().Warn("failed to load style variant",
			"style", style, "family", spec.Family, "err", err)
		return nil
	}
	s.variants[style] = v
	return nil
}

// loadVariant matches, opens and populates one variant.
func loadVariant(cfg config, ras Rasterizer, spec StyleSpec, style Style, role Role, primary *Variant) (*Variant, error) {
	res, err := cfg.matcher.Resolve(spec)
	if err != nil {
		return nil, err
	}
	h, err := ras.Open(res)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := h.Close(); err != nil {
			logger().Debug("closing font handle", "style", style, "err", err)
		}
	}()

	logger().Info("loading font",
		"style", style, "family", res.Family, "file", res.Path)
	return newVariant(h, style, role, res.Family, primary, cfg)
}

// Variant returns the variant filling the given style slot, or nil if that
// style was not loaded.
func (s *Set) Variant(style Style) *Variant {
	if style >= numStyles {
		return nil
	}
	return s.variants[style]
}

// Regular returns the mandatory regular variant.
func (s *Set) Regular() *Variant { return s.variants[StyleRegular] }

// Italic returns the italic overlay, or nil if absent.
func (s *Set) Italic() *Variant { return s.variants[StyleItalic] }

// Bold returns the bold overlay, or nil if absent.
func (s *Set) Bold() *Variant { return s.variants[StyleBold] }

// BoldItalic returns the bold-italic overlay, or nil if absent.
func (s *Set) BoldItalic() *Variant { return s.variants[StyleBoldItalic] }

// DoubleWidth returns the double-width variant, or nil if absent.
func (s *Set) DoubleWidth() *Variant { return s.variants[StyleDoubleWidth] }

// Atlas returns the shared atlas owned by the regular variant.
func (s *Set) Atlas() *Atlas { return s.variants[StyleRegular].atlas }
