package termatlas

// Option configures an atlas build.
type Option func(*config)

// config holds the effective build configuration.
type config struct {
	pixelSize  int
	pointSize  float64
	dpi        float64
	dwFamily   string
	matcher    Matcher
	rasterizer string
	oracle     WidthOracle
	antialias  bool
	hinting    bool
	autohint   bool
	lcd        bool
}

// defaultConfig returns the default build configuration.
func defaultConfig() config {
	return config{
		pixelSize:  16,
		rasterizer: defaultRasterizerName,
		oracle:     UnicodeWidth{},
		antialias:  true,
		hinting:    true,
	}
}

// effectivePixelSize resolves the target glyph size. A point size together
// with a DPI takes precedence over the plain pixel size.
func (c config) effectivePixelSize() int {
	if c.pointSize > 0 && c.dpi > 0 {
		return int(c.pointSize * c.dpi / 72)
	}
	return c.pixelSize
}

// renderParams derives the glyph load flags and render mode from the
// antialias, hinting and subpixel settings.
func (c config) renderParams() (LoadFlags, RenderMode) {
	if !c.antialias {
		return 0, RenderModeMono
	}
	var flags LoadFlags
	if !c.hinting {
		flags |= LoadNoHinting
	}
	if c.autohint {
		flags |= LoadForceAutohint
	}
	if c.lcd {
		return flags, RenderModeLCD
	}
	return flags, RenderModeNormal
}

// WithPixelSize sets the target glyph size in pixels. Default: 16.
func WithPixelSize(px int) Option {
	return func(c *config) { c.pixelSize = px }
}

// WithPointSize sets the glyph size in points. Takes effect together with
// WithDPI, overriding WithPixelSize.
func WithPointSize(pt float64) Option {
	return func(c *config) { c.pointSize = pt }
}

// WithDPI sets the display resolution used to convert point sizes.
func WithDPI(dpi float64) Option {
	return func(c *config) { c.dpi = dpi }
}

// WithDoubleWidthFamily requests a double-width companion variant for wide
// characters. Without it, no double-width variant is attempted.
func WithDoubleWidthFamily(family string) Option {
	return func(c *config) { c.dwFamily = family }
}

// WithMatcher replaces the default system font matcher.
func WithMatcher(m Matcher) Option {
	return func(c *config) { c.matcher = m }
}

// WithRasterizer selects a rasterizer backend by registered name.
// The default is "opentype". See RegisterRasterizer.
func WithRasterizer(name string) Option {
	return func(c *config) { c.rasterizer = name }
}

// WithWidthOracle replaces the default Unicode-derived width oracle.
func WithWidthOracle(o WidthOracle) Option {
	return func(c *config) { c.oracle = o }
}

// WithAntialias toggles antialiased rendering. Disabling it renders 1-bit
// monochrome glyphs. Default: enabled.
func WithAntialias(enabled bool) Option {
	return func(c *config) { c.antialias = enabled }
}

// WithHinting toggles glyph hinting. Default: enabled.
func WithHinting(enabled bool) Option {
	return func(c *config) { c.hinting = enabled }
}

// WithAutohint forces the rasterizer's autohinter. Default: disabled.
func WithAutohint(enabled bool) Option {
	return func(c *config) { c.autohint = enabled }
}

// WithLCD enables horizontal-RGB subpixel rendering. Default: disabled.
func WithLCD(enabled bool) Option {
	return func(c *config) { c.lcd = enabled }
}
