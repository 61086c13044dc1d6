// Package termatlas builds texture atlases of rendered glyphs for terminal
// text rendering.
//
// # Overview
//
// A terminal draws every character into a fixed-size cell. termatlas takes a
// font family, rasterizes each usable glyph once at startup, and packs the
// results into a single RGBA buffer subdivided into a near-square grid of
// equal cells. The rendering layer samples that buffer using a
// codepoint-to-cell lookup table; codepoints without an entry fall back to
// the permanently blank cell at grid position (0,0).
//
// # Quick Start
//
//	set, err := termatlas.Build("DejaVu Sans Mono",
//	    termatlas.WithPixelSize(18))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	atlas := set.Atlas()
//	buf := atlas.Buffer()          // 4 bytes per pixel, RGB + unused byte
//	geom := atlas.Geometry()       // grid dimensions in cells
//	pos, ok := atlas.Lookup('A')   // cell coordinates of a glyph
//
// # Variants
//
// A Set holds up to five style variants. The regular variant is mandatory
// and owns the atlas. Italic, bold-italic and bold are overlays: they reuse
// the regular atlas and patch individual cells in place, so a cell lookup is
// identical across styles. An optional double-width variant (for East Asian
// wide characters) uses cells twice as wide and owns a separate atlas.
// Failure to match an optional style is logged and leaves that slot absent;
// only the regular variant is required.
//
// # Collaborators
//
// Font matching and glyph rasterization are pluggable. The default matcher
// indexes system fonts via go-text/typesetting's fontscan; PathMatcher maps
// styles to font files directly. The default rasterizer parses OpenType
// fonts with golang.org/x/image; alternative backends can be registered with
// RegisterRasterizer. Display-column widths come from a WidthOracle, by
// default derived from the Unicode East Asian Width property.
//
// # Concurrency
//
// Construction is single-threaded and synchronous; a Set and its atlases are
// immutable once Build returns and may then be read from any goroutine.
package termatlas
