package termatlas

import "fmt"

// StyleSpec describes one requested font style. A Set starts from a base
// specification and overrides one attribute per query, the way style
// matching engines expect successive refinement.
type StyleSpec struct {
	// Family is the font family to match.
	Family string

	// Italic and Bold select the slant and weight.
	Italic bool
	Bold   bool

	// DoubleWidth marks the wide-character companion font.
	DoubleWidth bool

	// PixelSize is the target glyph size in pixels.
	PixelSize int

	// DPI is the resolution the size was derived at, zero if unknown.
	DPI float64
}

// Resource identifies a concrete font a Matcher resolved. Either Path (with
// optional collection Index) or Data must be set.
type Resource struct {
	// Family is the matched family name, for diagnostics.
	Family string

	// Path is the font file on disk.
	Path string

	// Index is the face index within a font collection file.
	Index int

	// Data is in-memory font data, used when Path is empty.
	Data []byte
}

// Matcher resolves a style specification to a concrete font resource.
// The default implementation indexes the system's installed fonts; see
// SystemMatcher and PathMatcher.
type Matcher interface {
	Resolve(spec StyleSpec) (Resource, error)
}

// PathMatcher maps each style directly to a font file. Empty entries
// resolve to ErrFontNotFound, which omits that optional variant.
type PathMatcher struct {
	Regular     string
	Italic      string
	Bold        string
	BoldItalic  string
	DoubleWidth string
}

// Resolve implements Matcher.
func (m PathMatcher) Resolve(spec StyleSpec) (Resource, error) {
	var path string
	switch {
	case spec.DoubleWidth:
		path = m.DoubleWidth
	case spec.Italic && spec.Bold:
		path = m.BoldItalic
	case spec.Italic:
		path = m.Italic
	case spec.Bold:
		path = m.Bold
	default:
		path = m.Regular
	}
	if path == "" {
		return Resource{}, fmt.Errorf("termatlas: no file configured for %q: %w", spec.Family, ErrFontNotFound)
	}
	return Resource{Family: spec.Family, Path: path}, nil
}
