package termatlas

import "iter"

// LoadFlags adjust how a rasterizer loads glyphs before rendering.
type LoadFlags uint32

const (
	// LoadForceAutohint forces the rasterizer's autohinter.
	LoadForceAutohint LoadFlags = 1 << iota

	// LoadNoHinting disables hinting entirely.
	LoadNoHinting
)

// RenderMode selects the pixel encoding a rasterizer produces.
type RenderMode uint8

const (
	// RenderModeNormal is 8-bit antialiased grayscale.
	RenderModeNormal RenderMode = iota

	// RenderModeLight is grayscale with lighter hinting.
	RenderModeLight

	// RenderModeMono is 1-bit monochrome.
	RenderModeMono

	// RenderModeLCD is horizontal-RGB subpixel rendering.
	RenderModeLCD
)

// String returns the string representation of the render mode.
func (m RenderMode) String() string {
	switch m {
	case RenderModeNormal:
		return "Normal"
	case RenderModeLight:
		return "Light"
	case RenderModeMono:
		return "Mono"
	case RenderModeLCD:
		return "LCD"
	default:
		return "Unknown"
	}
}

// Rasterizer opens matched font resources for glyph rendering.
// This abstraction allows swapping the font rendering library; the default
// implementation uses golang.org/x/image/font/opentype.
type Rasterizer interface {
	// Open prepares a font resource for rendering.
	Open(res Resource) (Handle, error)
}

// Handle is an open font resource. A Handle is used by exactly one variant
// build at a time; the construction path is strictly sequential, so
// implementations need not be safe for concurrent use.
type Handle interface {
	// Codepoints enumerates the font's character coverage, one-shot.
	Codepoints() iter.Seq[rune]

	// Metrics reports the font's fixed strikes and/or scalable metrics.
	Metrics() (FontMetrics, error)

	// SetPixelSize fixes the rendering size for subsequent Render calls.
	SetPixelSize(size int) error

	// Render rasterizes one codepoint. Failures are per-glyph and
	// non-fatal for the build.
	Render(r rune, flags LoadFlags, mode RenderMode) (*Bitmap, error)

	// Close releases the resource.
	Close() error
}

// rasterizerRegistry holds registered rasterizer backends.
var rasterizerRegistry = map[string]Rasterizer{
	"opentype": &OpenTypeRasterizer{},
}

// defaultRasterizerName is the name of the default backend.
const defaultRasterizerName = "opentype"

// RegisterRasterizer registers a custom rasterizer backend under a name
// usable with WithRasterizer. Not safe to call concurrently with Build.
func RegisterRasterizer(name string, r Rasterizer) {
	rasterizerRegistry[name] = r
}

// getRasterizer returns the named backend, falling back to the default.
func getRasterizer(name string) Rasterizer {
	if r, ok := rasterizerRegistry[name]; ok {
		return r
	}
	return rasterizerRegistry[defaultRasterizerName]
}
