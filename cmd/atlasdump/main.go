// Command atlasdump builds a terminal glyph atlas and writes it as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/termatlas"
)

func main() {
	var (
		family   = flag.String("family", "monospace", "font family to load")
		dwFamily = flag.String("dw-family", "", "double-width font family for wide characters")
		fontFile = flag.String("font-file", "", "load this font file instead of matching system fonts")
		size     = flag.Int("size", 16, "target glyph size in pixels")
		dpi      = flag.Float64("dpi", 0, "resolution for point-size conversion")
		lcd      = flag.Bool("lcd", false, "enable subpixel rendering")
		output   = flag.String("output", "atlas.png", "output file")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	termatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	opts := []termatlas.Option{
		termatlas.WithPixelSize(*size),
		termatlas.WithLCD(*lcd),
	}
	if *dpi > 0 {
		opts = append(opts, termatlas.WithDPI(*dpi))
	}
	if *dwFamily != "" {
		opts = append(opts, termatlas.WithDoubleWidthFamily(*dwFamily))
	}
	if *fontFile != "" {
		opts = append(opts, termatlas.WithMatcher(termatlas.PathMatcher{Regular: *fontFile}))
	}

	set, err := termatlas.Build(*family, opts...)
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}

	if err := writePNG(set.Atlas(), *output); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	w, h := set.Atlas().PixelSize()
	log.Printf("Atlas saved to %s (%dx%d, %d glyphs)", *output, w, h, set.Atlas().Len())

	if dw := set.DoubleWidth(); dw != nil {
		dwOut := dwName(*output)
		if err := writePNG(dw.Atlas(), dwOut); err != nil {
			log.Fatalf("Failed to write %s: %v", dwOut, err)
		}
		w, h := dw.Atlas().PixelSize()
		log.Printf("Double-width atlas saved to %s (%dx%d, %d glyphs)", dwOut, w, h, dw.Atlas().Len())
	}

	for _, style := range []termatlas.Style{
		termatlas.StyleItalic, termatlas.StyleBoldItalic, termatlas.StyleBold,
	} {
		if set.Variant(style) == nil {
			log.Printf("Variant %s: absent", style)
		} else {
			log.Printf("Variant %s: %s", style, set.Variant(style).Family())
		}
	}
}

// writePNG converts the atlas buffer to an opaque NRGBA image. The atlas
// leaves the fourth byte of every pixel unused, so it is forced to 0xFF.
func writePNG(a *termatlas.Atlas, path string) error {
	w, h := a.PixelSize()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	buf := a.Buffer()
	for i := 0; i < len(buf); i += 4 {
		img.Pix[i] = buf[i]
		img.Pix[i+1] = buf[i+1]
		img.Pix[i+2] = buf[i+2]
		img.Pix[i+3] = 0xFF
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// dwName derives the double-width output name: atlas.png -> atlas-dw.png.
func dwName(path string) string {
	if i := strings.LastIndex(path, "."); i > 0 {
		return path[:i] + "-dw" + path[i:]
	}
	return path + "-dw"
}
