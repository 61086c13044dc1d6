package termatlas

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// SystemMatcher resolves style specifications against the fonts installed
// on the host, using go-text/typesetting's fontscan index. The index is
// built lazily on the first Resolve call and cached in the user cache
// directory between runs.
type SystemMatcher struct {
	once    sync.Once
	fm      *fontscan.FontMap
	initErr error
}

// NewSystemMatcher creates a matcher over the system font index.
func NewSystemMatcher() *SystemMatcher {
	return &SystemMatcher{}
}

func (m *SystemMatcher) init() {
	m.fm = fontscan.NewFontMap(log.New(slogWriter{}, "fontscan: ", 0))
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		logger().Warn("no user cache dir, font index will not be cached", "err", err)
		cacheDir = ""
	}
	if err := m.fm.UseSystemFonts(cacheDir); err != nil {
		m.initErr = fmt.Errorf("termatlas: scanning system fonts: %w", err)
	}
}

// Resolve implements Matcher.
func (m *SystemMatcher) Resolve(spec StyleSpec) (Resource, error) {
	m.once.Do(m.init)
	if m.initErr != nil {
		return Resource{}, m.initErr
	}
	if spec.Family == "" {
		return Resource{}, ErrInvalidFontSpec
	}

	aspect := font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal}
	if spec.Italic {
		aspect.Style = font.StyleItalic
	}
	if spec.Bold {
		aspect.Weight = font.WeightBold
	}
	m.fm.SetQuery(fontscan.Query{
		Families: []string{spec.Family},
		Aspect:   aspect,
	})

	// Resolving for a space character: every usable terminal font covers
	// it, and the font map falls back across families to find coverage.
	face := m.fm.ResolveFace(' ')
	if face == nil {
		return Resource{}, fmt.Errorf("termatlas: %q: %w", spec.Family, ErrFontNotFound)
	}
	family, _ := m.fm.FontMetadata(face.Font)
	loc := m.fm.FontLocation(face.Font)
	logger().Debug("font matched",
		"requested", spec.Family, "matched", family, "file", loc.File)
	return Resource{
		Family: family,
		Path:   loc.File,
		Index:  int(loc.Index),
	}, nil
}

// slogWriter adapts fontscan's Printf-style logging to the package logger.
type slogWriter struct{}

func (slogWriter) Write(p []byte) (int, error) {
	logger().Debug(strings.TrimSpace(string(p)))
	return len(p), nil
}
