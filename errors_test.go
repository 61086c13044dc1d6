package termatlas

import (
	"errors"
	"strings"
	"testing"
)

func TestGlyphErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &GlyphError{Rune: 0x4E2D, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("GlyphError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "U+4E2D") {
		t.Errorf("Error() = %q, want the codepoint spelled out", err.Error())
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&OverflowError{Nx: 300, Ny: 12}, "300x12"},
		{&SizeMismatchError{Style: StyleBold, WantWidth: 6, WantHeight: 12, GotWidth: 7, GotHeight: 12}, "7x12"},
		{&PixelFormatError{Mode: PixelMode(9)}, "pixel mode 9"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); !strings.Contains(got, tt.want) {
			t.Errorf("Error() = %q, want substring %q", got, tt.want)
		}
	}
}
