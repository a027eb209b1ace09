package imaging

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPlaceholderDimensions(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"standard", 400, 300, 400, 300},
		{"square", 200, 200, 200, 200},
		{"clamped low", 1, 1, 16, 16},
		{"clamped high", 9999, 9999, 2000, 2000},
		{"negative", -5, 100, 16, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Placeholder(tt.w, tt.h)
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("output is not a valid PNG: %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != tt.wantW || bounds.Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFallbackImageIsValidPNG(t *testing.T) {
	data := fallbackImage()
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("fallback is not a valid PNG: %v", err)
	}
}
