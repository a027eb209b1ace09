// Package imaging renders placeholder venue photos for deployments without
// a places API key.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	minDimension = 16
	maxDimension = 2000
)

var (
	backgroundGray = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	labelGray      = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// Placeholder returns a PNG of the requested size with the dimensions printed
// in the middle. Dimensions are clamped to a sane range. If rendering fails
// for any reason the result degrades to a minimal flat image, never an error.
func Placeholder(width, height int) []byte {
	width = clampDim(width)
	height = clampDim(height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: backgroundGray}, image.Point{}, draw.Src)

	label := fmt.Sprintf("%d x %d", width, height)
	drawLabel(img, label, width, height)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fallbackImage()
	}
	return buf.Bytes()
}

func drawLabel(img *image.RGBA, label string, width, height int) {
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, label).Ceil()

	x := (width - textWidth) / 2
	y := height/2 + face.Metrics().Ascent.Ceil()/2
	if x < 0 {
		x = 0
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: labelGray},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}

// fallbackImage is a tiny flat PNG used when normal rendering fails.
func fallbackImage() []byte {
	img := image.NewRGBA(image.Rect(0, 0, minDimension, minDimension))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: backgroundGray}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	// Encoding a flat 16x16 RGBA cannot realistically fail; ignore the error
	// rather than returning nothing.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func clampDim(d int) int {
	if d < minDimension {
		return minDimension
	}
	if d > maxDimension {
		return maxDimension
	}
	return d
}
