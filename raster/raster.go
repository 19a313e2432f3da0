// Package raster converts maze images to and from the boolean grids used by
// the solver: decoding, thresholding, gate detection and path drawing.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazeway/gridgraph"
)

// DefaultThreshold is the minimum 8-bit luminance of a passable pixel.
const DefaultThreshold uint8 = 128

// DefaultSuffix is inserted before the extension of the default output path.
const DefaultSuffix = "-path"

// DefaultPathColor is the colour used to paint the solution.
var DefaultPathColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}

var (
	// ErrGatesNotFound indicates a maze without any passable border cell.
	ErrGatesNotFound = errors.New("raster: maze has no passable border cell")
	// ErrBadColor indicates a colour string that is not #rrggbb.
	ErrBadColor = errors.New("raster: colour must be #rrggbb")
)

// Decode reads a PNG, GIF or JPEG image.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("raster: decode image: %w", err)
	}
	return img, format, nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Threshold maps every pixel of img to a grid cell; a cell is passable when
// the pixel's luminance is at least level. Luminance is taken from the
// alpha-premultiplied colour, so a fully transparent pixel is a wall
// whatever its RGB values, and partly transparent light pixels darken.
// Grid coordinates are relative to img.Bounds().Min. A zero-sized image
// yields gridgraph.ErrEmptyGrid.
func Threshold(img image.Image, level uint8) (*gridgraph.Grid, error) {
	b := img.Bounds()
	grid, err := gridgraph.NewGrid(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("raster: threshold %v image: %w", b.Size(), err)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			grid.Set(x-b.Min.X, y-b.Min.Y, g.Y >= level)
		}
	}
	return grid, nil
}

// DrawPath returns an RGBA copy of img with every path cell painted c.
func DrawPath(img image.Image, path []gridgraph.Coordinate, c color.Color) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	for _, p := range path {
		out.Set(b.Min.X+p.X, b.Min.Y+p.Y, c)
	}
	return out
}

// ParseColor parses "#rrggbb" (the leading '#' is optional).
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// DefaultOutputPath strips the extension of input and appends suffix and
// ".png": "maze.jpg" becomes "maze-path.png".
func DefaultOutputPath(input, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix + ".png"
}
