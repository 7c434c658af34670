package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Band is a horizontal stripe to outline on a debug overlay.
type Band struct {
	// Y1 and Y2 are the top and bottom edges, both inclusive.
	Y1, Y2 int

	// Label is drawn inside the top-left corner of the outline. Empty means none.
	Label string

	// ColorHex is the outline color as "#RRGGBB".
	ColorHex string
}

// outlineThickness is the line width of band outlines in pixels.
const outlineThickness = 1

// fallbackColor is used when a band carries an unparseable color.
var fallbackColor = colorful.Color{R: 1, G: 0, B: 0}

// DrawBands returns a copy of img with each band outlined between x1 and x2.
//
// Bands that fall partly outside the image are clipped. Bands with Y2 < Y1
// are skipped. The source image is not modified.
func DrawBands(img image.Image, x1, x2 int, bands []Band) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	for _, b := range bands {
		if b.Y2 < b.Y1 {
			continue
		}
		c := parseColor(b.ColorHex)
		rect := image.Rect(x1, b.Y1, x2+1, b.Y2+1)
		outline(out, rect, c)
		if b.Label != "" {
			drawLabel(out, x1+outlineThickness+2, b.Y1+outlineThickness, b.Label, c)
		}
	}
	return out
}

// SaveImage writes img to path, creating the parent directory when needed.
// The format follows the file extension.
func SaveImage(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

func parseColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackColor
	}
	return c.Clamped()
}

func outline(img *image.RGBA, rect image.Rectangle, c color.Color) {
	src := image.NewUniform(c)
	t := outlineThickness
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+t),
		image.Rect(rect.Min.X, rect.Max.Y-t, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+t, rect.Max.Y),
		image.Rect(rect.Max.X-t, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
	}
}

func drawLabel(img *image.RGBA, x, y int, text string, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}
