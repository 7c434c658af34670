package imaging

import (
	"fmt"
	"image"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Sum returns R+G+B as an int so callers can threshold overall brightness
// without uint8 overflow.
func (c RGBColor) Sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// Hex formats the color as "#RRGGBB".
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - RGBColor: The color at (x, y) reduced to 8-bit channels. Alpha is dropped.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// The function reads the native color from the image and converts it to 8-bit
// components. For 16-bit images, values are scaled down by right-shifting 8 bits.
func SampleColor(img image.Image, x, y int) (RGBColor, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return RGBColor{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return rgbAt(img, x, y), nil
}

// ColumnSample is the color of one pixel on a vertical probe line.
type ColumnSample struct {
	Y     int      `json:"y"`
	Color RGBColor `json:"color"`
}

// SampleColumn samples every pixel of column x from y1 to y2 inclusive.
//
// This is the probe-line primitive: one sample per pixel row, ordered top to
// bottom. The whole span must lie inside the image; a partially visible probe
// means the frame does not match the configured layout, so it is an error
// rather than a silent truncation.
func SampleColumn(img image.Image, x, y1, y2 int) ([]ColumnSample, error) {
	if y1 > y2 {
		return nil, fmt.Errorf("invalid column span: y1 (%d) must be <= y2 (%d)", y1, y2)
	}
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y1 < bounds.Min.Y || y2 >= bounds.Max.Y {
		return nil, fmt.Errorf("column x=%d y=%d..%d outside image bounds (%d,%d)-(%d,%d)",
			x, y1, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	samples := make([]ColumnSample, 0, y2-y1+1)
	for y := y1; y <= y2; y++ {
		samples = append(samples, ColumnSample{Y: y, Color: rgbAt(img, x, y)})
	}
	return samples, nil
}

func rgbAt(img image.Image, x, y int) RGBColor {
	r, g, b, _ := img.At(x, y).RGBA()
	// Convert from 16-bit to 8-bit
	return RGBColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
