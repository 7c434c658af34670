package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// EncodedImage contains a PNG-encoded image ready for transport.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// CropCell extracts the rectangle (x1,y1)-(x2,y2) from img.
//
// The rectangle is clamped to the image bounds first, so a column window that
// runs a few pixels past the frame edge still yields the visible part. An
// error is returned only when nothing of the rectangle is left after clamping.
// The returned image has its origin at (0,0).
func CropCell(img image.Image, x1, y1, x2, y2 int) (image.Image, error) {
	rect := image.Rect(x1, y1, x2, y2).Intersect(img.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) does not intersect image bounds %v",
			x1, y1, x2, y2, img.Bounds())
	}
	return imaging.Crop(img, rect), nil
}

// Grayscale converts img to a single-channel luminance image. An image that
// is already *image.Gray is returned as is.
func Grayscale(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}
	rgba := effect.Grayscale(img)
	gray := image.NewGray(rgba.Bounds())
	draw.Draw(gray, gray.Bounds(), rgba, rgba.Bounds().Min, draw.Src)
	return gray
}

// Scale resizes img by factor using Lanczos resampling. A factor of 1 (or any
// non-positive value) returns img unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if factor == 1.0 || factor <= 0 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 || h < 1 {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64 encodes img as a base64 PNG payload.
func EncodeBase64(img image.Image) (*EncodedImage, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}
	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
	}, nil
}
