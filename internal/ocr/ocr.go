package ocr

import (
	"fmt"
	"image"

	"github.com/ironsheep/rankboard-ocr/internal/imaging"
)

// Character sets for the numeric leaderboard columns.
const (
	Digits            = "0123456789"
	DigitsWithComma   = Digits + ","
	DigitsWithDash    = Digits + "-"
	DigitsWithPercent = Digits + "%"
)

// Options controls a single recognition call.
type Options struct {
	// Whitelist restricts the characters the engine may emit. Empty means no restriction.
	Whitelist string

	// SingleLine treats the image as one line of text. Otherwise the engine
	// segments the page automatically.
	SingleLine bool
}

// Recognizer turns an image of text into a string.
//
// Returned text is raw engine output: it may carry surrounding whitespace,
// stray characters or nothing at all. Callers validate it.
type Recognizer interface {
	Recognize(img image.Image, opts Options) (string, error)
}

// Factory creates a Recognizer. Workers that run in parallel each call it once.
type Factory func() (Recognizer, error)

// Prepare converts a cell to the grayscale PNG bytes handed to the engine,
// resizing it by scale first. A grayscale cell at scale 1 is encoded without
// another conversion; resampling yields color output that is converted back.
func Prepare(img image.Image, scale float64) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty image")
	}
	gray := imaging.Grayscale(imaging.Scale(img, scale))
	return imaging.EncodePNG(gray)
}
