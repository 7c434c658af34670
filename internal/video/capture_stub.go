//go:build !gocv

package video

import (
	"errors"
	"log/slog"
)

// ErrCaptureUnavailable is returned when the gocv backend is selected in a
// binary built without the gocv tag.
var ErrCaptureUnavailable = errors.New("gocv backend not compiled in; rebuild with -tags gocv")

func newCapture(float64, *slog.Logger) (Decoder, error) {
	return nil, ErrCaptureUnavailable
}
