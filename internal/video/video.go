package video

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/ironsheep/rankboard-ocr/internal/config"
	"github.com/ironsheep/rankboard-ocr/internal/logging"
)

// ErrStop may be returned by a FrameFunc to end decoding early without error.
var ErrStop = errors.New("stop decoding")

// FrameFunc receives each decoded frame. index counts from zero in decoding
// order. Returning a non-nil error stops decoding.
type FrameFunc func(index int, img image.Image) error

// Decoder produces the frames of a source.
type Decoder interface {
	// Decode calls fn for every frame of source at or after start.
	Decode(ctx context.Context, source string, start time.Duration, fn FrameFunc) error
}

// New returns the decoder selected by cfg.Backend.
func New(cfg config.Video, logger *slog.Logger) (Decoder, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	switch cfg.Backend {
	case config.BackendFFmpeg, "":
		return &FFmpeg{Binary: cfg.FFmpegBinary, FPS: cfg.SampleFPS, Logger: logger}, nil
	case config.BackendDirectory:
		return &Directory{Logger: logger}, nil
	case config.BackendGoCV:
		return newCapture(cfg.SampleFPS, logger)
	default:
		return nil, fmt.Errorf("unknown video backend %q", cfg.Backend)
	}
}

// deliver calls fn and translates ErrStop into a clean stop.
func deliver(fn FrameFunc, index int, img image.Image) (bool, error) {
	if err := fn(index, img); err != nil {
		if errors.Is(err, ErrStop) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
