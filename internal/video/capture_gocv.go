//go:build gocv

package video

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gocv.io/x/gocv"
)

// Capture decodes recordings through OpenCV.
type Capture struct {
	// FPS thins the output to roughly this rate when positive.
	FPS    float64
	Logger *slog.Logger
}

func newCapture(fps float64, logger *slog.Logger) (Decoder, error) {
	return &Capture{FPS: fps, Logger: logger}, nil
}

// Decode implements Decoder.
func (c *Capture) Decode(ctx context.Context, source string, start time.Duration, fn FrameFunc) error {
	vc, err := gocv.VideoCaptureFile(source)
	if err != nil {
		return fmt.Errorf("open video: %w", err)
	}
	defer vc.Close()

	if start > 0 {
		vc.Set(gocv.VideoCapturePosMsec, float64(start.Milliseconds()))
	}

	step := 1
	if srcFPS := vc.Get(gocv.VideoCaptureFPS); c.FPS > 0 && srcFPS > c.FPS {
		step = int(math.Round(srcFPS / c.FPS))
	}
	if c.Logger != nil {
		c.Logger.Debug("decoding with opencv", slog.String("source", source), slog.Int("step", step))
	}

	mat := gocv.NewMat()
	defer mat.Close()

	index := 0
	for read := 0; ; read++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ok := vc.Read(&mat); !ok || mat.Empty() {
			return nil
		}
		if read%step != 0 {
			continue
		}
		img, err := mat.ToImage()
		if err != nil {
			return fmt.Errorf("frame %d: %w", index, err)
		}
		more, err := deliver(fn, index, img)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		index++
	}
}
