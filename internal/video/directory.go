package video

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ironsheep/rankboard-ocr/internal/imaging"
)

// Directory decodes a directory of already-extracted frame images. Frames are
// delivered in file name order; start is ignored because file names carry no
// timestamps.
type Directory struct {
	Logger *slog.Logger
}

// Decode implements Decoder.
func (d *Directory) Decode(ctx context.Context, source string, _ time.Duration, fn FrameFunc) error {
	paths, err := imaging.ListFrames(source)
	if err != nil {
		return fmt.Errorf("list frames: %w", err)
	}
	if d.Logger != nil {
		d.Logger.Debug("decoding frame directory", slog.String("dir", source), slog.Int("frames", len(paths)))
	}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := imaging.LoadFrame(path)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		more, err := deliver(fn, i, img)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return nil
}
