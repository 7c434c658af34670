package extract

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/ironsheep/rankboard-ocr/internal/imaging"
	"github.com/ironsheep/rankboard-ocr/internal/leaderboard"
	"github.com/ironsheep/rankboard-ocr/internal/logging"
	"github.com/ironsheep/rankboard-ocr/internal/rowscan"
)

// Debug configures per-frame overlay output.
type Debug struct {
	// Dir receives frame-NNNNN.png overlays. Empty disables overlays.
	Dir string
	// X1 and X2 are the horizontal extent of the outlines.
	X1, X2 int
}

// FrameResult is everything read from one frame.
type FrameResult struct {
	Frame   int                      `json:"frame"`
	Bounds  []rowscan.Bound          `json:"bounds"`
	Rows    []leaderboard.PartialRow `json:"rows"`
	Overlay string                   `json:"overlay,omitempty"`
}

// FrameProcessor locates and reads the rows of single frames.
type FrameProcessor struct {
	Scanner   *rowscan.Scanner
	Extractor *Extractor
	Debug     Debug
}

// Process scans img, writes the debug overlay when enabled and extracts every
// retained row.
func (p *FrameProcessor) Process(ctx context.Context, frame int, img image.Image) (*FrameResult, error) {
	scan, err := p.Scanner.Scan(img)
	if err != nil {
		return nil, fmt.Errorf("frame %d: %w", frame, err)
	}

	result := &FrameResult{Frame: frame, Bounds: scan.Rows}

	if p.Debug.Dir != "" {
		path := OverlayPath(p.Debug.Dir, frame)
		overlay := rowscan.DrawRowBounds(img, scan.All, p.Debug.X1, p.Debug.X2)
		if err := imaging.SaveImage(overlay, path); err != nil {
			return nil, fmt.Errorf("frame %d overlay: %w", frame, err)
		}
		result.Overlay = path
	}

	rows, err := p.Extractor.ExtractRows(ctx, img, scan.Rows, frame)
	if err != nil {
		return nil, fmt.Errorf("frame %d: %w", frame, err)
	}
	result.Rows = rows

	p.Extractor.Logger.Debug("frame extracted",
		slog.Int(logging.FieldFrame, frame),
		slog.Int("bounds", len(scan.All)),
		slog.Int("retained", len(scan.Rows)),
		slog.Int("rows", len(rows)))
	return result, nil
}

// OverlayPath returns the overlay file name for frame inside dir.
func OverlayPath(dir string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("frame-%05d.png", frame))
}
