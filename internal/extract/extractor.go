package extract

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/ironsheep/rankboard-ocr/internal/imaging"
	"github.com/ironsheep/rankboard-ocr/internal/leaderboard"
	"github.com/ironsheep/rankboard-ocr/internal/logging"
	"github.com/ironsheep/rankboard-ocr/internal/ocr"
	"github.com/ironsheep/rankboard-ocr/internal/rowscan"
)

// Extractor reads the cells of leaderboard rows.
//
// An Extractor keeps no state between calls. It is as safe for concurrent use
// as its Recognizer.
type Extractor struct {
	Columns Columns
	OCR     ocr.Recognizer
	Logger  *slog.Logger
}

// New returns an Extractor. A nil logger discards output.
func New(columns Columns, rec ocr.Recognizer, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Extractor{Columns: columns, OCR: rec, Logger: logger}
}

// ExtractRow reads one row of img bounded vertically by bound.
//
// The ranking cell is read first. When it comes back blank the row has no key
// and ExtractRow returns nil without reading the other cells. Any OCR failure
// is returned as an error; validation failures are not errors and show up as
// Rejected readings.
func (e *Extractor) ExtractRow(ctx context.Context, img image.Image, bound rowscan.Bound, frame int) (*leaderboard.PartialRow, error) {
	raw, err := e.readCell(img, e.Columns.Ranking, bound, rankingWhitelist)
	if err != nil {
		return nil, fmt.Errorf("ocr ranking cell: %w", err)
	}
	key, ok := NormalizeRanking(raw)
	if !ok {
		e.Logger.Debug("row without ranking dropped",
			slog.Int(logging.FieldFrame, frame),
			slog.Int("start", bound.Start),
			slog.Int("end", bound.End))
		return nil, nil
	}

	row := &leaderboard.PartialRow{RankingKey: key, Frame: frame}
	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := e.readCell(img, f.column(e.Columns), bound, f.whitelist)
		if err != nil {
			return nil, fmt.Errorf("ocr %s cell: %w", f.name, err)
		}
		reading := f.normalize(raw)
		if reading.State == leaderboard.Rejected {
			e.Logger.Debug("field rejected",
				slog.Int(logging.FieldFrame, frame),
				slog.String(logging.FieldRanking, key),
				slog.String("field", string(f.name)),
				slog.String("raw", reading.Raw))
		}
		row.Set(f.name, reading)
	}
	return row, nil
}

// ExtractRows reads every bound of one frame in order, skipping rows without
// a ranking.
func (e *Extractor) ExtractRows(ctx context.Context, img image.Image, bounds []rowscan.Bound, frame int) ([]leaderboard.PartialRow, error) {
	rows := make([]leaderboard.PartialRow, 0, len(bounds))
	for _, b := range bounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := e.ExtractRow(ctx, img, b, frame)
		if err != nil {
			return nil, err
		}
		if row != nil {
			rows = append(rows, *row)
		}
	}
	return rows, nil
}

func (e *Extractor) readCell(img image.Image, col Column, bound rowscan.Bound, whitelist string) (string, error) {
	cell, err := imaging.CropCell(img, col.Start, bound.Start, col.End, bound.End)
	if err != nil {
		return "", err
	}
	return e.OCR.Recognize(imaging.Grayscale(cell), ocr.Options{Whitelist: whitelist, SingleLine: true})
}
