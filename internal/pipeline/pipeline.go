package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/ironsheep/rankboard-ocr/internal/config"
	"github.com/ironsheep/rankboard-ocr/internal/consensus"
	"github.com/ironsheep/rankboard-ocr/internal/extract"
	"github.com/ironsheep/rankboard-ocr/internal/leaderboard"
	"github.com/ironsheep/rankboard-ocr/internal/logging"
	"github.com/ironsheep/rankboard-ocr/internal/ocr"
	"github.com/ironsheep/rankboard-ocr/internal/rowscan"
	"github.com/ironsheep/rankboard-ocr/internal/video"
)

// ErrNoFrames is returned when a source yields no frames at all.
var ErrNoFrames = errors.New("no frames decoded")

// Options configures a run.
type Options struct {
	Scanner *rowscan.Scanner
	Columns extract.Columns
	// NewRecognizer is called once per worker.
	NewRecognizer ocr.Factory
	// Workers is the number of frames processed at once. Values below one
	// mean one.
	Workers int
	// Start skips the beginning of the recording.
	Start  time.Duration
	Debug  extract.Debug
	Logger *slog.Logger
}

// OptionsFromConfig builds run options from cfg. The recognizer factory is
// not part of the configuration and must be supplied.
func OptionsFromConfig(cfg *config.Config, factory ocr.Factory, logger *slog.Logger) Options {
	return Options{
		Scanner: rowscan.NewScanner(rowscan.Probe{
			X:      cfg.Probe.X,
			YStart: cfg.Probe.YStart,
			YEnd:   cfg.Probe.YEnd,
		}, cfg.Probe.MinRowHeight),
		Columns:       extract.ColumnsFromConfig(cfg.Columns),
		NewRecognizer: factory,
		Workers:       cfg.Extract.Workers,
		Start:         cfg.StartOffsetDuration(),
		Debug: extract.Debug{
			Dir: cfg.Debug.Dir,
			X1:  cfg.Debug.OverlayX1,
			X2:  cfg.Debug.OverlayX2,
		},
		Logger: logger,
	}
}

// Result is the outcome of one run.
type Result struct {
	RunID  string            `json:"run_id"`
	Source string            `json:"source"`
	Frames int               `json:"frames"`
	Rows   []leaderboard.Row `json:"rows"`
	// Incomplete lists the ranking keys of rows missing at least one field.
	Incomplete []string                 `json:"incomplete"`
	Partials   []leaderboard.PartialRow `json:"-"`
	Summary    consensus.Summary        `json:"summary"`
}

type job struct {
	index int
	img   image.Image
}

// Run decodes source, extracts every frame and builds the consensus
// leaderboard. The first decode or OCR error cancels the run and is returned.
func Run(ctx context.Context, dec video.Decoder, source string, opts Options) (*Result, error) {
	if opts.Scanner == nil {
		return nil, errors.New("pipeline: scanner is required")
	}
	if opts.NewRecognizer == nil {
		return nil, errors.New("pipeline: recognizer factory is required")
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	runID := logging.NewRunID()
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.WithRun(logger, runID, source)

	processors, closeAll, err := newProcessors(workers, opts, logger)
	if err != nil {
		return nil, err
	}
	defer closeAll()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		firstErr error
		byFrame  = make(map[int][]leaderboard.PartialRow)
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	jobs := make(chan job)
	var wg sync.WaitGroup
	for w, proc := range processors {
		wg.Add(1)
		go func(worker int, proc *extract.FrameProcessor) {
			defer wg.Done()
			for j := range jobs {
				res, err := proc.Process(ctx, j.index, j.img)
				if err != nil {
					logger.Error("frame failed",
						slog.Int(logging.FieldWorker, worker),
						slog.Int(logging.FieldFrame, j.index),
						slog.String("error", err.Error()))
					fail(err)
					continue
				}
				mu.Lock()
				byFrame[j.index] = res.Rows
				mu.Unlock()
			}
		}(w, proc)
	}

	began := time.Now()
	frames := 0
	decodeErr := dec.Decode(ctx, source, opts.Start, func(index int, img image.Image) error {
		select {
		case jobs <- job{index: index, img: img}:
			frames++
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode %s: %w", source, decodeErr)
	}
	if frames == 0 {
		return nil, ErrNoFrames
	}

	partials := collect(byFrame)
	rows := consensus.Build(partials)
	incomplete := consensus.Incomplete(rows)
	for _, key := range incomplete {
		logger.Warn("incomplete leaderboard row", slog.String(logging.FieldRanking, key))
	}

	logger.Info("extraction finished",
		slog.Int("frames", frames),
		slog.Int("partials", len(partials)),
		slog.Int("rows", len(rows)),
		slog.Int("incomplete", len(incomplete)),
		slog.Int("workers", workers),
		slog.Duration("elapsed", time.Since(began)))

	return &Result{
		RunID:      runID,
		Source:     source,
		Frames:     frames,
		Rows:       rows,
		Incomplete: incomplete,
		Partials:   partials,
		Summary:    consensus.Summarize(rows, partials),
	}, nil
}

// newProcessors creates one frame processor per worker, each with its own
// recognizer. The returned func releases every recognizer that is an
// io.Closer.
func newProcessors(n int, opts Options, logger *slog.Logger) ([]*extract.FrameProcessor, func(), error) {
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Warn("close recognizer", slog.String("error", err.Error()))
			}
		}
	}

	processors := make([]*extract.FrameProcessor, 0, n)
	for i := 0; i < n; i++ {
		rec, err := opts.NewRecognizer()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("create recognizer: %w", err)
		}
		if c, ok := rec.(io.Closer); ok {
			closers = append(closers, c)
		}
		processors = append(processors, &extract.FrameProcessor{
			Scanner:   opts.Scanner,
			Extractor: extract.New(opts.Columns, rec, logger.With(slog.Int(logging.FieldWorker, i))),
			Debug:     opts.Debug,
		})
	}
	return processors, closeAll, nil
}

// collect flattens per-frame rows in frame order.
func collect(byFrame map[int][]leaderboard.PartialRow) []leaderboard.PartialRow {
	indexes := make([]int, 0, len(byFrame))
	for i := range byFrame {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	var partials []leaderboard.PartialRow
	for _, i := range indexes {
		partials = append(partials, byFrame[i]...)
	}
	return partials
}
