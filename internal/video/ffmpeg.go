package video

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ironsheep/rankboard-ocr/internal/logging"
)

const framePattern = "out%05d.png"

var commandContext = exec.CommandContext

// FFmpeg decodes recordings with the ffmpeg binary.
type FFmpeg struct {
	// Binary is the ffmpeg executable. Empty means "ffmpeg" on PATH.
	Binary string
	// FPS thins the output to this rate when positive.
	FPS float64
	// TempDir is the parent of the scratch directory. Empty uses os.TempDir.
	TempDir string
	Logger  *slog.Logger
}

// Args returns the ffmpeg arguments that write the frames of source, starting
// at start, to pattern.
func (f *FFmpeg) Args(source, pattern string, start time.Duration) []string {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-ss", formatTimestamp(start),
	}
	if f.FPS > 0 {
		args = append(args, "-vf", "fps="+strconv.FormatFloat(f.FPS, 'f', -1, 64))
	}
	return append(args, pattern)
}

// Decode implements Decoder. Frames are written to a scratch directory that
// is removed before Decode returns.
func (f *FFmpeg) Decode(ctx context.Context, source string, start time.Duration, fn FrameFunc) error {
	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("video source: %w", err)
	}

	dir, err := os.MkdirTemp(f.TempDir, "rankboard-frames-")
	if err != nil {
		return fmt.Errorf("create frame dir: %w", err)
	}
	defer os.RemoveAll(dir)

	binary := f.Binary
	if binary == "" {
		binary = "ffmpeg"
	}
	args := f.Args(source, filepath.Join(dir, framePattern), start)

	logger := f.logger()
	logger.Debug("extracting frames", slog.String("binary", binary), slog.String("args", strings.Join(args, " ")))

	began := time.Now()
	cmd := commandContext(ctx, binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("ffmpeg decode: %w: %s", err, strings.TrimSpace(string(output)))
	}
	logger.Debug("frames extracted", slog.Duration("elapsed", time.Since(began)))

	return (&Directory{Logger: logger}).Decode(ctx, dir, 0, fn)
}

func (f *FFmpeg) logger() *slog.Logger {
	if f.Logger == nil {
		return logging.NewNop()
	}
	return f.Logger
}

// formatTimestamp renders d as HH:MM:SS.mmm.
func formatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	h := ms / 3_600_000
	ms -= h * 3_600_000
	m := ms / 60_000
	ms -= m * 60_000
	s := ms / 1000
	ms -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
