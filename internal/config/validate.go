package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateProbe(); err != nil {
		return err
	}
	if err := c.validateColumns(); err != nil {
		return err
	}
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validateOCR(); err != nil {
		return err
	}
	if c.Extract.Workers < 1 {
		return errors.New("extract.workers must be at least 1")
	}
	if c.Debug.OverlayX1 > c.Debug.OverlayX2 {
		return errors.New("debug.overlay_x1 must not exceed debug.overlay_x2")
	}
	return c.validateLogging()
}

func (c *Config) validateProbe() error {
	if c.Probe.X < 0 || c.Probe.YStart < 0 {
		return errors.New("probe.x and probe.y_start must be non-negative")
	}
	if c.Probe.YStart > c.Probe.YEnd {
		return errors.New("probe.y_start must not exceed probe.y_end")
	}
	if c.Probe.MinRowHeight < 1 {
		return errors.New("probe.min_row_height must be at least 1")
	}
	return nil
}

func (c *Config) validateColumns() error {
	columns := []struct {
		key string
		col Column
	}{
		{"columns.ranking", c.Columns.Ranking},
		{"columns.nickname", c.Columns.Nickname},
		{"columns.points", c.Columns.Points},
		{"columns.wins_losses", c.Columns.WinsLosses},
		{"columns.win_percent", c.Columns.WinPercent},
		{"columns.rating", c.Columns.Rating},
	}
	for _, entry := range columns {
		if entry.col.Start < 0 {
			return fmt.Errorf("%s.start must be non-negative", entry.key)
		}
		if entry.col.End <= entry.col.Start {
			return fmt.Errorf("%s.end must be greater than %s.start", entry.key, entry.key)
		}
	}
	return nil
}

func (c *Config) validateVideo() error {
	switch c.Video.Backend {
	case BackendFFmpeg, BackendDirectory, BackendGoCV:
	default:
		return fmt.Errorf("video.backend must be one of %q, %q or %q, got %q",
			BackendFFmpeg, BackendDirectory, BackendGoCV, c.Video.Backend)
	}
	d, err := time.ParseDuration(c.Video.StartOffset)
	if err != nil {
		return fmt.Errorf("video.start_offset: %w", err)
	}
	if d < 0 {
		return errors.New("video.start_offset must be non-negative")
	}
	if c.Video.SampleFPS < 0 {
		return errors.New("video.sample_fps must be non-negative")
	}
	return nil
}

func (c *Config) validateOCR() error {
	if c.OCR.Scale <= 0 {
		return errors.New("ocr.scale must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
