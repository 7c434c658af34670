package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeVideo()
	c.normalizeOCR()
	if c.Extract.Workers == 0 {
		c.Extract.Workers = defaultWorkers
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeVideo() {
	c.Video.Backend = strings.ToLower(strings.TrimSpace(c.Video.Backend))
	if c.Video.Backend == "" {
		c.Video.Backend = defaultBackend
	}
	c.Video.FFmpegBinary = strings.TrimSpace(c.Video.FFmpegBinary)
	if c.Video.FFmpegBinary == "" {
		c.Video.FFmpegBinary = defaultFFmpeg
	}
	c.Video.StartOffset = strings.TrimSpace(c.Video.StartOffset)
	if c.Video.StartOffset == "" {
		c.Video.StartOffset = "0s"
	}
}

func (c *Config) normalizeOCR() {
	c.OCR.Language = strings.TrimSpace(c.OCR.Language)
	if c.OCR.Language == "" {
		c.OCR.Language = defaultLanguage
	}
	if c.OCR.Scale == 0 {
		c.OCR.Scale = defaultScale
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if c.OCR.TessdataPrefix, err = ExpandPath(strings.TrimSpace(c.OCR.TessdataPrefix)); err != nil {
		return fmt.Errorf("ocr.tessdata_prefix: %w", err)
	}
	if c.Debug.Dir, err = ExpandPath(strings.TrimSpace(c.Debug.Dir)); err != nil {
		return fmt.Errorf("debug.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
