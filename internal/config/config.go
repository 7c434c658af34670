package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Probe describes the vertical sampling line used to find rows.
type Probe struct {
	X            int `toml:"x"`
	YStart       int `toml:"y_start"`
	YEnd         int `toml:"y_end"`
	MinRowHeight int `toml:"min_row_height"`
}

// Column is a horizontal pixel window; Start is inclusive, End exclusive.
type Column struct {
	Start int `toml:"start"`
	End   int `toml:"end"`
}

// Columns holds the x-range of every leaderboard column.
type Columns struct {
	Ranking    Column `toml:"ranking"`
	Nickname   Column `toml:"nickname"`
	Points     Column `toml:"points"`
	WinsLosses Column `toml:"wins_losses"`
	WinPercent Column `toml:"win_percent"`
	Rating     Column `toml:"rating"`
}

// Video contains frame decoding settings.
type Video struct {
	// Backend is one of "ffmpeg", "directory" or "gocv".
	Backend      string `toml:"backend"`
	FFmpegBinary string `toml:"ffmpeg_binary"`
	// StartOffset skips the intro of each recording, e.g. "9s".
	StartOffset string `toml:"start_offset"`
	// SampleFPS thins frames before extraction. 0 keeps every decoded frame.
	SampleFPS float64 `toml:"sample_fps"`
}

// OCR contains Tesseract settings.
type OCR struct {
	Language       string  `toml:"language"`
	TessdataPrefix string  `toml:"tessdata_prefix"`
	Scale          float64 `toml:"scale"`
}

// Extract contains extraction concurrency settings.
type Extract struct {
	Workers int `toml:"workers"`
}

// Debug contains diagnostic overlay settings.
type Debug struct {
	// Dir receives one overlay PNG per frame when set.
	Dir       string `toml:"dir"`
	OverlayX1 int    `toml:"overlay_x1"`
	OverlayX2 int    `toml:"overlay_x2"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for rankboard.
//
// Configuration sections by subsystem:
//   - Probe: row detection probe line and minimum row height
//   - Columns: cell windows for each leaderboard column
//   - Video: frame decoding backend and sampling
//   - OCR: Tesseract language, data path and cell scaling
//   - Extract: worker count
//   - Debug: overlay output
//   - Logging: log format and level
type Config struct {
	Probe   Probe   `toml:"probe"`
	Columns Columns `toml:"columns"`
	Video   Video   `toml:"video"`
	OCR     OCR     `toml:"ocr"`
	Extract Extract `toml:"extract"`
	Debug   Debug   `toml:"debug"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file.
//
// It returns the config, the path that was consulted and whether that file
// existed. A missing file is not an error; defaults are used instead.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Parse decodes TOML data over the defaults, then normalizes and validates.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := ExpandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// StartOffsetDuration returns video.start_offset as a duration.
// The value has already been checked by Validate.
func (c *Config) StartOffsetDuration() time.Duration {
	d, err := time.ParseDuration(c.Video.StartOffset)
	if err != nil {
		return 0
	}
	return d
}

// ExpandPath resolves a leading ~ and returns an absolute path. Empty stays empty.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// SampleConfig returns the embedded sample configuration.
func SampleConfig() string {
	return sampleConfig
}
