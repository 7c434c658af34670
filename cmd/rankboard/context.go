package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rankboard-ocr/internal/config"
	"github.com/ironsheep/rankboard-ocr/internal/logging"
	"github.com/ironsheep/rankboard-ocr/internal/ocr"
	"github.com/ironsheep/rankboard-ocr/internal/ocr/tesseract"
)

// newRecognizerFactory builds the OCR engine factory. Tests replace it.
var newRecognizerFactory = func(cfg *config.Config) ocr.Factory {
	return tesseract.NewFactory(tesseract.Config{
		Language:       cfg.OCR.Language,
		TessdataPrefix: cfg.OCR.TessdataPrefix,
		Scale:          cfg.OCR.Scale,
	})
}

func tesseractVersion() string {
	engine, err := tesseract.NewEngine(tesseract.Config{})
	if err != nil {
		return "unavailable"
	}
	defer engine.Close()
	return engine.Version()
}

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// logger builds a logger writing to w from the loaded configuration.
func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, w)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
