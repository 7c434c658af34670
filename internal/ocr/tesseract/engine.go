// Package tesseract implements ocr.Recognizer with the Tesseract engine via
// gosseract. Building it requires the Tesseract and Leptonica headers.
package tesseract

import (
	"fmt"
	"image"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/rankboard-ocr/internal/ocr"
)

// Config configures a Tesseract engine.
type Config struct {
	// Language is the Tesseract language code, e.g. "eng".
	Language string

	// TessdataPrefix is the directory holding *.traineddata files. Empty uses
	// the Tesseract installation default.
	TessdataPrefix string

	// Scale resizes cells before recognition. Values <= 0 or 1 leave cells untouched.
	Scale float64
}

// Engine provides OCR using a long-lived Tesseract client.
//
// A gosseract client is not safe for concurrent use; Engine serializes calls
// with a mutex. For parallel work create one Engine per goroutine.
type Engine struct {
	mu     sync.Mutex
	client *gosseract.Client
	scale  float64
}

// NewEngine creates a Tesseract engine for cfg.
func NewEngine(cfg Config) (*Engine, error) {
	client := gosseract.NewClient()

	if cfg.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(cfg.TessdataPrefix); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set tessdata prefix: %w", err)
		}
	}

	lang := cfg.Language
	if lang == "" {
		lang = "eng"
	}
	if err := client.SetLanguage(lang); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}

	return &Engine{client: client, scale: cfg.Scale}, nil
}

// NewFactory returns an ocr.Factory producing engines for cfg.
func NewFactory(cfg Config) ocr.Factory {
	return func() (ocr.Recognizer, error) {
		return NewEngine(cfg)
	}
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client != nil {
		err := e.client.Close()
		e.client = nil
		return err
	}
	return nil
}

// Version returns the linked Tesseract version.
func (e *Engine) Version() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client == nil {
		return ""
	}
	return e.client.Version()
}

// Recognize runs Tesseract on img.
func (e *Engine) Recognize(img image.Image, opts ocr.Options) (string, error) {
	data, err := ocr.Prepare(img, e.scale)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client == nil {
		return "", fmt.Errorf("OCR engine is closed")
	}

	if err := e.client.SetPageSegMode(pageSegMode(opts)); err != nil {
		return "", fmt.Errorf("failed to set PSM: %w", err)
	}
	if err := e.client.SetWhitelist(opts.Whitelist); err != nil {
		return "", fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := e.client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

func pageSegMode(opts ocr.Options) gosseract.PageSegMode {
	if opts.SingleLine {
		return gosseract.PSM_SINGLE_LINE
	}
	return gosseract.PSM_AUTO
}
