package tesseract

import (
	"image"
	"testing"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/rankboard-ocr/internal/ocr"
)

func TestPageSegMode(t *testing.T) {
	tests := []struct {
		name string
		opts ocr.Options
		want gosseract.PageSegMode
	}{
		{"single line", ocr.Options{SingleLine: true, Whitelist: ocr.Digits}, gosseract.PSM_SINGLE_LINE},
		{"default", ocr.Options{}, gosseract.PSM_AUTO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pageSegMode(tt.opts); got != tt.want {
				t.Errorf("pageSegMode: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_ClosedEngine(t *testing.T) {
	e := &Engine{}
	if err := e.Close(); err != nil {
		t.Errorf("Close on an engine without a client: %v", err)
	}
	if v := e.Version(); v != "" {
		t.Errorf("Version: got %q, want empty", v)
	}
	if _, err := e.Recognize(image.NewRGBA(image.Rect(0, 0, 0, 0)), ocr.Options{}); err == nil {
		t.Error("Recognize should fail on an empty image")
	}
	if _, err := e.Recognize(image.NewRGBA(image.Rect(0, 0, 10, 10)), ocr.Options{}); err == nil {
		t.Error("Recognize should fail on a closed engine")
	}
}
