package extract

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/ironsheep/rankboard-ocr/internal/config"
	"github.com/ironsheep/rankboard-ocr/internal/leaderboard"
	"github.com/ironsheep/rankboard-ocr/internal/ocr"
	"github.com/ironsheep/rankboard-ocr/internal/rowscan"
)

// scriptedOCR returns its texts in call order and records the options it saw.
type scriptedOCR struct {
	mu    sync.Mutex
	texts []string
	calls []ocr.Options
	err   error
}

func (s *scriptedOCR) Recognize(img image.Image, opts ocr.Options) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	if _, ok := img.(*image.Gray); !ok {
		return "", errors.New("cell was not converted to grayscale")
	}
	s.calls = append(s.calls, opts)
	if len(s.texts) == 0 {
		return "", nil
	}
	text := s.texts[0]
	s.texts = s.texts[1:]
	return text, nil
}

// whitelistOCR answers by whitelist, so every row of a frame reads the same.
type whitelistOCR map[string]string

func (w whitelistOCR) Recognize(_ image.Image, opts ocr.Options) (string, error) {
	return w[opts.Whitelist], nil
}

func solidFrame(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{100, 100, 100, 255})
		}
	}
	return img
}

var testColumns = Columns{
	Ranking:    Column{Start: 0, End: 20},
	Nickname:   Column{Start: 20, End: 60},
	Points:     Column{Start: 60, End: 90},
	WinsLosses: Column{Start: 90, End: 120},
	WinPercent: Column{Start: 120, End: 150},
	Rating:     Column{Start: 150, End: 190},
}

func TestNormalizeFields(t *testing.T) {
	tests := []struct {
		name      string
		normalize func(string) leaderboard.Reading
		raw       string
		wantState leaderboard.ReadingState
		wantValue string
	}{
		{"points plain", NormalizePoints, "120", leaderboard.Accepted, "120"},
		{"points separator", NormalizePoints, " 1,200\n", leaderboard.Accepted, "1,200"},
		{"points leading comma", NormalizePoints, ",120", leaderboard.Rejected, ""},
		{"points trailing comma", NormalizePoints, "120,", leaderboard.Rejected, ""},
		{"points blank", NormalizePoints, "  \n", leaderboard.Unread, ""},
		{"wins losses", NormalizeWinsLosses, "10-2", leaderboard.Accepted, "10-2"},
		{"wins losses leading dash", NormalizeWinsLosses, "-2", leaderboard.Rejected, ""},
		{"wins losses trailing dash", NormalizeWinsLosses, "10-", leaderboard.Rejected, ""},
		{"win percent", NormalizeWinPercent, " 85% ", leaderboard.Accepted, "85%"},
		{"win percent doubled", NormalizeWinPercent, "85%%", leaderboard.Rejected, ""},
		{"win percent missing", NormalizeWinPercent, "85", leaderboard.Rejected, ""},
		{"win percent leading", NormalizeWinPercent, "%85", leaderboard.Rejected, ""},
		{"win percent inner", NormalizeWinPercent, "8%5%", leaderboard.Rejected, ""},
		{"win percent blank", NormalizeWinPercent, "", leaderboard.Unread, ""},
		{"rating", NormalizeRating, "\t2100\n", leaderboard.Accepted, "2100"},
		{"rating blank", NormalizeRating, "\n", leaderboard.Unread, ""},
		{"nickname", NormalizeNickname, "  Mario Bros \n", leaderboard.Accepted, "Mario Bros"},
		{"nickname composed", NormalizeNickname, "Jose\u0301", leaderboard.Accepted, "Jos\u00e9"},
		{"nickname blank", NormalizeNickname, " ", leaderboard.Unread, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.normalize(tt.raw)
			if got.State != tt.wantState {
				t.Fatalf("state: got %s, want %s", got.State, tt.wantState)
			}
			if got.Value != tt.wantValue {
				t.Errorf("value: got %q, want %q", got.Value, tt.wantValue)
			}
			if got.State == leaderboard.Rejected && got.Raw != strings.TrimSpace(tt.raw) {
				t.Errorf("raw: got %q, want %q", got.Raw, strings.TrimSpace(tt.raw))
			}
		})
	}
}

func TestNormalizeRanking(t *testing.T) {
	if key, ok := NormalizeRanking(" 12\n"); !ok || key != "12" {
		t.Errorf("got (%q, %v), want (12, true)", key, ok)
	}
	if _, ok := NormalizeRanking(" \n"); ok {
		t.Error("blank ranking should not produce a key")
	}
}

func TestExtractRow(t *testing.T) {
	rec := &scriptedOCR{texts: []string{"4\n", " Mario ", "1,200", "10-2", "85%%", "2100\n"}}
	e := New(testColumns, rec, nil)
	img := solidFrame(200, 100)

	row, err := e.ExtractRow(context.Background(), img, rowscan.Bound{Type: rowscan.Light, Start: 10, End: 60}, 7)
	if err != nil {
		t.Fatalf("ExtractRow failed: %v", err)
	}
	if row == nil {
		t.Fatal("expected a row")
	}

	if row.RankingKey != "4" || row.Frame != 7 {
		t.Errorf("key/frame: got %q/%d", row.RankingKey, row.Frame)
	}
	if row.Nickname.Value != "Mario" || row.Points.Value != "1,200" || row.WinsLosses.Value != "10-2" {
		t.Errorf("unexpected values: %+v", row)
	}
	if !row.WinPercent.IsNull() || row.WinPercent.State != leaderboard.Rejected {
		t.Errorf("win percent should be rejected: %+v", row.WinPercent)
	}
	if row.Rating.Value != "2100" {
		t.Errorf("rating: got %q", row.Rating.Value)
	}

	wantWhitelists := []string{
		ocr.Digits, "", ocr.DigitsWithComma, ocr.DigitsWithDash, ocr.DigitsWithPercent, ocr.Digits,
	}
	if len(rec.calls) != len(wantWhitelists) {
		t.Fatalf("OCR calls: got %d, want %d", len(rec.calls), len(wantWhitelists))
	}
	for i, want := range wantWhitelists {
		if rec.calls[i].Whitelist != want {
			t.Errorf("call %d whitelist: got %q, want %q", i, rec.calls[i].Whitelist, want)
		}
		if !rec.calls[i].SingleLine {
			t.Errorf("call %d should be single-line", i)
		}
	}
}

func TestExtractRow_BlankRankingSkipsRow(t *testing.T) {
	rec := &scriptedOCR{texts: []string{"  \n", "Mario"}}
	e := New(testColumns, rec, nil)

	row, err := e.ExtractRow(context.Background(), solidFrame(200, 100), rowscan.Bound{Start: 0, End: 50}, 0)
	if err != nil {
		t.Fatalf("ExtractRow failed: %v", err)
	}
	if row != nil {
		t.Errorf("expected no row, got %+v", row)
	}
	if len(rec.calls) != 1 {
		t.Errorf("only the ranking cell should be read, got %d calls", len(rec.calls))
	}
}

func TestExtractRow_OCRFailure(t *testing.T) {
	boom := errors.New("tesseract crashed")
	e := New(testColumns, &scriptedOCR{err: boom}, nil)

	_, err := e.ExtractRow(context.Background(), solidFrame(200, 100), rowscan.Bound{Start: 0, End: 50}, 0)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped OCR error, got %v", err)
	}
	if !strings.Contains(err.Error(), "ranking") {
		t.Errorf("error should name the cell: %v", err)
	}
}

func TestExtractRow_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(testColumns, &scriptedOCR{texts: []string{"1"}}, nil)
	_, err := e.ExtractRow(ctx, solidFrame(200, 100), rowscan.Bound{Start: 0, End: 50}, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestExtractRows(t *testing.T) {
	rec := &scriptedOCR{texts: []string{
		"1", "Peach", "900", "9-1", "90%", "2000",
		"",
		"3", "Daisy", "700", "7-3", "70%", "1800",
	}}
	e := New(testColumns, rec, nil)
	bounds := []rowscan.Bound{
		{Type: rowscan.Personal, Start: 0, End: 40},
		{Type: rowscan.Dark, Start: 40, End: 80},
		{Type: rowscan.Light, Start: 80, End: 120},
	}

	rows, err := e.ExtractRows(context.Background(), solidFrame(200, 130), bounds, 2)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].RankingKey != "1" || rows[1].RankingKey != "3" {
		t.Errorf("keys: got %q, %q", rows[0].RankingKey, rows[1].RankingKey)
	}
}

func TestFrameProcessor_Process(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	bands := []color.RGBA{{0, 0, 0, 255}, {100, 100, 100, 255}, {40, 40, 40, 255}}
	for i, c := range bands {
		for y := i * 50; y < (i+1)*50; y++ {
			for x := 0; x < 200; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}

	rec := whitelistOCR{
		ocr.Digits:            "3",
		"":                    "Luigi",
		ocr.DigitsWithComma:   "500",
		ocr.DigitsWithDash:    "5-5",
		ocr.DigitsWithPercent: "50%",
	}
	dir := t.TempDir()
	p := &FrameProcessor{
		Scanner:   rowscan.NewScanner(rowscan.Probe{X: 5, YStart: 0, YEnd: 149}, 40),
		Extractor: New(testColumns, rec, nil),
		Debug:     Debug{Dir: dir, X1: 2, X2: 197},
	}

	result, err := p.Process(context.Background(), 12, img)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(result.Bounds) != 3 {
		t.Fatalf("bounds: got %v, want 3 retained", result.Bounds)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(result.Rows))
	}
	for _, row := range result.Rows {
		if row.Frame != 12 || row.RankingKey != "3" || row.Nickname.Value != "Luigi" {
			t.Errorf("unexpected row: %+v", row)
		}
	}

	if result.Overlay != OverlayPath(dir, 12) {
		t.Errorf("overlay path: got %q", result.Overlay)
	}
	if _, err := os.Stat(result.Overlay); err != nil {
		t.Errorf("overlay not written: %v", err)
	}
}

func TestColumnsFromConfig(t *testing.T) {
	cfg := config.Default()
	cols := ColumnsFromConfig(cfg.Columns)

	if cols.Ranking != (Column{Start: 37, End: 161}) {
		t.Errorf("ranking: got %+v", cols.Ranking)
	}
	if cols.WinPercent != (Column{Start: 935, End: 1020}) {
		t.Errorf("win percent: got %+v", cols.WinPercent)
	}
	if cols.Rating != (Column{Start: 1024, End: 1218}) {
		t.Errorf("rating: got %+v", cols.Rating)
	}
}

func TestColumns_Lookup(t *testing.T) {
	tests := []struct {
		name string
		want Column
		ok   bool
	}{
		{"ranking", testColumns.Ranking, true},
		{"nickname", testColumns.Nickname, true},
		{"win_percent", testColumns.WinPercent, true},
		{"rating", testColumns.Rating, true},
		{"avatar", Column{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := testColumns.Lookup(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Lookup(%q) = %+v, %v; want %+v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}
