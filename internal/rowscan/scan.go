package rowscan

import (
	"fmt"
	"image"

	"github.com/ironsheep/rankboard-ocr/internal/imaging"
)

// Probe is the vertical line sampled to find rows.
type Probe struct {
	X      int `json:"x"`
	YStart int `json:"y_start"`
	YEnd   int `json:"y_end"`
}

// Scanner locates leaderboard rows in a frame.
type Scanner struct {
	Probe        Probe
	Classifier   Classifier
	MinRowHeight int
}

// FrameScan is the result of scanning one frame.
type FrameScan struct {
	// All is every classified run along the probe, in position order.
	All []Bound `json:"all"`
	// Rows is the subset of All tall enough to be a leaderboard row.
	Rows []Bound `json:"rows"`
}

// NewScanner returns a scanner using the default classifier.
func NewScanner(probe Probe, minRowHeight int) *Scanner {
	return &Scanner{Probe: probe, Classifier: DefaultClassifier(), MinRowHeight: minRowHeight}
}

// Samples classifies every pixel on the probe line.
func (s *Scanner) Samples(img image.Image) ([]Sample, error) {
	colors, err := imaging.SampleColumn(img, s.Probe.X, s.Probe.YStart, s.Probe.YEnd)
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}
	samples := make([]Sample, len(colors))
	for i, c := range colors {
		samples[i] = Sample{Position: c.Y, Type: s.Classifier.Classify(c.Color)}
	}
	return samples, nil
}

// Scan segments the probe line of img and filters out bands too thin to be rows.
func (s *Scanner) Scan(img image.Image) (*FrameScan, error) {
	samples, err := s.Samples(img)
	if err != nil {
		return nil, err
	}
	all := Segment(samples)
	return &FrameScan{All: all, Rows: FilterBounds(all, s.MinRowHeight)}, nil
}
