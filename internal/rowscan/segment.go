package rowscan

import "sort"

// Sample is one classified position on the probe line.
type Sample struct {
	Position int
	Type     RowType
}

// Bound is a maximal run of equally classified probe positions.
type Bound struct {
	Type  RowType `json:"type"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// Height returns End - Start.
func (b Bound) Height() int {
	return b.End - b.Start
}

// SeparatorThickness is how far a run is stretched past its last sample when
// the next run begins. Rows on the ranking screen are divided by a one-pixel
// line that the probe classifies as the following row; stretching the run
// gives each row back the separator below it.
const SeparatorThickness = 1

// closeOnTransition ends b when a sample of a different type appears at y.
// The run's last matching sample is y-1.
func closeOnTransition(b Bound, y int) Bound {
	b.End = y - 1 + SeparatorThickness
	return b
}

// closeAtRangeEnd ends b at the last probed position, without stretching.
func closeAtRangeEnd(b Bound, last int) Bound {
	b.End = last
	return b
}

// Segment groups consecutive samples of the same type into bounds.
//
// Samples are processed by increasing position; the input is not modified.
// The result is contiguous: each bound starts where the previous one ended,
// the first starts at the smallest position and the last ends at the largest.
// Empty input yields no bounds.
func Segment(samples []Sample) []Bound {
	if len(samples) == 0 {
		return nil
	}

	ordered := samples
	if !sort.SliceIsSorted(samples, func(i, j int) bool { return samples[i].Position < samples[j].Position }) {
		ordered = make([]Sample, len(samples))
		copy(ordered, samples)
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })
	}

	var bounds []Bound
	open := Bound{Type: ordered[0].Type, Start: ordered[0].Position}
	for _, s := range ordered[1:] {
		if s.Type == open.Type {
			continue
		}
		bounds = append(bounds, closeOnTransition(open, s.Position))
		open = Bound{Type: s.Type, Start: s.Position}
	}
	bounds = append(bounds, closeAtRangeEnd(open, ordered[len(ordered)-1].Position))
	return bounds
}
