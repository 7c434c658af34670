package rowscan

// FilterBounds keeps the bounds at least minHeight tall, in their original order.
// Thin bands are separators, borders and anti-aliasing fringes, not rows.
func FilterBounds(bounds []Bound, minHeight int) []Bound {
	kept := make([]Bound, 0, len(bounds))
	for _, b := range bounds {
		if b.Height() >= minHeight {
			kept = append(kept, b)
		}
	}
	return kept
}
