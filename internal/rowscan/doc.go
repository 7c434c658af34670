// Package rowscan finds leaderboard rows in a frame by walking a vertical
// probe line.
//
// Each pixel on the probe is labeled with a RowType by a Classifier, runs of
// equal labels become Bounds (Segment), and runs too thin to hold text are
// dropped (FilterBounds). Scanner ties the three steps to a configured probe.
//
// Bounds from one frame tile the probed range: the first starts at the top of
// the probe, each following bound starts where the previous one ended, and the
// last ends at the bottom of the probe. A run that is followed by another run
// is stretched by SeparatorThickness; the final run is not.
package rowscan
