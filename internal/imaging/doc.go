// Package imaging provides the pixel-level operations the leaderboard reader is
// built on.
//
// It covers sampling a frame along the vertical probe line, cutting table cells
// out of a frame, preparing cells for OCR, outlining detected rows on debug
// overlays and loading frames from disk. All operations work with standard Go
// image.Image types and use a coordinate system where (0,0) is at the top-left
// corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Probe spans passed to SampleColumn are inclusive at both ends
//   - For crop regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//   - Overlay bands are inclusive at both ends
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual image operations
// are stateless and can be called concurrently on different images. DrawBands
// never writes to its input.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Probe coordinates outside image bounds
//   - Crop regions that do not intersect the frame
//   - File I/O errors during image loading and saving
//   - Encoding errors during image output
package imaging
