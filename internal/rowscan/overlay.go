package rowscan

import (
	"image"

	"github.com/ironsheep/rankboard-ocr/internal/imaging"
)

// OverlayColor returns the outline color used for t on debug overlays.
func (t RowType) OverlayColor() string {
	switch t {
	case Heading:
		return "#FFFF00"
	case Light:
		return "#66FF33"
	case Dark:
		return "#FF00FF"
	case Personal:
		return "#00FFFF"
	}
	return "#FF0000"
}

// DrawRowBounds outlines every bound on a copy of img between x1 and x2.
// Each outline is inset one pixel from the bound edges so adjacent rows do not
// share a line.
func DrawRowBounds(img image.Image, bounds []Bound, x1, x2 int) *image.RGBA {
	bands := make([]imaging.Band, 0, len(bounds))
	for _, b := range bounds {
		bands = append(bands, imaging.Band{
			Y1:       b.Start + 1,
			Y2:       b.End - 1,
			Label:    string(b.Type),
			ColorHex: b.Type.OverlayColor(),
		})
	}
	return imaging.DrawBands(img, x1, x2, bands)
}
