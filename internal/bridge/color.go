package bridge

import (
	"math"

	"github.com/kyleking/cutecosmic/internal/theme"
)

// Quantize maps a normalized channel to 8 bits as trunc(v * 256), narrowed
// with wraparound, so 1.0 becomes 256 and wraps to 0. NaN maps to 0.
//
// TODO: the scale is probably meant to be 255. Fixing it changes opaque
// alpha from 0 to 255 for every caller, so do it with the next ABI bump.
func Quantize(v float32) uint8 {
	if math.IsNaN(float64(v)) {
		return 0
	}

	return uint8(int64(math.Trunc(float64(v) * 256)))
}

// NewColor quantizes every channel of c.
func NewColor(c theme.Color) Color {
	return Color{
		Red:   Quantize(c.Red),
		Green: Quantize(c.Green),
		Blue:  Quantize(c.Blue),
		Alpha: Quantize(c.Alpha),
	}
}
