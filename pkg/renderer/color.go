package renderer

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// maxChannel keeps quantized channels below 256
const maxChannel = 0.999

// RGB8 is a final 8-bit pixel color
type RGB8 struct {
	R, G, B uint8
}

// QuantizeColor turns an accumulated sample sum into an 8-bit color: average over
// samples, apply 1/gamma when gamma is positive and not 1, clamp to [0, 0.999] and
// scale by 256. NaN channels become 0.
func QuantizeColor(sum core.Color, samples int, gamma float64) RGB8 {
	scale := 1.0
	if samples > 0 {
		scale = 1.0 / float64(samples)
	}

	return RGB8{
		R: quantizeChannel(sum.X*scale, gamma),
		G: quantizeChannel(sum.Y*scale, gamma),
		B: quantizeChannel(sum.Z*scale, gamma),
	}
}

func quantizeChannel(c, gamma float64) uint8 {
	if math.IsNaN(c) || c <= 0 {
		return 0
	}
	if gamma > 0 && gamma != 1 {
		c = math.Pow(c, 1.0/gamma)
	}
	c = math.Min(c, maxChannel)
	return uint8(math.Floor(256 * c))
}
