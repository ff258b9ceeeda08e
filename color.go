package painterly

import (
	"image/color"
	"math"

	"github.com/esimov/painterly/utils"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// colorDistance returns the Euclidean distance of two colors in RGB space.
// Alpha is ignored.
func colorDistance(a, b color.NRGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// toHSV returns the hue, saturation and value of c, all in [0, 1].
func toHSV(c color.NRGBA) (h, s, v float64) {
	h, s, v = colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
	return h / 360, s, v
}

// fromHSV converts hue, saturation and value in [0, 1] back to RGB.
// A hue of 1 is the same as 0.
func fromHSV(h, s, v float64) (r, g, b uint8) {
	return colorful.Hsv(math.Mod(h*360, 360), s, v).Clamped().RGB255()
}

// jitterColor perturbs c first in HSV and then in RGB space using the style's
// jitter ranges, and applies the style's opacity.
// The RGB amounts are fractions of the channel range.
func jitterColor(c color.NRGBA, s Style, rnd Rand) color.NRGBA {
	h, sat, v := toHSV(c)

	h = utils.Clamp(h+jitter(rnd, s.HueJitter), 0, 1)
	sat = utils.Clamp(sat+jitter(rnd, s.SaturationJitter), 0, 1)
	v = utils.Clamp(v+jitter(rnd, s.ValueJitter), 0, 1)

	r, g, b := fromHSV(h, sat, v)

	channel := func(c uint8, amount float64) uint8 {
		return uint8(utils.Clamp(math.Round(float64(c)+jitter(rnd, amount*255)), 0, 255))
	}
	return color.NRGBA{
		R: channel(r, s.RedJitter),
		G: channel(g, s.GreenJitter),
		B: channel(b, s.BlueJitter),
		A: uint8(s.ColorOpacity),
	}
}
