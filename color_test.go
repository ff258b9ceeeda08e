package painterly

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Distance(t *testing.T) {
	black := color.NRGBA{A: 0xff}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff}

	assert.Equal(t, 0.0, colorDistance(black, black))
	assert.InDelta(t, 255*math.Sqrt(3), colorDistance(black, white), 1e-9)
	assert.Equal(t, 5.0, colorDistance(color.NRGBA{R: 3, G: 4}, color.NRGBA{}))
}

func TestColor_HSV(t *testing.T) {
	h, s, v := toHSV(color.NRGBA{R: 255})
	assert.Equal(t, [3]float64{0, 1, 1}, [3]float64{h, s, v})

	h, s, v = toHSV(color.NRGBA{B: 255})
	assert.InDelta(t, 2.0/3, h, 1e-9)
	assert.Equal(t, 1.0, s)
	assert.Equal(t, 1.0, v)

	_, s, v = toHSV(color.NRGBA{})
	assert.Zero(t, s)
	assert.Zero(t, v)

	for _, c := range []color.NRGBA{
		{R: 255, G: 0, B: 0},
		{R: 12, G: 200, B: 99},
		{R: 250, G: 121, B: 17},
		{R: 214, G: 20, B: 65},
		{R: 128, G: 128, B: 128},
		{R: 1, G: 2, B: 3},
	} {
		r, g, b := fromHSV(toHSV(c))
		assert.Equal(t, c, color.NRGBA{R: r, G: g, B: b}, "round trip of %v", c)
	}

	// The hue wraps around.
	r, g, b := fromHSV(1, 1, 1)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
}

func TestColor_JitterDisabled(t *testing.T) {
	c := color.NRGBA{R: 12, G: 200, B: 99, A: 0xff}
	s := ImpressionistStyle
	s.ColorOpacity = 77

	got := jitterColor(c, s, NewRand(1))
	assert.Equal(t, color.NRGBA{R: 12, G: 200, B: 99, A: 77}, got)
}

func TestColor_JitterRGB(t *testing.T) {
	s := ImpressionistStyle
	s.RedJitter = 0.2
	s.BlueJitter = 1

	// Every jitter draw moves the channel by a quarter of its range.
	got := jitterColor(color.NRGBA{R: 100, G: 100, B: 250}, s, stubRand{f: 0.75})
	assert.Equal(t, color.NRGBA{R: 113, G: 100, B: 255, A: 255}, got)
}

func TestColor_JitterHSVClamped(t *testing.T) {
	s := ImpressionistStyle
	s.ValueJitter = 4

	got := jitterColor(color.NRGBA{R: 100, G: 100, B: 100}, s, stubRand{f: 0.99})
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, got)

	got = jitterColor(color.NRGBA{R: 100, G: 100, B: 100}, s, stubRand{f: 0})
	assert.Equal(t, color.NRGBA{A: 255}, got)
}
