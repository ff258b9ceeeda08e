package painterly

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func TestDraw_Dot(t *testing.T) {
	l := newTestLayer(ImpressionistStyle, sampleImage(20, 20), NewRand(1))

	assert.False(t, l.render([]Point{{10, 10}}, red, 4), "dots are disabled")
	assert.Zero(t, l.mask.Count())

	l.drawDots = true
	assert.True(t, l.render([]Point{{10, 10}}, red, 4))

	assert.Equal(t, red, l.output.NRGBAAt(10, 10))
	assert.True(t, l.mask.Covered(10, 10))
	assert.True(t, l.mask.Covered(11, 10))
	assert.False(t, l.mask.Covered(15, 10))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, l.output.NRGBAAt(0, 0))
	assert.True(t, l.mask.Covered(12, 10), "the fringe pixels are touched")
	assert.False(t, l.mask.Covered(13, 10))
	assert.LessOrEqual(t, l.mask.Count(), 25, "the dot stays within its 5x5 box")
}

func TestDraw_Line(t *testing.T) {
	l := newTestLayer(ImpressionistStyle, sampleImage(20, 20), NewRand(1))

	assert.True(t, l.render([]Point{{3, 10}, {16, 10}}, red, 2))

	for x := 3; x <= 16; x++ {
		assert.Equal(t, red, l.output.NRGBAAt(x, 10), "pixel (%d, 10)", x)
		assert.True(t, l.mask.Covered(x, 10), "pixel (%d, 10)", x)
	}
	assert.False(t, l.mask.Covered(10, 13))
	assert.False(t, l.mask.Covered(10, 7))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, l.output.NRGBAAt(10, 14))
}

func TestDraw_Translucent(t *testing.T) {
	l := newTestLayer(ImpressionistStyle, sampleImage(20, 20), NewRand(1))

	l.render([]Point{{3, 10}, {16, 10}}, color.NRGBA{R: 0xff, A: 0x80}, 4)

	c := l.output.NRGBAAt(10, 10)
	assert.Equal(t, uint8(0xff), c.R)
	assert.Equal(t, uint8(0xff), c.A)
	assert.InDelta(t, 0x7f, int(c.G), 1)
	assert.Equal(t, c.G, c.B)
}

func TestDraw_ClippedStroke(t *testing.T) {
	l := newTestLayer(ImpressionistStyle, sampleImage(10, 10), NewRand(1))

	assert.True(t, l.render([]Point{{0, 0}, {0, 9}}, red, 6))
	assert.Equal(t, red, l.output.NRGBAAt(0, 5))
	assert.Equal(t, red, l.output.NRGBAAt(2, 5))
	assert.False(t, l.mask.Covered(6, 5))
}

func TestDraw_SmoothPath(t *testing.T) {
	path := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	line := smoothPath(path)

	// The spline passes through every point of the path.
	assert.Equal(t, path[0], line[0])
	for _, p := range path[1:] {
		assert.Contains(t, line, p)
	}
	assert.Equal(t, path[len(path)-1], line[len(line)-1])
	assert.GreaterOrEqual(t, len(line), 30)

	// Straight paths stay straight.
	for _, p := range smoothPath([]Point{{0, 5}, {4, 5}, {8, 5}}) {
		assert.InDelta(t, 5, p.Y, 1e-9)
	}
}

func TestDraw_StrokeBounds(t *testing.T) {
	r := strokeBounds([]Point{{2, 3}, {8, 1}}, 2)
	assert.Equal(t, image.Rect(-1, -2, 12, 7), r)
}
