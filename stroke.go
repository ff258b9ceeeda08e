package painterly

import (
	"image/color"
	"math"
)

// Point is a position on the canvas in pixel units.
type Point struct {
	X, Y float64
}

// trace grows a stroke from the seed along the isophote, i.e. perpendicular
// to the local gradient. The path always contains the seed and never more
// than MaxStrokeLength points. Growth stops when the stroke color would no
// longer improve the canvas, on flat regions, and at the canvas border.
func (l *layer) trace(seed Seed, brushSize float64, col color.NRGBA) []Point {
	width, height := float64(l.output.Bounds().Dx()), float64(l.output.Bounds().Dy())
	cf := l.style.CurvatureFilter

	cur := Point{X: float64(seed.X), Y: float64(seed.Y)}
	path := []Point{cur}

	var prev Point
	for i := 1; i < l.style.MaxStrokeLength; i++ {
		x, y := int(cur.X), int(cur.Y)

		if len(path) > l.style.MinStrokeLength &&
			l.diffAt(x, y) < colorDistance(pixel(l.reference, x, y), col) {
			break
		}

		gx, gy, ok := l.field.Direction(x, y)
		if !ok {
			break
		}

		// Turn the gradient by 90 degrees and keep heading the same way.
		dx, dy := -gy, gx
		if dx*prev.X+dy*prev.Y < 0 {
			dx, dy = -dx, -dy
		}

		bx, by := cf*dx+(1-cf)*prev.X, cf*dy+(1-cf)*prev.Y
		if n := math.Hypot(bx, by); n > 0 {
			bx, by = bx/n, by/n
		} else {
			bx, by = dx, dy
		}

		cur = Point{X: cur.X + brushSize*bx, Y: cur.Y + brushSize*by}
		if cur.X < 0 || cur.Y < 0 || cur.X >= width || cur.Y >= height {
			break
		}
		prev = Point{X: bx, Y: by}
		path = append(path, cur)
	}
	return path
}
