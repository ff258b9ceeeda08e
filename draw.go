package painterly

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/esimov/painterly/utils"
	"golang.org/x/image/vector"
)

// kappa places the control points of a cubic Bézier approximating a quarter circle.
const kappa = 0.5522847498

// flatness is the maximum length in pixels of a flattened curve segment.
const flatness = 1.0

// render draws the stroke path with the given color and brush width onto
// the output, and stamps the touched pixels into the coverage mask.
// A single point path is drawn as a dot, only when dots are enabled.
// It reports whether anything has been drawn.
func (l *layer) render(path []Point, col color.NRGBA, width float64) bool {
	if len(path) == 0 || (len(path) == 1 && !l.drawDots) {
		return false
	}
	radius := width / 2

	line := path
	if len(path) > 1 {
		line = smoothPath(path)
	}
	rect := strokeBounds(line, radius).Intersect(l.output.Bounds())
	if rect.Empty() {
		return false
	}

	z := vector.NewRasterizer(rect.Dx(), rect.Dy())
	z.DrawOp = draw.Src

	// Path points address pixels, shapes are centered on the pixel centers.
	ox := 0.5 - float64(rect.Min.X)
	oy := 0.5 - float64(rect.Min.Y)

	if len(path) == 1 {
		addCircle(z, path[0].X+ox, path[0].Y+oy, radius)
	} else {
		for i := 1; i < len(line); i++ {
			addSegment(z, line[i-1].X+ox, line[i-1].Y+oy, line[i].X+ox, line[i].Y+oy, radius)
		}
		// Round joins and caps.
		for _, p := range line {
			addCircle(z, p.X+ox, p.Y+oy, radius)
		}
	}

	coverage := image.NewAlpha(rect)
	z.Draw(coverage, rect, image.Opaque, image.Point{})

	draw.DrawMask(l.output, rect, image.NewUniform(col), image.Point{}, coverage, rect.Min, draw.Over)
	l.mask.Stamp(coverage)

	return true
}

// strokeBounds returns the pixel rectangle enclosing the polyline widened by radius.
func strokeBounds(path []Point, radius float64) image.Rectangle {
	minX, minY := path[0].X, path[0].Y
	maxX, maxY := minX, minY
	for _, p := range path[1:] {
		minX, maxX = utils.Min(minX, p.X), utils.Max(maxX, p.X)
		minY, maxY = utils.Min(minY, p.Y), utils.Max(maxY, p.Y)
	}
	pad := radius + 1
	return image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad))+1, int(math.Ceil(maxY+pad))+1,
	)
}

// smoothPath returns a polyline following the Catmull-Rom spline through the
// path points. Every spline section is converted into a cubic Bézier curve
// and flattened into segments no longer than flatness.
func smoothPath(path []Point) []Point {
	line := []Point{path[0]}
	last := len(path) - 1

	for i := 0; i < last; i++ {
		p0, p1 := path[utils.Max(i-1, 0)], path[i]
		p2, p3 := path[i+1], path[utils.Min(i+2, last)]

		c1 := Point{X: p1.X + (p2.X-p0.X)/6, Y: p1.Y + (p2.Y-p0.Y)/6}
		c2 := Point{X: p2.X - (p3.X-p1.X)/6, Y: p2.Y - (p3.Y-p1.Y)/6}

		chord := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
		steps := utils.Clamp(int(math.Ceil(chord/flatness)), 1, 64)
		for s := 1; s <= steps; s++ {
			line = append(line, cubicAt(p1, c1, c2, p2, float64(s)/float64(steps)))
		}
	}
	return line
}

// cubicAt evaluates the cubic Bézier curve p0, c1, c2, p3 at t.
func cubicAt(p0, c1, c2, p3 Point, t float64) Point {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}

// addSegment adds the rectangle covering the segment (x0, y0)-(x1, y1) widened by radius.
// All shapes are wound the same way, so overlapping parts are merged.
func addSegment(z *vector.Rasterizer, x0, y0, x1, y1, radius float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*radius, dx/length*radius

	z.MoveTo(float32(x0-nx), float32(y0-ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x0+nx), float32(y0+ny))
	z.ClosePath()
}

// addCircle adds a circle built from four cubic Bézier arcs.
func addCircle(z *vector.Rasterizer, cx, cy, r float64) {
	x, y, rr := float32(cx), float32(cy), float32(r)
	k := float32(kappa) * rr

	z.MoveTo(x, y-rr)
	z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	z.ClosePath()
}
