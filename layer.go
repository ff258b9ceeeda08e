package painterly

import (
	"image"
	"image/color"
	"math"

	"github.com/esimov/painterly/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// uncoveredScore is the difference assigned to pixels no stroke has touched yet.
// It dominates any real color distance, so every unpainted cell gets a stroke.
const uncoveredScore = float64(math.MaxInt32)

// Seed is the starting point of a stroke.
type Seed struct {
	X, Y  int
	Error float64 // average difference of the grid cell the seed was picked from
}

// PassStats summarizes a single painting pass.
type PassStats struct {
	BrushSize float64
	Edges     bool // true for the edge overlay pass
	Seeds     int
	Strokes   int // curved strokes drawn
	Dots      int // single point strokes drawn as dots
	Skipped   int // single point strokes dropped because dots are disabled
}

// layer holds everything a painting pass reads and writes.
type layer struct {
	style     Style
	reference *image.NRGBA // the image the output is compared against
	palette   *image.NRGBA // the image the stroke colors are sampled from
	output    *image.NRGBA
	mask      *CoverageMask
	field     *GradientField
	rnd       Rand

	jitterColors bool
	drawDots     bool
}

// pixel returns the color of img at (x, y). The image origin is expected at (0, 0).
func pixel(img *image.NRGBA, x, y int) color.NRGBA {
	i := img.PixOffset(x, y)
	return color.NRGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}

// diffAt scores how badly the output matches the reference at (x, y).
// Uncovered pixels always score the maximum.
func (l *layer) diffAt(x, y int) float64 {
	if !l.mask.Covered(x, y) {
		return uncoveredScore
	}
	return colorDistance(pixel(l.reference, x, y), pixel(l.output, x, y))
}

// seeds sweeps the canvas with a grid scaled to the brush and returns a seed
// for every cell whose average difference exceeds the style threshold.
// Within a cell every pixel is sampled at a jittered position; the seed is
// placed at the worst matching sample.
func (l *layer) seeds(brushSize float64) []Seed {
	grid := utils.Max(int(math.Round(l.style.GridSize*brushSize)), 1)
	width, height := l.output.Bounds().Dx(), l.output.Bounds().Dy()

	var (
		seeds  []Seed
		scores = make([]float64, 0, grid*grid)
		points = make([]image.Point, 0, grid*grid)
	)
	for y := 0; y < height; y += grid {
		for x := 0; x < width; x += grid {
			scores, points = scores[:0], points[:0]

			for ey := y; ey < y+grid; ey++ {
				for ex := x; ex < x+grid; ex++ {
					jx := utils.Clamp(ex+int(jitter(l.rnd, float64(grid))), 0, width-1)
					jy := utils.Clamp(ey+int(jitter(l.rnd, float64(grid))), 0, height-1)

					scores = append(scores, l.diffAt(jx, jy))
					points = append(points, image.Pt(jx, jy))
				}
			}

			areaError := stat.Mean(scores, nil)
			if areaError > l.style.Threshold {
				// MaxIdx returns the first of equally bad samples.
				worst := points[floats.MaxIdx(scores)]
				seeds = append(seeds, Seed{X: worst.X, Y: worst.Y, Error: areaError})
			}
		}
	}
	return seeds
}

// strokeColor resolves the color of a stroke starting at seed.
func (l *layer) strokeColor(s Seed) color.NRGBA {
	c := pixel(l.palette, s.X, s.Y)
	if !l.jitterColors {
		c.A = 0xff
		return c
	}
	return jitterColor(c, l.style, l.rnd)
}

// paint runs a full pass at the given brush size: the seeds are drawn in
// random order, each one traced and rendered before the next is picked.
func (l *layer) paint(brushSize float64) PassStats {
	seeds := l.seeds(brushSize)
	stats := PassStats{BrushSize: brushSize, Seeds: len(seeds)}

	for len(seeds) > 0 {
		idx := l.rnd.IntN(len(seeds))
		seed := seeds[idx]
		last := len(seeds) - 1
		seeds[idx] = seeds[last]
		seeds = seeds[:last]

		col := l.strokeColor(seed)
		path := l.trace(seed, brushSize, col)

		switch {
		case !l.render(path, col, brushSize):
			stats.Skipped++
		case len(path) == 1:
			stats.Dots++
		default:
			stats.Strokes++
		}
	}
	return stats
}
