package painterly

import (
	"image"
	"math"

	"github.com/esimov/painterly/utils"
	"gonum.org/v1/gonum/floats"
)

type kernel [][]int32

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// maxComponent is the largest absolute value a Sobel response can take
// for 8 bit intensities: the positive kernel weights sum up to 4.
const maxComponent = 4 * 255

// Vector is the Sobel response of a single pixel.
type Vector struct {
	X, Y int16
}

// Magnitude returns the length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// GradientField stores one gradient vector per pixel in raster order.
type GradientField struct {
	Width   int
	Height  int
	Vectors []Vector
}

// NewGradientField allocates a zeroed field of the given size.
func NewGradientField(width, height int) *GradientField {
	return &GradientField{
		Width:   width,
		Height:  height,
		Vectors: make([]Vector, width*height),
	}
}

// At returns the gradient at (x, y).
// Positions outside the field have no gradient.
func (f *GradientField) At(x, y int) Vector {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Vector{}
	}
	return f.Vectors[y*f.Width+x]
}

// Magnitude returns the gradient magnitude at (x, y).
func (f *GradientField) Magnitude(x, y int) float64 {
	return f.At(x, y).Magnitude()
}

// Direction returns the normalized gradient at (x, y).
// The second return value is false where the gradient vanishes.
func (f *GradientField) Direction(x, y int) (float64, float64, bool) {
	v := f.At(x, y)
	mag := v.Magnitude()
	if mag == 0 {
		return 0, 0, false
	}
	return float64(v.X) / mag, float64(v.Y) / mag, true
}

// MaxMagnitude returns the strongest gradient magnitude of the field.
func (f *GradientField) MaxMagnitude() float64 {
	if len(f.Vectors) == 0 {
		return 0
	}
	mags := make([]float64, len(f.Vectors))
	for i, v := range f.Vectors {
		mags[i] = v.Magnitude()
	}
	return floats.Max(mags)
}

// Suppress zeroes every vector whose magnitude does not exceed limit
// and returns the number of vectors left untouched.
func (f *GradientField) Suppress(limit float64) int {
	var kept int
	for i, v := range f.Vectors {
		if v.Magnitude() <= limit {
			f.Vectors[i] = Vector{}
			continue
		}
		kept++
	}
	return kept
}

// Sobel computes the gradient field of a grayscale image into dst.
// Only the red channel is read, since the luminance image is grayscale anyway.
// Samples outside the image contribute nothing to the sums.
func Sobel(lum *image.NRGBA, dst *GradientField) {
	dx, dy := lum.Bounds().Dx(), lum.Bounds().Dy()
	origin := lum.Bounds().Min

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			var sumX, sumY int32
			for ky := 0; ky < 3; ky++ {
				py := y + ky - 1
				if py < 0 || py >= dy {
					continue
				}
				for kx := 0; kx < 3; kx++ {
					px := x + kx - 1
					if px < 0 || px >= dx {
						continue
					}
					r := int32(lum.Pix[lum.PixOffset(origin.X+px, origin.Y+py)])
					sumX += r * kernelX[ky][kx]
					sumY += r * kernelY[ky][kx]
				}
			}
			dst.Vectors[y*dst.Width+x] = Vector{
				X: int16(utils.Clamp(sumX, -maxComponent, maxComponent)),
				Y: int16(utils.Clamp(sumY, -maxComponent, maxComponent)),
			}
		}
	}
}
