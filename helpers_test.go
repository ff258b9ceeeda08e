package painterly

import (
	"image"
	"image/color"
	"image/draw"
)

// stubRand always returns the same values.
type stubRand struct {
	f float64
	n int
}

func (r stubRand) Float64() float64 { return r.f }
func (r stubRand) IntN(n int) int   { return r.n % n }

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// grayImage builds a grayscale NRGBA image from an intensity function.
func grayImage(w, h int, fn func(x, y int) uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := fn(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xff})
		}
	}
	return img
}

// sampleImage is a colorful test picture: a diagonal gradient with a disc in the middle.
func sampleImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy, r := w/2, h/2, w/4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 0x80,
				A: 0xff,
			}
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) < r*r {
				c = color.NRGBA{R: 0x20, G: 0x40, B: 0xe0, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// newTestLayer returns a layer painting on a white canvas of the reference size.
func newTestLayer(style Style, reference *image.NRGBA, rnd Rand) *layer {
	w, h := reference.Bounds().Dx(), reference.Bounds().Dy()
	return &layer{
		style:     style,
		reference: reference,
		palette:   reference,
		output:    solidImage(w, h, color.White),
		mask:      NewCoverageMask(w, h),
		field:     NewGradientField(w, h),
		rnd:       rnd,
	}
}
