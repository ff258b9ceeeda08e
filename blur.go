package painterly

import (
	"image"

	"github.com/disintegration/imaging"
)

// blurSigma converts a blur radius into the standard deviation of the Gaussian,
// covering three sigmas on each side of the kernel center.
func blurSigma(radius float64) float64 {
	return radius / 3
}

// luminance returns the grayscale version of src blurred with a Gaussian
// of the given radius. A non positive radius skips the blur.
func luminance(src image.Image, radius float64) *image.NRGBA {
	if radius > 0 {
		return imaging.Grayscale(imaging.Blur(src, blurSigma(radius)))
	}
	return imaging.Grayscale(src)
}
