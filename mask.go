package painterly

import (
	"image"
	"image/color"
)

// coveredAlpha is the stroke coverage from which a pixel counts as painted.
// Any pixel a stroke touches is covered.
const coveredAlpha = 1

// CoverageMask records which output pixels have been touched by a stroke.
type CoverageMask struct {
	Width   int
	Height  int
	covered []bool
}

// NewCoverageMask returns an all uncovered mask.
func NewCoverageMask(width, height int) *CoverageMask {
	return &CoverageMask{
		Width:   width,
		Height:  height,
		covered: make([]bool, width*height),
	}
}

// Covered reports whether (x, y) was painted. Positions outside the mask never are.
func (m *CoverageMask) Covered(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.covered[y*m.Width+x]
}

// Cover marks (x, y) as painted.
func (m *CoverageMask) Cover(x, y int) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.covered[y*m.Width+x] = true
}

// Clear marks every pixel as uncovered.
func (m *CoverageMask) Clear() {
	for i := range m.covered {
		m.covered[i] = false
	}
}

// Count returns the number of covered pixels.
func (m *CoverageMask) Count() int {
	var n int
	for _, c := range m.covered {
		if c {
			n++
		}
	}
	return n
}

// Stamp marks every pixel of the coverage image which is at least half covered.
// The coverage is positioned by its bounds within the mask.
func (m *CoverageMask) Stamp(coverage *image.Alpha) {
	b := coverage.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if coverage.Pix[coverage.PixOffset(x, y)] >= coveredAlpha {
				m.Cover(x, y)
			}
		}
	}
}

// Image renders the mask as a grayscale image, covered pixels in white.
func (m *CoverageMask) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for i, c := range m.covered {
		if c {
			img.Pix[i] = 0xff
		}
	}
	return img
}

// Uncovered returns an overlay which paints the uncovered pixels with col
// and leaves the covered ones transparent.
func (m *CoverageMask) Uncovered(col color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for i, c := range m.covered {
		if !c {
			copy(img.Pix[i*4:i*4+4], []uint8{col.R, col.G, col.B, col.A})
		}
	}
	return img
}
