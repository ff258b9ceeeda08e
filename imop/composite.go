package imop

import (
	"fmt"
	"image"
	"math"
)

// The Porter-Duff composition operations.
const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// factors returns the fraction of the source and of the backdrop
// kept by a composition operation, given the two alpha values.
type factors func(as, ab float64) (fa, fb float64)

var compositeOps = map[string]factors{
	Clear:   func(as, ab float64) (float64, float64) { return 0, 0 },
	Copy:    func(as, ab float64) (float64, float64) { return 1, 0 },
	Dst:     func(as, ab float64) (float64, float64) { return 0, 1 },
	SrcOver: func(as, ab float64) (float64, float64) { return 1, 1 - as },
	DstOver: func(as, ab float64) (float64, float64) { return 1 - ab, 1 },
	SrcIn:   func(as, ab float64) (float64, float64) { return ab, 0 },
	DstIn:   func(as, ab float64) (float64, float64) { return 0, as },
	SrcOut:  func(as, ab float64) (float64, float64) { return 1 - ab, 0 },
	DstOut:  func(as, ab float64) (float64, float64) { return 0, 1 - as },
	SrcAtop: func(as, ab float64) (float64, float64) { return ab, 1 - as },
	DstAtop: func(as, ab float64) (float64, float64) { return 1 - ab, as },
	Xor:     func(as, ab float64) (float64, float64) { return 1 - ab, 1 - as },
}

// Bitmap is the destination of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap returns a transparent bitmap of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
}

// InitOp returns a Composite using the source-over operation.
func InitOp() *Composite {
	return &Composite{current: SrcOver}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) error {
	if _, ok := compositeOps[cop]; !ok {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes src over the backdrop dst into bitmap. When blend is not nil,
// the source color is first mixed with the backdrop using the blend mode.
// The images are expected to share the same bounds.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA, blend *Blend) {
	fn := compositeOps[op.current]
	rect := src.Bounds().Intersect(dst.Bounds()).Intersect(bitmap.Img.Bounds())

	var mode blendFunc
	if blend != nil {
		mode = blendModes[blend.Get()]
	}

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			si, bi, oi := src.PixOffset(x, y), dst.PixOffset(x, y), bitmap.Img.PixOffset(x, y)
			s, b, o := src.Pix[si:si+4:si+4], dst.Pix[bi:bi+4:bi+4], bitmap.Img.Pix[oi:oi+4:oi+4]

			as, ab := unit(s[3]), unit(b[3])
			fa, fb := fn(as, ab)

			ao := fa*as + fb*ab
			if ao == 0 {
				o[0], o[1], o[2], o[3] = 0, 0, 0, 0
				continue
			}
			for c := 0; c < 3; c++ {
				cs, cb := unit(s[c]), unit(b[c])
				if mode != nil {
					cs = (1-ab)*cs + ab*mode(cs, cb)
				}
				o[c] = byteOf((fa*as*cs + fb*ab*cb) / ao)
			}
			o[3] = byteOf(ao)
		}
	}
}

func unit(v uint8) float64 {
	return float64(v) / 0xff
}

func byteOf(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 0xff))
}
