package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComp_Basic(t *testing.T) {
	op := InitOp()
	assert.Equal(t, SrcOver, op.Get())

	require.NoError(t, op.Set(Clear))
	assert.Equal(t, Clear, op.Get())

	assert.Error(t, op.Set("unsupported_composite_operation"))
	assert.Equal(t, Clear, op.Get(), "a failed Set keeps the previous operation")
}

func TestComp_Ops(t *testing.T) {
	transparent := color.NRGBA{}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	// The source covers the bottom left corner, the backdrop the top right one.
	// They overlap in the center.
	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

	tests := []struct {
		op                          string
		topRight, bottomLeft, center color.NRGBA
	}{
		{Clear, transparent, transparent, transparent},
		{Copy, transparent, cyan, cyan},
		{Dst, magenta, transparent, magenta},
		{SrcOver, magenta, cyan, cyan},
		{DstOver, magenta, cyan, magenta},
		{SrcIn, transparent, transparent, cyan},
		{DstIn, transparent, transparent, magenta},
		{SrcOut, transparent, cyan, transparent},
		{DstOut, magenta, transparent, transparent},
		{SrcAtop, magenta, transparent, cyan},
		{DstAtop, transparent, cyan, magenta},
		{Xor, magenta, cyan, transparent},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			op := InitOp()
			require.NoError(t, op.Set(tt.op))

			bmp := NewBitmap(rect)
			op.Draw(bmp, source, backdrop, nil)

			assert.Equal(t, tt.topRight, bmp.Img.NRGBAAt(9, 0))
			assert.Equal(t, tt.bottomLeft, bmp.Img.NRGBAAt(0, 9))
			assert.Equal(t, tt.center, bmp.Img.NRGBAAt(5, 5))
		})
	}
}

func TestComp_TranslucentSource(t *testing.T) {
	rect := image.Rect(0, 0, 1, 1)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)
	source.SetNRGBA(0, 0, color.NRGBA{R: 33, G: 150, B: 243, A: 128})
	backdrop.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	bmp := NewBitmap(rect)
	InitOp().Draw(bmp, source, backdrop, nil)

	assert.Equal(t, []uint8{144, 202, 249, 255}, bmp.Img.Pix)
}
