package painterly

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_FormatFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want Format
		err  bool
	}{
		{"painting", PNG, false},
		{"painting.png", PNG, false},
		{"painting.PNG", PNG, false},
		{"painting.bmp", BMP, false},
		{"painting.tif", TIFF, false},
		{"painting.tiff", TIFF, false},
		{"painting.jpg", 0, true},
		{"painting.webp", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFromFilename(tt.name)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImage_FormatString(t *testing.T) {
	assert.Equal(t, "png", PNG.String())
	assert.Equal(t, "tiff", TIFF.String())
	assert.Equal(t, "Format(7)", Format(7).String())
}

func TestImage_Decode(t *testing.T) {
	src := image.NewRGBA(image.Rect(3, 4, 9, 8))
	src.Set(3, 4, color.RGBA{R: 10, G: 20, B: 30, A: 0xff})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	doc := NewDocument()
	require.NoError(t, doc.Decode(&buf))

	img := doc.Source()
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}, img.NRGBAAt(0, 0))

	err := doc.Decode(strings.NewReader("definitely not an image"))
	var lerr *LoadError
	assert.ErrorAs(t, err, &lerr)
	assert.Same(t, img, doc.Source())
}

func TestImage_SaveRemovesFileOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	assert.Error(t, saveImg(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))))
}

func TestImage_Errors(t *testing.T) {
	assert.Equal(t, `could not load the source image "a.png": boom`,
		(&LoadError{Path: "a.png", Err: errString("boom")}).Error())
	assert.Equal(t, "render failed during validation: boom",
		(&RenderError{Stage: "validation", Err: errString("boom")}).Error())
	assert.Equal(t, "could not save the output image: boom",
		(&SaveError{Err: errString("boom")}).Error())
}

type errString string

func (e errString) Error() string { return string(e) }
