package painterly

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"sync"
	"time"

	"github.com/esimov/painterly/imop"
)

// edgeBrushSize is the brush width of the edge overlay pass.
const edgeBrushSize = 2.0

// uncoveredColor highlights the unpainted pixels in the debug image.
var uncoveredColor = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// Document owns the source image and every buffer the painting is built in.
// The methods of a Document are safe to call from several goroutines,
// but renders, loads and saves are serialized.
type Document struct {
	mu        sync.Mutex
	style     Style
	rnd       Rand
	source    *image.NRGBA
	output    *image.NRGBA
	mask      *CoverageMask
	field     *GradientField
	stats     []PassStats
	listeners []func()
}

// NewDocument returns a Document without source image.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		style: ImpressionistStyle,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rnd == nil {
		d.rnd = defaultRand()
	}
	return d
}

// Load reads the source image from the file at path.
// On failure the previously loaded image, if any, is kept.
func (d *Document) Load(path string) error {
	img, err := openImg(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	d.setSource(img)
	Logger().Info("source image loaded", "path", path,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// Decode reads the source image from r.
func (d *Document) Decode(r io.Reader) error {
	img, err := decodeImg(r)
	if err != nil {
		return &LoadError{Err: err}
	}
	d.setSource(img)
	return nil
}

// LoadImage uses a copy of img as the source image.
func (d *Document) LoadImage(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return &LoadError{Err: fmt.Errorf("the image has no pixels")}
	}
	src := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(src, src.Bounds(), img, img.Bounds().Min, draw.Src)
	d.setSource(src)
	return nil
}

// setSource allocates the buffers matching the new source.
func (d *Document) setSource(src *image.NRGBA) {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	d.source = src
	d.output = image.NewNRGBA(src.Bounds())
	d.mask = NewCoverageMask(w, h)
	d.field = NewGradientField(w, h)
	d.stats = nil
	d.fill(d.output, color.White)
}

// SetStyle replaces the style used by the next render.
// A render already running keeps the style it started with.
func (d *Document) SetStyle(s Style) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.style = s
}

// CurrentStyle returns a copy of the style used by the next render.
func (d *Document) CurrentStyle() Style {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.style
}

// Loaded reports whether a source image is present.
func (d *Document) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.source != nil
}

// Source returns the source image, nil before a successful load.
func (d *Document) Source() *image.NRGBA {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.source
}

// Output returns the output buffer. It is overwritten by the next render.
func (d *Document) Output() *image.NRGBA {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.output
}

// Coverage returns the coverage mask of the last pass.
func (d *Document) Coverage() *CoverageMask {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.mask
}

// Stats returns the statistics of every pass of the last render.
func (d *Document) Stats() []PassStats {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]PassStats(nil), d.stats...)
}

// OnRender registers fn to be called after every successful render.
// Callbacks run in registration order, after the document has been unlocked.
func (d *Document) OnRender(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.listeners = append(d.listeners, fn)
}

// Render paints the source image using the current style.
// On failure a *RenderError is returned and the output is left blank white.
func (d *Document) Render() error {
	if err := d.render(); err != nil {
		return err
	}

	d.mu.Lock()
	listeners := append([]func(){}, d.listeners...)
	d.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return nil
}

func (d *Document) render() (err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	style := d.style
	if d.source == nil {
		return &RenderError{Err: ErrNoImage}
	}

	stage := "validation"
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Stage: stage, Err: fmt.Errorf("%v", r)}
		}
		if err != nil {
			d.fill(d.output, color.White)
			Logger().Warn("render failed", "error", err)
		}
	}()

	if err := style.Validate(); err != nil {
		return &RenderError{Stage: stage, Err: err}
	}

	now := time.Now()
	d.stats = d.stats[:0]
	d.fill(d.output, color.White)
	d.mask.Clear()

	for brush := style.MaxBrushSize; brush > 1; brush /= 2 {
		stage = fmt.Sprintf("the scale pass of brush %d", brush)

		Sobel(luminance(d.source, float64(brush)*style.BlurFactor), d.field)

		l := d.newLayer(style, d.source)
		l.jitterColors, l.drawDots = true, true

		d.logPass(l.paint(float64(brush)))
	}

	if style.DrawEdges {
		stage = "the edge pass"
		d.logPass(d.renderEdges(style))
	}

	Logger().Info("render completed", "passes", len(d.stats), "elapsed", time.Since(now))
	return nil
}

// renderEdges traces the strongest edges of the un-blurred source with thin,
// unjittered strokes. Single points are not drawn, so only edges with a
// direction to follow leave a mark.
func (d *Document) renderEdges(style Style) PassStats {
	d.mask.Clear()

	Sobel(luminance(d.source, 0), d.field)
	kept := d.field.Suppress(style.EdgeThreshold / 100 * d.field.MaxMagnitude())
	Logger().Debug("edge field", "kept", kept, "total", len(d.field.Vectors))

	// The edges are scored against a black canvas instead of the source.
	black := image.NewNRGBA(d.source.Bounds())
	d.fill(black, color.Black)

	l := d.newLayer(style, black)
	l.palette = d.source
	l.jitterColors, l.drawDots = false, false

	stats := l.paint(edgeBrushSize)
	stats.Edges = true
	return stats
}

func (d *Document) newLayer(style Style, reference *image.NRGBA) *layer {
	return &layer{
		style:     style,
		reference: reference,
		palette:   reference,
		output:    d.output,
		mask:      d.mask,
		field:     d.field,
		rnd:       d.rnd,
	}
}

func (d *Document) logPass(stats PassStats) {
	d.stats = append(d.stats, stats)
	Logger().Debug("pass painted",
		"brush", stats.BrushSize,
		"edges", stats.Edges,
		"seeds", stats.Seeds,
		"strokes", stats.Strokes,
		"dots", stats.Dots,
		"covered", d.mask.Count(),
	)
}

// fill paints the whole image with a single color.
func (d *Document) fill(img *image.NRGBA, c color.Color) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Save writes the output image to path. The format is chosen by the
// file extension: png (the default), bmp or tiff.
func (d *Document) Save(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.output == nil {
		return &SaveError{Path: path, Err: ErrNoImage}
	}
	if err := saveImg(path, d.output); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	Logger().Info("output image saved", "path", path)
	return nil
}

// Encode writes the output image into w.
func (d *Document) Encode(w io.Writer, format Format) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.output == nil {
		return &SaveError{Err: ErrNoImage}
	}
	if err := encodeImg(w, d.output, format); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}

// DebugImage returns the output with the pixels left uncovered by the last
// pass highlighted in magenta.
func (d *Document) DebugImage() *image.NRGBA {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.output == nil {
		return nil
	}
	overlay := d.mask.Uncovered(uncoveredColor)

	bitmap := imop.NewBitmap(d.output.Bounds())
	blend := imop.NewBlend()
	if err := blend.Set(imop.Multiply); err != nil {
		return nil
	}
	imop.InitOp().Draw(bitmap, overlay, d.output, blend)

	return bitmap.Img
}
