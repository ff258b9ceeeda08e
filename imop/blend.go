// Package imop implements the Porter-Duff composition operations and the
// separable blend modes used for mixing a graphic element with its backdrop.
// The image/draw core package implements only the source and the
// source-over-destination operations.
//
// It is used to build the debug image of a painting, where the pixels
// left uncovered by the strokes are highlighted in a distinct color.
package imop

import (
	"fmt"
	"math"

	"github.com/esimov/painterly/utils"
)

// The separable blend modes.
const (
	Normal     = "normal"
	Darken     = "darken"
	Lighten    = "lighten"
	Multiply   = "multiply"
	Screen     = "screen"
	Overlay    = "overlay"
	Difference = "difference"
)

// blendFunc mixes a source and a backdrop channel, both in [0, 1].
type blendFunc func(cs, cb float64) float64

var blendModes = map[string]blendFunc{
	Normal:   func(cs, cb float64) float64 { return cs },
	Darken:   math.Min,
	Lighten:  math.Max,
	Multiply: func(cs, cb float64) float64 { return cs * cb },
	Screen:   screen,
	Overlay: func(cs, cb float64) float64 {
		if cb <= 0.5 {
			return 2 * cs * cb
		}
		return screen(cs, 2*cb-1)
	},
	Difference: func(cs, cb float64) float64 { return math.Abs(cs - cb) },
}

func screen(cs, cb float64) float64 {
	return cs + cb - cs*cb
}

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
func (o *Blend) Set(opType string) error {
	modes := []string{Normal, Darken, Lighten, Multiply, Screen, Overlay, Difference}
	if !utils.Contains(modes, opType) {
		return fmt.Errorf("unsupported blend mode: %q", opType)
	}
	o.OpType = opType
	return nil
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}
