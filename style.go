package painterly

import (
	"fmt"
	"sort"
	"strings"
)

// Style holds the parameters of a painterly render.
// It is a plain value: a render works on the copy it was given.
type Style struct {
	MaxBrushSize    int     // the biggest brush used; halved on every scale pass
	ColorOpacity    int     // alpha applied to the jittered stroke colors (0-255)
	BlurFactor      float64 // scales the Gaussian blur radius of every pass
	GridSize        float64 // scales the sampling grid cell of every pass
	CurvatureFilter float64 // 1 follows the new direction, 0 keeps the previous one
	Threshold       float64 // minimum average cell error that seeds a stroke
	MinStrokeLength int
	MaxStrokeLength int

	// Color jittering. A stroke color moves by at most half the range in
	// either direction. The HSV ranges are fractions of the unit interval.
	// The RGB ranges are fractions of the full 0-255 intensity, not channel
	// levels: a RedJitter of 0.3 shifts red by up to about 38 levels.
	HueJitter        float64
	SaturationJitter float64
	ValueJitter      float64
	RedJitter        float64
	GreenJitter      float64
	BlueJitter       float64

	DrawEdges     bool
	EdgeThreshold float64 // percentage of the strongest gradient below which edges are dropped
}

// The names of the predefined styles.
const (
	Impressionist = "impressionist"
	Expressionist = "expressionist"
	ColoristWash  = "colorist-wash"
	Pointillist   = "pointillist"
)

var (
	// ImpressionistStyle paints with opaque, unjittered, fully curving strokes.
	ImpressionistStyle = Style{
		BlurFactor:      0.5,
		GridSize:        1.0,
		CurvatureFilter: 1.0,
		Threshold:       100,
		MaxStrokeLength: 16,
		MinStrokeLength: 4,
		MaxBrushSize:    8,
		ColorOpacity:    255,
		EdgeThreshold:   200,
	}

	// ExpressionistStyle uses long, stiff, semi transparent strokes with value jitter.
	ExpressionistStyle = Style{
		BlurFactor:      0.5,
		GridSize:        1.0,
		CurvatureFilter: 0.25,
		Threshold:       50,
		MaxStrokeLength: 16,
		MinStrokeLength: 10,
		MaxBrushSize:    8,
		ColorOpacity:    192,
		ValueJitter:     0.7,
		EdgeThreshold:   200,
	}

	// ColoristWashStyle lays down translucent washes with RGB jitter.
	ColoristWashStyle = Style{
		BlurFactor:      0.5,
		GridSize:        1.0,
		CurvatureFilter: 1.0,
		Threshold:       200,
		MaxStrokeLength: 16,
		MinStrokeLength: 4,
		MaxBrushSize:    8,
		ColorOpacity:    128,
		RedJitter:       0.3,
		GreenJitter:     0.3,
		BlueJitter:      0.3,
		EdgeThreshold:   200,
	}

	// PointillistStyle paints small dots only, with strong hue and value jitter.
	PointillistStyle = Style{
		BlurFactor:      0.5,
		GridSize:        0.5,
		CurvatureFilter: 1.0,
		Threshold:       100,
		MaxStrokeLength: 0,
		MinStrokeLength: 0,
		MaxBrushSize:    4,
		ColorOpacity:    255,
		HueJitter:       0.3,
		ValueJitter:     0.99,
		EdgeThreshold:   200,
	}
)

var presets = map[string]Style{
	Impressionist: ImpressionistStyle,
	Expressionist: ExpressionistStyle,
	ColoristWash:  ColoristWashStyle,
	Pointillist:   PointillistStyle,
}

// PresetByName returns the predefined style registered under name.
// The lookup is case insensitive.
func PresetByName(name string) (Style, error) {
	s, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Style{}, fmt.Errorf("unknown style preset %q (available: %s)",
			name, strings.Join(PresetNames(), ", "))
	}
	return s, nil
}

// PresetNames returns the names of the predefined styles in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports the first parameter which would make the render misbehave.
func (s Style) Validate() error {
	switch {
	case s.MaxBrushSize < 0:
		return fmt.Errorf("max brush size should be non negative, got %d", s.MaxBrushSize)
	case s.ColorOpacity < 0 || s.ColorOpacity > 255:
		return fmt.Errorf("color opacity should be between 0 and 255, got %d", s.ColorOpacity)
	case s.BlurFactor < 0:
		return fmt.Errorf("blur factor should be non negative, got %v", s.BlurFactor)
	case s.GridSize <= 0:
		return fmt.Errorf("grid size should be positive, got %v", s.GridSize)
	case s.CurvatureFilter < 0 || s.CurvatureFilter > 1:
		return fmt.Errorf("curvature filter should be between 0 and 1, got %v", s.CurvatureFilter)
	case s.Threshold < 0:
		return fmt.Errorf("threshold should be non negative, got %v", s.Threshold)
	case s.MinStrokeLength < 0 || s.MaxStrokeLength < 0:
		return fmt.Errorf("stroke lengths should be non negative, got min %d max %d",
			s.MinStrokeLength, s.MaxStrokeLength)
	case s.EdgeThreshold < 0:
		return fmt.Errorf("edge threshold should be non negative, got %v", s.EdgeThreshold)
	}
	for _, j := range []float64{
		s.HueJitter, s.SaturationJitter, s.ValueJitter,
		s.RedJitter, s.GreenJitter, s.BlueJitter,
	} {
		if j < 0 {
			return fmt.Errorf("color jitter should be non negative, got %v", j)
		}
	}
	return nil
}
