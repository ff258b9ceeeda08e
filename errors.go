package painterly

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImage is returned when rendering or saving a document without a source image.
	ErrNoImage = errors.New("no source image loaded")

	// ErrUnsupportedFormat is returned for output formats other than the lossless ones.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// LoadError is returned when the source image cannot be opened or decoded.
// The document keeps its previous state.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not load the source image: %v", e.Err)
	}
	return fmt.Sprintf("could not load the source image %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// RenderError is returned when the painting pipeline fails.
// The output is left as a blank white canvas.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	if e.Stage == "" {
		return fmt.Sprintf("render failed: %v", e.Err)
	}
	return fmt.Sprintf("render failed during %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// SaveError is returned when the output image cannot be encoded or written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not save the output image: %v", e.Err)
	}
	return fmt.Sprintf("could not save the output image %q: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
