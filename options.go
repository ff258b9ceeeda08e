package painterly

import "time"

// Option configures a Document during creation.
//
//	doc := painterly.NewDocument(
//		painterly.WithStyle(painterly.PointillistStyle),
//		painterly.WithSeed(42),
//	)
type Option func(*Document)

// WithStyle sets the initial style. The default is ImpressionistStyle.
func WithStyle(s Style) Option {
	return func(d *Document) {
		d.style = s
	}
}

// WithRand injects the random source used by every render.
func WithRand(r Rand) Option {
	return func(d *Document) {
		if r != nil {
			d.rnd = r
		}
	}
}

// WithSeed makes the renders reproducible: two documents created with the
// same seed produce identical paintings of the same source and style.
func WithSeed(seed uint64) Option {
	return WithRand(NewRand(seed))
}

func defaultRand() Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}
