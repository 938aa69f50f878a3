package ndgrid

import "fmt"

// DefaultOptions returns Options with full connectivity and edge cells
// allowed to be maxima.
func DefaultOptions() Options {
	return Options{
		Connectivity: 0,
		AllowBorders: true,
	}
}

// WithConnectivity sets the neighbor connectivity.
//
//	k == 0: full connectivity
//	k  > 0: neighbors differing in at most k coordinates (clamped to ndim)
//	k  < 0: invalid option → ErrOptionViolation
func WithConnectivity(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: connectivity cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Connectivity = k
	}
}

// WithFootprint uses fp instead of a connectivity-derived footprint.
// A nil footprint is an ErrOptionViolation.
func WithFootprint(fp *Footprint) Option {
	return func(o *Options) {
		if fp == nil {
			o.err = fmt.Errorf("%w: footprint is nil", ErrOptionViolation)
			return
		}
		o.Footprint = fp
	}
}

// WithAllowBorders controls whether edge cells may be maxima.
func WithAllowBorders(allow bool) Option {
	return func(o *Options) {
		o.AllowBorders = allow
	}
}

// resolve applies opts over the defaults and reports any recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}
