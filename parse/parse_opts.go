package parse

import "github.com/signadot/praat-format/ir"

type parseOpts struct {
	strict bool
	warn   func(ir.IntegrityWarning)
}

type ParseOption func(*parseOpts)

// ParseStrict makes integrity warnings fatal.
func ParseStrict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// ParseWarnings registers f to be called on each integrity warning as it
// is found.
func ParseWarnings(f func(ir.IntegrityWarning)) ParseOption {
	return func(o *parseOpts) { o.warn = f }
}

func getOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	return o
}
