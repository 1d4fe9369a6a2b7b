package encode

import "github.com/signadot/praat-format/format"

type encState struct {
	format format.Format
	colors *Colors
}

type EncodeOption func(*encState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *encState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	return getState(opts).format
}

func getState(opts []EncodeOption) *encState {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
