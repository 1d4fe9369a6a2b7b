package query

import (
	"math"

	"github.com/signadot/praat-format/ir"
)

// Max returns the frame with the largest value at path among the frames
// with start < time < end. The first such frame wins on ties and NaN
// values are skipped. Max returns nil if no frame with a number lies
// strictly inside the range.
func Max(src ir.FrameSource, start, end float64, path ...string) (*ir.Frame, error) {
	return extreme(src, start, end, path, func(x, best float64) bool { return x > best })
}

// Min is like Max for the smallest value.
func Min(src ir.FrameSource, start, end float64, path ...string) (*ir.Frame, error) {
	return extreme(src, start, end, path, func(x, best float64) bool { return x < best })
}

func extreme(src ir.FrameSource, start, end float64, path []string, better func(x, best float64) bool) (*ir.Frame, error) {
	var (
		res  *ir.Frame
		best float64
	)
	for _, fr := range src.FrameList() {
		if fr.Time <= start || fr.Time >= end {
			continue
		}
		x, err := number(fr, path)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(x) {
			continue
		}
		if res == nil || better(x, best) {
			res, best = fr, x
		}
	}
	return res, nil
}
