package query

import (
	"fmt"
	"math"

	"github.com/signadot/praat-format/debug"
	"github.com/signadot/praat-format/ir"
)

// Nearest returns the frame whose time is closest to t. On a tie the
// earlier frame is returned.
//
// Nearest fails with ErrRange if src has no frames or t lies outside the
// time domain of src. With ignoreError set it returns a copy of the first
// frame with every value replaced by NaN instead.
func Nearest(src ir.FrameSource, t float64, ignoreError bool) (*ir.Frame, error) {
	frames := src.FrameList()
	fr, err := nearest(src, frames, t)
	if err == nil {
		if debug.Query() {
			debug.Logf("nearest %s: %v\n", ir.FormatFloat(t), fr)
		}
		return fr, nil
	}
	if !ignoreError {
		return nil, err
	}
	if len(frames) == 0 {
		return &ir.Frame{Time: math.NaN(), Fields: ir.NewHeader()}, nil
	}
	return frames[0].NaN(), nil
}

func nearest(src ir.FrameSource, frames []*ir.Frame, t float64) (*ir.Frame, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrRange)
	}
	xmin, xmax, ok := src.Span()
	if !ok {
		xmin, xmax = frames[0].Time, frames[len(frames)-1].Time
	}
	if math.IsNaN(t) || t < xmin || t > xmax {
		return nil, fmt.Errorf("%w: %s not in [%s, %s]", ErrRange,
			ir.FormatFloat(t), ir.FormatFloat(xmin), ir.FormatFloat(xmax))
	}
	best, bestDist := frames[0], math.Abs(frames[0].Time-t)
	for _, fr := range frames[1:] {
		d := math.Abs(fr.Time - t)
		if d < bestDist {
			best, bestDist = fr, d
			continue
		}
		if fr.Time > t {
			break
		}
	}
	return best, nil
}
