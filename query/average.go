package query

import (
	"fmt"
	"strings"

	"github.com/signadot/praat-format/debug"
	"github.com/signadot/praat-format/ir"

	"gonum.org/v1/gonum/stat"
)

// Average returns the mean of the field at path over the frames with
// start <= time <= end. See [ir.Frame.Get] for paths.
func Average(src ir.FrameSource, start, end float64, path ...string) (float64, error) {
	xs, err := values(src.FrameList(), start, end, path)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: no frames in [%s, %s]", ErrRange,
			ir.FormatFloat(start), ir.FormatFloat(end))
	}
	res := stat.Mean(xs, nil)
	if debug.Query() {
		debug.Logf("average %s over %d frames: %s\n", strings.Join(path, "."), len(xs), ir.FormatFloat(res))
	}
	return res, nil
}

func values(frames []*ir.Frame, start, end float64, path []string) ([]float64, error) {
	var xs []float64
	for _, fr := range frames {
		if fr.Time < start || fr.Time > end {
			continue
		}
		x, err := number(fr, path)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func number(fr *ir.Frame, path []string) (float64, error) {
	v, ok := fr.Get(path...)
	if !ok {
		return 0, fmt.Errorf("%w: %q missing at %s", ErrField, strings.Join(path, "."), ir.FormatFloat(fr.Time))
	}
	x, ok := v.Number()
	if !ok {
		return 0, fmt.Errorf("%w: %q is %q at %s", ErrField, strings.Join(path, "."), v.Text, ir.FormatFloat(fr.Time))
	}
	return x, nil
}
