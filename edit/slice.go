package edit

import (
	"fmt"

	"github.com/signadot/praat-format/debug"
	"github.com/signadot/praat-format/ir"
)

func checkRange(start, end float64) error {
	if start < 0 || !(end > start) {
		return fmt.Errorf("%w: [%s, %s]", ErrBadRange, ir.FormatFloat(start), ir.FormatFloat(end))
	}
	return nil
}

// clip clips [xmin, xmax] to [start, end] and shifts the result so that
// start becomes 0. It returns false if nothing of positive duration is
// left.
func clip(xmin, xmax, start, end float64) (float64, float64, bool) {
	lo, hi := max(xmin, start), min(xmax, end)
	if hi <= lo {
		return 0, 0, false
	}
	return lo - start, hi - start, true
}

// Slice returns the part of tg between start and end, shifted so that
// start becomes time 0. Tiers and intervals are clipped to the window and
// dropped when nothing of them is left; points outside the window are
// dropped. The result ends at end-start.
func Slice(tg *ir.TextGrid, start, end float64) (*ir.TextGrid, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	res := &ir.TextGrid{
		Header: tg.Header.Clone(),
		Xmin:   max(tg.Xmin, start) - start,
		Xmax:   end - start,
		Tiers:  []*ir.Tier{},
	}
	for _, t := range tg.Tiers {
		xmin, xmax, ok := clip(t.Xmin, t.Xmax, start, end)
		if !ok {
			if debug.Edit() {
				debug.Logf("slice: dropping tier %q\n", t.Name)
			}
			continue
		}
		nt := &ir.Tier{
			Class: t.Class,
			Name:  t.Name,
			Kind:  t.Kind,
			Xmin:  xmin,
			Xmax:  xmax,
		}
		switch t.Kind {
		case ir.Points:
			nt.Points = []ir.Point{}
			for _, p := range t.Points {
				if p.Time < start || p.Time > end {
					continue
				}
				nt.Points = append(nt.Points, ir.Point{Time: p.Time - start, Mark: p.Mark})
			}
		default:
			nt.Intervals = []ir.Interval{}
			for _, iv := range t.Intervals {
				lo, hi, ok := clip(iv.Xmin, iv.Xmax, start, end)
				if !ok {
					continue
				}
				nt.Intervals = append(nt.Intervals, ir.Interval{Xmin: lo, Xmax: hi, Text: iv.Text})
			}
		}
		res.Tiers = append(res.Tiers, nt)
	}
	res.SyncHeader()
	return res, nil
}
