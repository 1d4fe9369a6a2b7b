package edit

import (
	"slices"

	"github.com/signadot/praat-format/debug"
	"github.com/signadot/praat-format/ir"
)

// Erase blanks out [start, end] in every tier of tg except those named in
// skip. Skip names must match tier names exactly.
//
// In an interval tier the first interval ending after start, if it starts
// before end, takes over every following interval starting before end: it
// is extended up to the next remaining interval (or the end of the tier)
// and its text is cleared. An empty interval right after it is merged in
// as well, so the tier keeps its span. Point tiers lose their points
// within [start, end].
func Erase(tg *ir.TextGrid, start, end float64, skip ...string) (*ir.TextGrid, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	res := tg.Clone()
	for _, t := range res.Tiers {
		if slices.Contains(skip, t.Name) {
			continue
		}
		switch t.Kind {
		case ir.Points:
			t.Points = slices.DeleteFunc(t.Points, func(p ir.Point) bool {
				return p.Time >= start && p.Time <= end
			})
		default:
			t.Intervals = eraseIntervals(t.Intervals, t.Xmax, start, end)
		}
	}
	return res, nil
}

func eraseIntervals(ivs []ir.Interval, tierEnd, start, end float64) []ir.Interval {
	i := slices.IndexFunc(ivs, func(iv ir.Interval) bool { return iv.Xmax > start })
	if i < 0 || ivs[i].Xmin >= end {
		return ivs
	}
	j := i + 1
	for j < len(ivs) && ivs[j].Xmin < end {
		j++
	}
	erased := ir.Interval{Xmin: ivs[i].Xmin, Xmax: tierEnd}
	if j < len(ivs) {
		erased.Xmax = ivs[j].Xmin
		if ivs[j].Text == "" {
			erased.Xmax = ivs[j].Xmax
			j++
		}
	}
	if debug.Edit() {
		debug.Logf("erase: %d intervals into [%s, %s]\n", j-i,
			ir.FormatFloat(erased.Xmin), ir.FormatFloat(erased.Xmax))
	}
	res := make([]ir.Interval, 0, len(ivs)-(j-i)+1)
	res = append(res, ivs[:i]...)
	res = append(res, erased)
	return append(res, ivs[j:]...)
}
