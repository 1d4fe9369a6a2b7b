package edit

import (
	"fmt"
	"strings"

	"github.com/signadot/praat-format/ir"
)

type lookupOpts struct {
	caseSensitive bool
	all           bool
}

type LookupOption func(*lookupOpts)

// CaseSensitive compares tier names exactly. By default names are compared
// case-insensitively after trimming surrounding space.
func CaseSensitive() LookupOption {
	return func(o *lookupOpts) { o.caseSensitive = true }
}

// AllMatches makes LookupTier return every matching tier instead of the
// first one.
func AllMatches() LookupOption {
	return func(o *lookupOpts) { o.all = true }
}

func nameMatch(want, have string, caseSensitive bool) bool {
	if caseSensitive {
		return want == have
	}
	return strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(have))
}

// LookupTier finds tiers of tg by name. names are candidates tried in
// order: the first tier matching the earliest candidate is returned, or
// ErrLookup if no tier matches. With AllMatches every tier matching any
// candidate is returned in tier order, and no match is not an error.
func LookupTier(tg *ir.TextGrid, names []string, opts ...LookupOption) ([]*ir.Tier, error) {
	o := &lookupOpts{}
	for _, f := range opts {
		f(o)
	}
	if o.all {
		res := []*ir.Tier{}
		for _, t := range tg.Tiers {
			for _, name := range names {
				if nameMatch(name, t.Name, o.caseSensitive) {
					res = append(res, t)
					break
				}
			}
		}
		return res, nil
	}
	for _, name := range names {
		for _, t := range tg.Tiers {
			if nameMatch(name, t.Name, o.caseSensitive) {
				return []*ir.Tier{t}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no tier named %q, have %q", ErrLookup, names, tg.TierNames())
}

// Tier returns the first tier of tg called name.
func Tier(tg *ir.TextGrid, name string, opts ...LookupOption) (*ir.Tier, error) {
	ts, err := LookupTier(tg, []string{name}, opts...)
	if err != nil {
		return nil, err
	}
	if len(ts) == 0 {
		return nil, fmt.Errorf("%w: no tier named %q, have %q", ErrLookup, name, tg.TierNames())
	}
	return ts[0], nil
}

// LookupInterval returns the first interval of t with xmin <= at <= xmax.
func LookupInterval(at float64, t *ir.Tier) (*ir.Interval, error) {
	if t.Kind != ir.Intervals {
		return nil, fmt.Errorf("%w: tier %q has %s", ErrLookup, t.Name, t.Kind)
	}
	for _, iv := range t.Intervals {
		if iv.Contains(at) {
			return &iv, nil
		}
	}
	return nil, fmt.Errorf("%w: no interval of %q at %s", ErrLookup, t.Name, ir.FormatFloat(at))
}

// IntervalAt returns the interval of the tier called name at time at.
func IntervalAt(tg *ir.TextGrid, name string, at float64) (*ir.Interval, error) {
	t, err := Tier(tg, name)
	if err != nil {
		return nil, err
	}
	return LookupInterval(at, t)
}
