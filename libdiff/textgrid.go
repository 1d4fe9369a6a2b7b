package libdiff

import (
	"fmt"
	"unicode/utf8"

	"github.com/signadot/praat-format/debug"
	"github.com/signadot/praat-format/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Segment is an interval or, with Xmin == Xmax, a point.
type Segment struct {
	// Index is the 1-based position of the segment in its tier.
	Index      int
	Xmin, Xmax float64
	Text       string
}

type SegmentDiff struct {
	Kind     Kind
	From, To *Segment
	// Text marks the text changes of a replaced segment, see DiffText.
	Text string
}

type TierDiff struct {
	Name     string
	Kind     Kind
	From, To *ir.Tier
	Segments []SegmentDiff
}

type Diff struct {
	From, To *ir.TextGrid
	Tiers    []TierDiff
}

// TextGrids returns the differences from from to to, or nil if there are
// none.
func TextGrids(from, to *ir.TextGrid) *Diff {
	d := &Diff{From: from, To: to}
	used := make([]bool, len(to.Tiers))
	for _, ft := range from.Tiers {
		k := -1
		for i, tt := range to.Tiers {
			if !used[i] && tt.Name == ft.Name && tt.Kind == ft.Kind {
				k = i
				break
			}
		}
		if k < 0 {
			d.Tiers = append(d.Tiers, TierDiff{Name: ft.Name, Kind: Delete, From: ft})
			continue
		}
		used[k] = true
		if td := diffTier(ft, to.Tiers[k]); td != nil {
			d.Tiers = append(d.Tiers, *td)
		}
	}
	for i, tt := range to.Tiers {
		if !used[i] {
			d.Tiers = append(d.Tiers, TierDiff{Name: tt.Name, Kind: Insert, To: tt})
		}
	}
	if len(d.Tiers) == 0 && from.Xmin == to.Xmin && from.Xmax == to.Xmax {
		return nil
	}
	if debug.Edit() {
		debug.Logf("diff: %d tiers differ\n", len(d.Tiers))
	}
	return d
}

func diffTier(from, to *ir.Tier) *TierDiff {
	fs, ts := segments(from), segments(to)
	a, b := encodeSegments(fs, ts)
	dmp := diffpatch.New()
	td := &TierDiff{Name: from.Name, Kind: Replace, From: from, To: to}
	var dels, ins []Segment
	flush := func() {
		n := min(len(dels), len(ins))
		for i := 0; i < n; i++ {
			f, t := dels[i], ins[i]
			td.Segments = append(td.Segments, SegmentDiff{Kind: Replace, From: &f, To: &t, Text: DiffText(f.Text, t.Text)})
		}
		for i := n; i < len(dels); i++ {
			td.Segments = append(td.Segments, SegmentDiff{Kind: Delete, From: &dels[i]})
		}
		for i := n; i < len(ins); i++ {
			td.Segments = append(td.Segments, SegmentDiff{Kind: Insert, To: &ins[i]})
		}
		dels, ins = nil, nil
	}
	i, j := 0, 0
	for _, d := range dmp.DiffMainRunes(a, b, false) {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffpatch.DiffEqual:
			flush()
			i += n
			j += n
		case diffpatch.DiffDelete:
			dels = append(dels, fs[i:i+n]...)
			i += n
		case diffpatch.DiffInsert:
			ins = append(ins, ts[j:j+n]...)
			j += n
		}
	}
	flush()
	if len(td.Segments) == 0 && from.Xmin == to.Xmin && from.Xmax == to.Xmax && from.Class == to.Class {
		return nil
	}
	return td
}

func segments(t *ir.Tier) []Segment {
	if t.Kind == ir.Points {
		res := make([]Segment, len(t.Points))
		for i, p := range t.Points {
			res[i] = Segment{Index: i + 1, Xmin: p.Time, Xmax: p.Time, Text: p.Mark}
		}
		return res
	}
	res := make([]Segment, len(t.Intervals))
	for i, iv := range t.Intervals {
		res[i] = Segment{Index: i + 1, Xmin: iv.Xmin, Xmax: iv.Xmax, Text: iv.Text}
	}
	return res
}

// segmentBase is the first rune used to encode segments. Runes from the
// supplementary planes survive conversion to and from strings.
const segmentBase = 0x10000

// encodeSegments maps each distinct segment to a rune so that the
// segment sequences can be diffed as texts.
func encodeSegments(from, to []Segment) ([]rune, []rune) {
	ids := map[string]rune{}
	enc := func(ss []Segment) []rune {
		res := make([]rune, len(ss))
		for i, s := range ss {
			k := segmentKey(s)
			id, ok := ids[k]
			if !ok {
				id = rune(segmentBase + len(ids))
				ids[k] = id
			}
			res[i] = id
		}
		return res
	}
	return enc(from), enc(to)
}

func segmentKey(s Segment) string {
	return fmt.Sprintf("%s\t%s\t%q", ir.FormatFloat(s.Xmin), ir.FormatFloat(s.Xmax), s.Text)
}
