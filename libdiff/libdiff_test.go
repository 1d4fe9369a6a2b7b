package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/praat-format/ir"
)

func grid(texts ...string) *ir.TextGrid {
	t := &ir.Tier{Class: ir.IntervalTier, Name: "words", Xmax: float64(len(texts))}
	for i, s := range texts {
		t.Intervals = append(t.Intervals, ir.Interval{Xmin: float64(i), Xmax: float64(i + 1), Text: s})
	}
	return &ir.TextGrid{Xmax: t.Xmax, Tiers: []*ir.Tier{t}}
}

func TestDiffText(t *testing.T) {
	dts := []struct {
		from, to, want string
	}{
		{from: "same", to: "same", want: ""},
		{from: "", to: "new", want: "{+new+}"},
		{from: "old", to: "", want: "{-old-}"},
		{from: "the cat sat", to: "the bat sat", want: "the {-c-}{+b+}at sat"},
		{from: "abc", to: "xyz", want: "{-abc-}{+xyz+}"},
	}
	for _, dt := range dts {
		if got := DiffText(dt.from, dt.to); got != dt.want {
			t.Errorf("%q -> %q: got %q want %q", dt.from, dt.to, got, dt.want)
		}
	}
}

func TestTextGridsEqual(t *testing.T) {
	if d := TextGrids(grid("a", "b"), grid("a", "b")); d != nil {
		t.Errorf("expected no diff, got\n%s", d)
	}
}

func TestTextGridsReplace(t *testing.T) {
	d := TextGrids(grid("a", "the cat sat", "c"), grid("a", "the bat sat", "c"))
	if d == nil {
		t.Fatal("expected a diff")
	}
	want := `~ tier "words"
  ~ 2: [1, 2] "the cat sat" -> 2: [1, 2] "the bat sat"  the {-c-}{+b+}at sat
`
	if diff := cmp.Diff(want, d.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTextGridsInsertDelete(t *testing.T) {
	d := TextGrids(grid("a", "b", "c"), grid("a", "c", "d", "e"))
	if d == nil || len(d.Tiers) != 1 {
		t.Fatalf("got %v", d)
	}
	var kinds []Kind
	for _, sd := range d.Tiers[0].Segments {
		kinds = append(kinds, sd.Kind)
	}
	// every interval from the second on moved, so none is equal
	want := []Kind{Replace, Replace, Insert}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("(-want +got):\n%s\n%s", diff, d)
	}
	if d.Tiers[0].Segments[0].From.Index != 2 {
		t.Errorf("got %+v", d.Tiers[0].Segments[0])
	}
}

func TestTextGridsTiers(t *testing.T) {
	from := grid("a")
	to := grid("a")
	to.Tiers[0].Name = "phones"
	to.Tiers = append(to.Tiers, &ir.Tier{Class: ir.TextTier, Name: "tones", Kind: ir.Points, Xmax: 1,
		Points: []ir.Point{{Time: 0.5, Mark: "H*"}}})
	d := TextGrids(from, to)
	want := `- tier "words"
+ tier "phones"
+ tier "tones"
`
	if diff := cmp.Diff(want, d.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTextGridsPoints(t *testing.T) {
	tier := func(marks ...string) *ir.TextGrid {
		t := &ir.Tier{Class: ir.TextTier, Name: "tones", Kind: ir.Points, Xmax: 2}
		for i, m := range marks {
			t.Points = append(t.Points, ir.Point{Time: float64(i) + 0.5, Mark: m})
		}
		return &ir.TextGrid{Xmax: 2, Tiers: []*ir.Tier{t}}
	}
	d := TextGrids(tier("H*", "L%"), tier("H*"))
	want := `~ tier "tones"
  - 2: @1.5 "L%"
`
	if diff := cmp.Diff(want, d.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTextGridsSpan(t *testing.T) {
	to := grid("a", "b")
	to.Xmax = 3
	d := TextGrids(grid("a", "b"), to)
	if d == nil {
		t.Fatal("expected a diff")
	}
	if got := d.String(); got != "span [0, 2] -> [0, 3]\n" {
		t.Errorf("got %q", got)
	}
}
