package encode

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/praat-format/format"
	"github.com/signadot/praat-format/ir"
	"github.com/signadot/praat-format/parse"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

func abGrid() *ir.TextGrid {
	return &ir.TextGrid{
		Xmin: 0,
		Xmax: 2,
		Tiers: []*ir.Tier{{
			Class: ir.IntervalTier,
			Name:  "words",
			Xmin:  0,
			Xmax:  2,
			Intervals: []ir.Interval{
				{Xmin: 0, Xmax: 1, Text: "a"},
				{Xmin: 1, Xmax: 2, Text: "b"},
			},
		}},
	}
}

func TestWriteTextGrid(t *testing.T) {
	want := `File type = "ooTextFile" 
Object class = "TextGrid" 

xmin = 0 
xmax = 2 
tiers? <exists> 
size = 1 
item []: 
    item [1]:
        class = "IntervalTier" 
        name = "words" 
        xmin = 0 
        xmax = 2 
        intervals: size = 2 
        intervals [1]:
            xmin = 0 
            xmax = 1 
            text = "a" 
        intervals [2]:
            xmin = 1 
            xmax = 2 
            text = "b" 
`
	got := TextGridString(abGrid())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTextGridRoundTrip(t *testing.T) {
	tgs := []*ir.TextGrid{abGrid()}
	quoted := abGrid()
	quoted.Tiers[0].Intervals[0].Text = `say "hi"`
	quoted.Tiers[0].Intervals[1].Text = "0.5"
	quoted.Tiers[0].Name = "2"
	tgs = append(tgs, quoted)
	fine := abGrid()
	fine.Xmax = 1.0000001
	fine.Tiers[0].Xmax = 1.0000001
	fine.Tiers[0].Intervals[0].Xmax = 0.123456789
	fine.Tiers[0].Intervals[1].Xmin = 0.123456789
	fine.Tiers[0].Intervals[1].Xmax = 1.0000001
	tgs = append(tgs, fine)
	for _, tg := range tgs {
		text := TextGridString(tg)
		got, err := parse.TextGrid(strings.NewReader(text))
		if err != nil {
			t.Errorf("%v\n%s", err, text)
			continue
		}
		if diff := cmp.Diff(tg.Tiers, got.Tiers); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		if got.Xmin != tg.Xmin || got.Xmax != tg.Xmax {
			t.Errorf("span %v %v", got.Xmin, got.Xmax)
		}
	}
}

func TestWriteTextGridDropsPoints(t *testing.T) {
	tg := abGrid()
	tg.Tiers = append([]*ir.Tier{{
		Class:  ir.TextTier,
		Name:   "tones",
		Xmax:   2,
		Kind:   ir.Points,
		Points: []ir.Point{{Time: 1, Mark: "H"}},
	}}, tg.Tiers...)
	got, err := parse.TextGrid(strings.NewReader(TextGridString(tg)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"words"}, got.TierNames()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if n, _ := got.Header.Int("size"); n != 1 {
		t.Errorf("size %d", n)
	}
}

func testPitch() *ir.Pitch {
	p := ir.NewPitch([]float64{0, 0.5, 1}, []float64{100, 200, 300})
	p.Frames[1].Fields.Set(ir.PitchField, ir.NaN())
	return p
}

func TestDumpYAML(t *testing.T) {
	buf := &strings.Builder{}
	if err := Dump(buf, testPitch()); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Class  string           `yaml:"class"`
		Frames []map[string]any `yaml:"frames"`
	}
	if err := yaml.Unmarshal([]byte(buf.String()), &got); err != nil {
		t.Fatalf("%v\n%s", err, buf)
	}
	if got.Class != "Matrix" || len(got.Frames) != 3 {
		t.Errorf("got %+v", got)
	}
	if got.Frames[2]["freq"] != 300.0 {
		t.Errorf("got %v", got.Frames[2])
	}
	if !strings.HasPrefix(buf.String(), "class: Matrix\nheader:\n") {
		t.Errorf("keys out of order:\n%s", buf)
	}
}

func TestDumpJSON(t *testing.T) {
	buf := &strings.Builder{}
	if err := Dump(buf, testPitch(), EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Frames []map[string]any `json:"frames"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &got); err != nil {
		t.Fatalf("%v\n%s", err, buf)
	}
	if len(got.Frames) != 3 {
		t.Fatalf("got %+v", got)
	}
	if got.Frames[1]["freq"] != "NaN" {
		t.Errorf("got %v", got.Frames[1]["freq"])
	}
	if got.Frames[2]["time"] != 1.0 {
		t.Errorf("got %v", got.Frames[2]["time"])
	}
}

func TestDumpResults(t *testing.T) {
	tg := abGrid()
	dts := []struct {
		v    any
		want string
	}{
		{v: tg.TierNames(), want: "- words"},
		{v: 2.5, want: "2.5"},
	}
	for _, dt := range dts {
		if got := MustString(dt.v); got != dt.want {
			t.Errorf("got %q want %q", got, dt.want)
		}
	}
	if got := MustString(&tg.Tiers[0].Intervals[1]); !strings.HasSuffix(got, "text: b") {
		t.Errorf("got %q", got)
	}
	err := Dump(&strings.Builder{}, testPitch(), EncodeFormat(format.PraatFormat))
	if !errors.Is(err, ErrDump) {
		t.Errorf("expected ErrDump, got %v", err)
	}
	if err := Dump(&strings.Builder{}, 3); !errors.Is(err, ErrDump) {
		t.Errorf("expected ErrDump, got %v", err)
	}
}

func TestDumpColors(t *testing.T) {
	save := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = save }()
	plain := MustString(abGrid())
	colored := MustString(abGrid(), EncodeColors(NewColors()))
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("no escapes in\n%s", colored)
	}
	if colored == plain {
		t.Error("colors had no effect")
	}
}
