package ir

import (
	"fmt"
	"slices"
)

const (
	IntervalTier = "IntervalTier"
	TextTier     = "TextTier"
)

// SegmentKind says whether a tier holds intervals or points.
type SegmentKind int

const (
	Intervals SegmentKind = iota
	Points
)

func (k SegmentKind) String() string {
	switch k {
	case Intervals:
		return "intervals"
	case Points:
		return "points"
	}
	return "<unknown kind>"
}

func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SegmentKind) UnmarshalText(d []byte) error {
	kk, err := ParseSegmentKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

func ParseSegmentKind(s string) (SegmentKind, error) {
	switch s {
	case "intervals":
		return Intervals, nil
	case "points":
		return Points, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrKind, s)
}

// Interval is a labelled time range of an interval tier.
type Interval struct {
	Xmin float64 `json:"xmin"`
	Xmax float64 `json:"xmax"`
	Text string  `json:"text"`
}

func (i Interval) Duration() float64 {
	return i.Xmax - i.Xmin
}

func (i Interval) Contains(t float64) bool {
	return i.Xmin <= t && t <= i.Xmax
}

// Point is a labelled instant of a text tier.
type Point struct {
	Time float64 `json:"number"`
	Mark string  `json:"mark"`
}

// Tier is a named timeline of a TextGrid.
type Tier struct {
	Class     string      `json:"class"`
	Name      string      `json:"name"`
	Xmin      float64     `json:"xmin"`
	Xmax      float64     `json:"xmax"`
	Kind      SegmentKind `json:"kind"`
	Intervals []Interval  `json:"intervals,omitempty"`
	Points    []Point     `json:"points,omitempty"`
}

// Size returns the number of segments of the tier's kind.
func (t *Tier) Size() int {
	if t.Kind == Points {
		return len(t.Points)
	}
	return len(t.Intervals)
}

func (t *Tier) Clone() *Tier {
	res := *t
	res.Intervals = slices.Clone(t.Intervals)
	res.Points = slices.Clone(t.Points)
	return &res
}

// TextGrid is a parsed Praat TextGrid object. Header holds the preamble
// fields as read; Xmin, Xmax and Tiers are authoritative.
type TextGrid struct {
	Header *Header `json:"-"`
	Xmin   float64 `json:"xmin"`
	Xmax   float64 `json:"xmax"`
	Tiers  []*Tier `json:"tiers"`
}

func (tg *TextGrid) Class() string {
	return objectClass(tg.Header, "TextGrid")
}

// TierNames returns the tier names in order.
func (tg *TextGrid) TierNames() []string {
	res := make([]string, len(tg.Tiers))
	for i, t := range tg.Tiers {
		res[i] = t.Name
	}
	return res
}

func (tg *TextGrid) Clone() *TextGrid {
	res := &TextGrid{
		Header: tg.Header.Clone(),
		Xmin:   tg.Xmin,
		Xmax:   tg.Xmax,
	}
	if tg.Tiers != nil {
		res.Tiers = make([]*Tier, len(tg.Tiers))
		for i, t := range tg.Tiers {
			res.Tiers[i] = t.Clone()
		}
	}
	return res
}

// SyncHeader updates the preamble fields mirrored by Xmin, Xmax and the
// tier count.
func (tg *TextGrid) SyncHeader() {
	if tg.Header == nil {
		tg.Header = NewHeader()
	}
	tg.Header.Set("xmin", Float(tg.Xmin))
	tg.Header.Set("xmax", Float(tg.Xmax))
	tg.Header.Set("size", Int(int64(len(tg.Tiers))))
}
