package parse

import (
	"io"
	"strings"

	"github.com/signadot/praat-format/ir"
	"github.com/signadot/praat-format/token"
)

const (
	itemsStart = "item []:"
	itemPrefix = "item"
)

var (
	// tierRaw are the tier fields never coerced to numbers.
	tierRaw = map[string]bool{"class": true, "name": true}
	// segmentRaw are the segment fields never coerced to numbers.
	segmentRaw = map[string]bool{"text": true, "mark": true}
	// segmentLabels start a new field within a segment.
	segmentLabels = []string{"xmin", "xmax", "number", "time", "mark", "text"}
)

// TextGrid reads a Praat TextGrid object.
func TextGrid(in io.Reader, opts ...ParseOption) (*ir.TextGrid, error) {
	r := newReader(in, opts)
	h := ir.NewHeader()
	// without tiers the input may end after the header
	start, ok := readBlock(r.src, h, nil, []string{itemsStart})
	if ok {
		r.src.Next()
	} else if n, has := h.Int("size"); r.src.Err() != nil || (has && n != 0) {
		return nil, r.eof(itemsStart)
	}
	var err error
	tg := &ir.TextGrid{Header: h, Tiers: []*ir.Tier{}}
	if tg.Xmin, err = requireFloat(h, "xmin", start.Pos); err != nil {
		return nil, err
	}
	if tg.Xmax, err = requireFloat(h, "xmax", start.Pos); err != nil {
		return nil, err
	}
	for {
		l, ok := r.src.Peek()
		if !ok || !l.HasPrefix(itemPrefix) {
			break
		}
		r.src.Next()
		i, err := r.index(l)
		if err != nil {
			return nil, err
		}
		if i != len(tg.Tiers)+1 {
			return nil, parseErr(l.Pos, ErrIndex, "item %d after %d tiers", i, len(tg.Tiers))
		}
		tier, err := r.tier()
		if err != nil {
			return nil, err
		}
		tg.Tiers = append(tg.Tiers, tier)
	}
	if err := r.src.Err(); err != nil {
		return nil, err
	}
	if n, ok := h.Int("size"); ok && int(n) != len(tg.Tiers) {
		return nil, parseErr(start.Pos, ErrSize, "declared %d tiers, read %d", n, len(tg.Tiers))
	}
	return tg, nil
}

func (r *reader) tier() (*ir.Tier, error) {
	fields := ir.NewHeader()
	l, err := r.block(fields, tierRaw, "intervals:", "points:")
	if err != nil {
		return nil, err
	}
	kindStr, _, _ := strings.Cut(l.Text, ":")
	kind, err := ir.ParseSegmentKind(kindStr)
	if err != nil {
		return nil, parseErr(l.Pos, ErrLine, "%v", err)
	}
	_, sizeStr, err := token.SplitKeyEquals(l.Text)
	if err != nil {
		return nil, parseErr(l.Pos, ErrLine, "%v", err)
	}
	size := ir.FromText(sizeStr)
	if size.Type != ir.IntType {
		return nil, parseErr(l.Pos, ErrLine, "size %q is not an integer", sizeStr)
	}
	t := &ir.Tier{Kind: kind}
	t.Class, _ = fields.Text("class")
	t.Name, _ = fields.Text("name")
	if t.Xmin, err = requireFloat(fields, "xmin", l.Pos); err != nil {
		return nil, err
	}
	if t.Xmax, err = requireFloat(fields, "xmax", l.Pos); err != nil {
		return nil, err
	}
	prefix := kind.String() + " ["
	for {
		sl, ok := r.src.Peek()
		if !ok || !sl.HasPrefix(prefix) {
			break
		}
		r.src.Next()
		seg, err := r.segment(prefix)
		if err != nil {
			return nil, err
		}
		if err := addSegment(t, seg, sl.Pos); err != nil {
			return nil, err
		}
	}
	if int(size.Int64) != t.Size() {
		return nil, parseErr(l.Pos, ErrSize, "tier %q declares %d %s, read %d", t.Name, size.Int64, kind, t.Size())
	}
	return t, nil
}

// segment reads the fields of one interval or point. A field runs until
// the next line starting with a field label, the segment prefix or
// "item"; continuation lines are joined with newlines so that multi-line
// texts are kept whole. An open quoted value always continues.
func (r *reader) segment(prefix string) (*ir.Header, error) {
	seg := ir.NewHeader()
	for {
		l, ok := r.src.Peek()
		if !ok || l.HasPrefix(prefix, itemPrefix) {
			return seg, nil
		}
		r.src.Next()
		if l.Text == "" {
			continue
		}
		buf := l.Text
		for {
			next, ok := r.src.Peek()
			if !ok {
				break
			}
			if !openQuote(buf) && next.HasPrefix(append([]string{prefix, itemPrefix}, segmentLabels...)...) {
				break
			}
			r.src.Next()
			buf += "\n" + next.Raw
		}
		k, v, err := token.SplitKeyRaw(buf)
		if err != nil {
			return nil, parseErr(l.Pos, ErrLine, "%v", err)
		}
		seg.Set(k, fieldValue(k, v, segmentRaw))
	}
}

// openQuote reports whether the value of a `key = "...` buffer has an
// unterminated string.
func openQuote(buf string) bool {
	_, v, ok := strings.Cut(buf, "=")
	if !ok {
		return false
	}
	return strings.Count(v, `"`)%2 == 1
}

func addSegment(t *ir.Tier, seg *ir.Header, pos token.Pos) error {
	switch t.Kind {
	case ir.Points:
		at, ok := seg.Float("number")
		if !ok {
			if at, ok = seg.Float("time"); !ok {
				return parseErr(pos, ErrMissingField, "point time")
			}
		}
		mark, _ := seg.Text("mark")
		t.Points = append(t.Points, ir.Point{Time: at, Mark: mark})
	default:
		xmin, err := requireFloat(seg, "xmin", pos)
		if err != nil {
			return err
		}
		xmax, err := requireFloat(seg, "xmax", pos)
		if err != nil {
			return err
		}
		text, _ := seg.Text("text")
		t.Intervals = append(t.Intervals, ir.Interval{Xmin: xmin, Xmax: xmax, Text: text})
	}
	return nil
}
