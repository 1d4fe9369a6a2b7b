package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/signadot/praat-format/format"
	"github.com/signadot/praat-format/ir"

	"github.com/goccy/go-yaml"
)

var ErrDump = errors.New("cannot dump")

// Dump writes v as YAML, or as JSON with EncodeFormat(format.JSONFormat).
// v is a parsed object or a query or lookup result: a frame, a list of
// frames, a tier, an interval, a list of strings or a number. TextGrids
// may also be written with format.PraatFormat.
func Dump(w io.Writer, v any, opts ...EncodeOption) error {
	es := getState(opts)
	if es.format == format.PraatFormat {
		tg, ok := v.(*ir.TextGrid)
		if !ok {
			return fmt.Errorf("%w: %T as %s", ErrDump, v, es.format)
		}
		return WriteTextGrid(w, tg)
	}
	b := treeBuilder{json: es.format.IsJSON()}
	tree, err := b.any(v)
	if err != nil {
		return err
	}
	var yopts []yaml.EncodeOption
	if b.json {
		yopts = append(yopts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(tree, yopts...)
	if err != nil {
		return err
	}
	out := string(d)
	if es.colors != nil {
		out = es.colors.paint(d)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}

// MustString dumps v as YAML and panics on error.
func MustString(v any, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Dump(buf, v, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// treeBuilder converts objects to ordered YAML trees.
type treeBuilder struct {
	// json replaces non finite numbers, which JSON cannot hold, by
	// strings.
	json bool
}

func (b treeBuilder) value(v ir.Value) any {
	if b.json && v.Type == ir.FloatType && (math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0)) {
		return v.String()
	}
	return v.Any()
}

func (b treeBuilder) float(f float64) any {
	return b.value(ir.Float(f))
}

func (b treeBuilder) header(h *ir.Header) yaml.MapSlice {
	res := yaml.MapSlice{}
	h.Each(func(k string, v ir.Value) {
		res = append(res, yaml.MapItem{Key: k, Value: b.value(v)})
	})
	return res
}

func (b treeBuilder) frame(fr *ir.Frame) yaml.MapSlice {
	res := yaml.MapSlice{{Key: "time", Value: b.float(fr.Time)}}
	res = append(res, b.header(fr.Fields)...)
	for i, slot := range fr.Formants {
		res = append(res, yaml.MapItem{Key: ir.FormantName(i + 1), Value: b.header(slot)})
	}
	return res
}

func (b treeBuilder) frames(frames []*ir.Frame) []yaml.MapSlice {
	res := make([]yaml.MapSlice, len(frames))
	for i, fr := range frames {
		res[i] = b.frame(fr)
	}
	return res
}

func (b treeBuilder) tier(t *ir.Tier) yaml.MapSlice {
	res := yaml.MapSlice{
		{Key: "class", Value: t.Class},
		{Key: "name", Value: t.Name},
		{Key: "xmin", Value: b.float(t.Xmin)},
		{Key: "xmax", Value: b.float(t.Xmax)},
	}
	if t.Kind == ir.Points {
		points := make([]yaml.MapSlice, len(t.Points))
		for i, p := range t.Points {
			points[i] = yaml.MapSlice{
				{Key: "number", Value: b.float(p.Time)},
				{Key: "mark", Value: p.Mark},
			}
		}
		return append(res, yaml.MapItem{Key: "points", Value: points})
	}
	intervals := make([]yaml.MapSlice, len(t.Intervals))
	for i, iv := range t.Intervals {
		intervals[i] = b.interval(iv)
	}
	return append(res, yaml.MapItem{Key: "intervals", Value: intervals})
}

func (b treeBuilder) interval(iv ir.Interval) yaml.MapSlice {
	return yaml.MapSlice{
		{Key: "xmin", Value: b.float(iv.Xmin)},
		{Key: "xmax", Value: b.float(iv.Xmax)},
		{Key: "text", Value: iv.Text},
	}
}

func warnings(ws []ir.IntegrityWarning) []string {
	res := make([]string, len(ws))
	for i, w := range ws {
		res[i] = w.Error()
	}
	return res
}

func (b treeBuilder) any(v any) (any, error) {
	switch x := v.(type) {
	case *ir.Formant:
		return yaml.MapSlice{
			{Key: "class", Value: x.Class()},
			{Key: "header", Value: b.header(x.Header)},
			{Key: "frames", Value: b.frames(x.Frames)},
		}, nil
	case *ir.Pitch:
		res := yaml.MapSlice{
			{Key: "class", Value: x.Class()},
			{Key: "header", Value: b.header(x.Header)},
			{Key: "frames", Value: b.frames(x.Frames)},
		}
		if len(x.Warnings) != 0 {
			res = append(res, yaml.MapItem{Key: "warnings", Value: warnings(x.Warnings)})
		}
		return res, nil
	case *ir.Matrix:
		cols := make([][]yaml.MapSlice, len(x.Columns))
		for i, col := range x.Columns {
			cols[i] = make([]yaml.MapSlice, len(col))
			for j, c := range col {
				cols[i][j] = yaml.MapSlice{
					{Key: "time", Value: b.float(c.Time)},
					{Key: "freq", Value: b.value(c.Freq)},
				}
			}
		}
		res := yaml.MapSlice{
			{Key: "class", Value: x.Class()},
			{Key: "header", Value: b.header(x.Header)},
			{Key: "columns", Value: cols},
		}
		if len(x.Warnings) != 0 {
			res = append(res, yaml.MapItem{Key: "warnings", Value: warnings(x.Warnings)})
		}
		return res, nil
	case *ir.TextGrid:
		tiers := make([]yaml.MapSlice, len(x.Tiers))
		for i, t := range x.Tiers {
			tiers[i] = b.tier(t)
		}
		return yaml.MapSlice{
			{Key: "class", Value: x.Class()},
			{Key: "xmin", Value: b.float(x.Xmin)},
			{Key: "xmax", Value: b.float(x.Xmax)},
			{Key: "tiers", Value: tiers},
		}, nil
	case *ir.VoiceReport:
		sections := yaml.MapSlice{}
		for _, s := range x.Sections {
			sections = append(sections, yaml.MapItem{Key: s.Title, Value: b.header(s.Fields)})
		}
		return yaml.MapSlice{
			{Key: "title", Value: x.Title},
			{Key: "sections", Value: sections},
		}, nil
	case *ir.Frame:
		return b.frame(x), nil
	case []*ir.Frame:
		return b.frames(x), nil
	case *ir.Tier:
		return b.tier(x), nil
	case []*ir.Tier:
		res := make([]yaml.MapSlice, len(x))
		for i, t := range x {
			res[i] = b.tier(t)
		}
		return res, nil
	case *ir.Interval:
		return b.interval(*x), nil
	case []string:
		return x, nil
	case float64:
		return b.float(x), nil
	case string:
		return x, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrDump, v)
}
