package ir

import (
	"math"
	"testing"
)

func testFrame() *Frame {
	return &Frame{
		Time:   0.1,
		Fields: HeaderOf("intensity", 0.002, "nFormants", 2),
		Formants: []*Header{
			HeaderOf("frequency", 500.0, "bandwidth", 80.0),
			HeaderOf("frequency", 1500.0, "bandwidth", 120.0),
		},
	}
}

func TestFrameGet(t *testing.T) {
	f := testFrame()
	gets := []struct {
		path []string
		want float64
	}{
		{path: []string{"time"}, want: 0.1},
		{path: []string{"intensity"}, want: 0.002},
		{path: []string{"nFormants"}, want: 2},
		{path: []string{"f1", "frequency"}, want: 500},
		{path: []string{"f2.bandwidth"}, want: 120},
	}
	for _, g := range gets {
		v, ok := f.Get(g.path...)
		if !ok {
			t.Errorf("%v: not found", g.path)
			continue
		}
		n, _ := v.Number()
		if n != g.want {
			t.Errorf("%v: got %v want %v", g.path, n, g.want)
		}
	}
	for _, p := range [][]string{{"f3", "frequency"}, {"missing"}, {"fx", "frequency"}, {"a", "b", "c"}} {
		if _, ok := f.Get(p...); ok {
			t.Errorf("%v should not resolve", p)
		}
	}
}

func TestFrameNaN(t *testing.T) {
	f := testFrame()
	n := f.NaN()
	if !math.IsNaN(n.Time) {
		t.Error("time not NaN")
	}
	for _, p := range [][]string{{"intensity"}, {"f1", "frequency"}, {"f2", "bandwidth"}} {
		v, ok := n.Get(p...)
		if !ok || !v.IsNaN() {
			t.Errorf("%v: got %#v", p, v)
		}
	}
	if v, _ := f.Get("f1", "frequency"); v.IsNaN() {
		t.Error("original modified")
	}
}

func TestMatrixFlatten(t *testing.T) {
	m := &Matrix{
		Header: HeaderOf("xmin", 0, "xmax", 1, "nx", 2, "dx", 0.5, "x1", 0, "ymin", 1, "ymax", 1, "ny", 1, "dy", 1, "y1", 1),
		Columns: [][]Cell{{
			{Time: 0, Freq: Float(100)},
			{Time: 0.5, Freq: Float(200)},
		}},
	}
	p := m.Flatten()
	for _, k := range pitchDropped {
		if _, ok := p.Header.Get(k); ok {
			t.Errorf("%s should be dropped", k)
		}
	}
	if _, ok := m.Header.Get("ny"); !ok {
		t.Error("matrix header modified")
	}
	if len(p.Frames) != 2 {
		t.Fatalf("got %d frames", len(p.Frames))
	}
	if v, _ := p.Frames[1].Get(PitchField); !v.Equal(Float(200)) {
		t.Errorf("got %v", v)
	}
	empty := (&Matrix{Header: NewHeader()}).Flatten()
	if len(empty.Frames) != 0 {
		t.Error("expected no frames")
	}
}
