package ir

import (
	"encoding/json"
	"math"
	"testing"
)

type fromTextTest struct {
	in  string
	out Value
}

func TestFromText(t *testing.T) {
	fts := []fromTextTest{
		{in: "12", out: Int(12)},
		{in: "-3", out: Int(-3)},
		{in: "0.025", out: Float(0.025)},
		{in: "1e3", out: Float(1000)},
		{in: "words", out: String("words")},
		{in: "", out: String("")},
		{in: "--undefined--", out: String("--undefined--")},
	}
	for _, ft := range fts {
		got := FromText(ft.in)
		if !got.Equal(ft.out) {
			t.Errorf("FromText(%q): got %#v want %#v", ft.in, got, ft.out)
		}
	}
}

func TestCoerceIdempotent(t *testing.T) {
	for _, v := range []Value{Int(3), Float(2.5), String("7"), String("x"), NaN()} {
		once := Coerce(v)
		twice := Coerce(once)
		if !once.Equal(twice) {
			t.Errorf("Coerce not idempotent on %#v: %#v then %#v", v, once, twice)
		}
	}
	if got := Coerce(String("7")); got.Type != IntType || got.Int64 != 7 {
		t.Errorf("got %#v", got)
	}
}

func TestValueNumber(t *testing.T) {
	if n, ok := Int(4).Number(); !ok || n != 4 {
		t.Errorf("got %v %v", n, ok)
	}
	if _, ok := String("4").Number(); ok {
		t.Error("string should not be a number")
	}
	if !NaN().IsNaN() {
		t.Error("NaN")
	}
	if !NaN().Equal(NaN()) {
		t.Error("NaN should equal NaN")
	}
	if Int(1).Equal(Float(1)) {
		t.Error("int and float values differ by type")
	}
}

func TestValueJSON(t *testing.T) {
	h := HeaderOf("a", 1, "b", 0.5, "c", "x", "d", NaN())
	d, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"b":0.5,"c":"x","d":"NaN"}`
	if string(d) != want {
		t.Errorf("got %s want %s", d, want)
	}
	back := &Header{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(h) {
		t.Errorf("round trip: got %v want %v", back.Keys(), h.Keys())
	}
	v, _ := back.Get("d")
	if !math.IsNaN(v.Float64) {
		t.Errorf("expected NaN, got %#v", v)
	}
}

func TestFormatFloat(t *testing.T) {
	for f, s := range map[float64]string{
		0:        "0",
		1.5:      "1.5",
		0.00001:  "0.00001",
		2:        "2",
		123.4567: "123.4567",
	} {
		if got := FormatFloat(f); got != s {
			t.Errorf("FormatFloat(%v): got %q want %q", f, got, s)
		}
	}
}
