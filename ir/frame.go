package ir

import (
	"math"
	"strconv"
	"strings"
)

// Frame is one time sample of a Formant or Pitch object.
type Frame struct {
	Time   float64
	Fields *Header
	// Formants[i] holds the fields of formant slot f<i+1>.
	Formants []*Header
}

// FormantName returns the slot name of the 1-based formant n.
func FormantName(n int) string {
	return "f" + strconv.Itoa(n)
}

// Formant returns the fields of the 1-based formant slot n, or nil.
func (f *Frame) Formant(n int) *Header {
	if n < 1 || n > len(f.Formants) {
		return nil
	}
	return f.Formants[n-1]
}

func formantIndex(name string) (int, bool) {
	if len(name) < 2 || name[0] != 'f' {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Get resolves a field path within f. A path is "time", a frame field
// such as "intensity", or a formant slot and field such as "f1",
// "frequency". A single dotted element ("f1.frequency") is split.
func (f *Frame) Get(path ...string) (Value, bool) {
	if len(path) == 1 && strings.Contains(path[0], ".") {
		path = strings.Split(path[0], ".")
	}
	switch len(path) {
	case 1:
		if path[0] == "time" {
			return Float(f.Time), true
		}
		return f.Fields.Get(path[0])
	case 2:
		n, ok := formantIndex(path[0])
		if !ok {
			return Value{}, false
		}
		return f.Formant(n).Get(path[1])
	}
	return Value{}, false
}

func (f *Frame) Clone() *Frame {
	res := &Frame{
		Time:   f.Time,
		Fields: f.Fields.Clone(),
	}
	if f.Formants != nil {
		res.Formants = make([]*Header, len(f.Formants))
		for i, h := range f.Formants {
			res.Formants[i] = h.Clone()
		}
	}
	return res
}

// NaN returns a copy of f with every leaf value, the time included,
// replaced by NaN.
func (f *Frame) NaN() *Frame {
	res := f.Clone()
	res.Time = math.NaN()
	nanAll(res.Fields)
	for _, h := range res.Formants {
		nanAll(h)
	}
	return res
}

func nanAll(h *Header) {
	for _, k := range h.Keys() {
		h.Set(k, NaN())
	}
}

// FrameSource is implemented by objects holding a time-ascending frame
// sequence.
type FrameSource interface {
	FrameList() []*Frame
	// Span returns the time domain of the object, if known.
	Span() (xmin, xmax float64, ok bool)
}

func headerSpan(h *Header) (float64, float64, bool) {
	xmin, ok1 := h.Float("xmin")
	xmax, ok2 := h.Float("xmax")
	return xmin, xmax, ok1 && ok2
}
