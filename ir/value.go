package ir

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Value is a scalar field value of a Praat object: an integer, a floating
// point number or a string.
type Value struct {
	Type    Type
	Int64   int64
	Float64 float64
	Text    string
}

func Int(i int64) Value {
	return Value{Type: IntType, Int64: i}
}

func Float(f float64) Value {
	return Value{Type: FloatType, Float64: f}
}

func String(s string) Value {
	return Value{Type: StringType, Text: s}
}

// NaN is the not-a-number sentinel used for missing data.
func NaN() Value {
	return Float(math.NaN())
}

// FromText coerces s to an integer if possible, else to a float, else
// keeps it as a string.
func FromText(s string) Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return String(s)
}

// Coerce re-applies FromText to string values. Numeric values are
// returned unchanged, so Coerce is idempotent.
func Coerce(v Value) Value {
	if v.Type == StringType {
		return FromText(v.Text)
	}
	return v
}

// Number returns the numeric value of an int or float Value.
func (v Value) Number() (float64, bool) {
	switch v.Type {
	case IntType:
		return float64(v.Int64), true
	case FloatType:
		return v.Float64, true
	}
	return 0, false
}

func (v Value) IsNaN() bool {
	return v.Type == FloatType && math.IsNaN(v.Float64)
}

// Any returns v as an int64, float64 or string.
func (v Value) Any() any {
	switch v.Type {
	case IntType:
		return v.Int64
	case FloatType:
		return v.Float64
	}
	return v.Text
}

func (v Value) String() string {
	switch v.Type {
	case IntType:
		return strconv.FormatInt(v.Int64, 10)
	case FloatType:
		return FormatFloat(v.Float64)
	}
	return v.Text
}

// Equal compares values by type and content; NaN equals NaN.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case IntType:
		return v.Int64 == o.Int64
	case FloatType:
		if math.IsNaN(v.Float64) {
			return math.IsNaN(o.Float64)
		}
		return v.Float64 == o.Float64
	}
	return v.Text == o.Text
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case IntType:
		return []byte(strconv.FormatInt(v.Int64, 10)), nil
	case FloatType:
		if math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
			return json.Marshal(FormatFloat(v.Float64))
		}
		return []byte(FormatFloat(v.Float64)), nil
	}
	return json.Marshal(v.Text)
}

func (v *Value) UnmarshalJSON(d []byte) error {
	d = bytes.TrimSpace(d)
	if len(d) > 0 && d[0] == '"' {
		var s string
		if err := json.Unmarshal(d, &s); err != nil {
			return err
		}
		switch s {
		case "NaN", "+Inf", "-Inf":
			*v = FromText(s)
		default:
			*v = String(s)
		}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(d, &n); err != nil {
		return err
	}
	*v = FromText(n.String())
	return nil
}

// FormatFloat formats f in the shortest decimal form that parses back to
// f, without an exponent.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
