package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Header is an ordered mapping from field names to values. Setting an
// existing key replaces its value and keeps its position. The zero Header
// is ready to use.
type Header struct {
	keys []string
	vals map[string]Value
}

func NewHeader() *Header {
	return &Header{}
}

// HeaderOf builds a Header from alternating key, value pairs.
func HeaderOf(kvs ...any) *Header {
	h := &Header{}
	for i := 0; i+1 < len(kvs); i += 2 {
		k := kvs[i].(string)
		switch v := kvs[i+1].(type) {
		case Value:
			h.Set(k, v)
		case int:
			h.Set(k, Int(int64(v)))
		case int64:
			h.Set(k, Int(v))
		case float64:
			h.Set(k, Float(v))
		case string:
			h.Set(k, String(v))
		default:
			panic(fmt.Sprintf("HeaderOf: unsupported %T", v))
		}
	}
	return h
}

func (h *Header) Set(k string, v Value) {
	if h.vals == nil {
		h.vals = map[string]Value{}
	}
	if _, ok := h.vals[k]; !ok {
		h.keys = append(h.keys, k)
	}
	h.vals[k] = v
}

func (h *Header) Get(k string) (Value, bool) {
	if h == nil {
		return Value{}, false
	}
	v, ok := h.vals[k]
	return v, ok
}

// Float returns the numeric value of field k.
func (h *Header) Float(k string) (float64, bool) {
	v, ok := h.Get(k)
	if !ok {
		return 0, false
	}
	return v.Number()
}

// Int returns the value of field k if it is an integer.
func (h *Header) Int(k string) (int64, bool) {
	v, ok := h.Get(k)
	if !ok || v.Type != IntType {
		return 0, false
	}
	return v.Int64, true
}

// Text returns the string form of field k.
func (h *Header) Text(k string) (string, bool) {
	v, ok := h.Get(k)
	if !ok {
		return "", false
	}
	return v.String(), true
}

func (h *Header) Delete(k string) {
	if h == nil {
		return
	}
	if _, ok := h.vals[k]; !ok {
		return
	}
	delete(h.vals, k)
	for i, kk := range h.keys {
		if kk == k {
			h.keys = append(h.keys[:i:i], h.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the field names in insertion order.
func (h *Header) Keys() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.keys...)
}

func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.keys)
}

func (h *Header) Clone() *Header {
	if h == nil {
		return nil
	}
	res := &Header{
		keys: append([]string(nil), h.keys...),
		vals: make(map[string]Value, len(h.vals)),
	}
	for k, v := range h.vals {
		res.vals[k] = v
	}
	return res
}

// Each calls f on each field in order.
func (h *Header) Each(f func(k string, v Value)) {
	if h == nil {
		return
	}
	for _, k := range h.keys {
		f(k, h.vals[k])
	}
}

// Equal reports whether h and o hold the same fields in the same order.
func (h *Header) Equal(o *Header) bool {
	if h.Len() != o.Len() {
		return false
	}
	for i, k := range h.Keys() {
		if o.keys[i] != k {
			return false
		}
		if !h.vals[k].Equal(o.vals[k]) {
			return false
		}
	}
	return true
}

func (h *Header) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, k := range h.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vd, err := h.vals[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (h *Header) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("header: expected object, got %v", tok)
	}
	*h = Header{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		k, ok := tok.(string)
		if !ok {
			return fmt.Errorf("header: expected key, got %v", tok)
		}
		var v Value
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("header field %q: %w", k, err)
		}
		h.Set(k, v)
	}
	_, err = dec.Token()
	return err
}
