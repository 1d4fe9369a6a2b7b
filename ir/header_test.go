package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeaderLastWriteWins(t *testing.T) {
	h := NewHeader()
	h.Set("xmin", Int(0))
	h.Set("xmax", Float(2.5))
	h.Set("xmin", Float(0.5))
	if diff := cmp.Diff([]string{"xmin", "xmax"}, h.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := h.Float("xmin"); v != 0.5 {
		t.Errorf("got %v want 0.5", v)
	}
}

func TestHeaderDelete(t *testing.T) {
	h := HeaderOf("a", 1, "b", 2, "c", 3)
	h.Delete("b")
	h.Delete("missing")
	if diff := cmp.Diff([]string{"a", "c"}, h.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	h.Set("b", Int(4))
	if diff := cmp.Diff([]string{"a", "c", "b"}, h.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderCloneIndependent(t *testing.T) {
	h := HeaderOf("a", 1)
	c := h.Clone()
	c.Set("a", Int(2))
	c.Set("b", Int(3))
	if v, _ := h.Int("a"); v != 1 {
		t.Errorf("original modified: %d", v)
	}
	if h.Len() != 1 {
		t.Errorf("original grew to %d", h.Len())
	}
}

func TestHeaderNil(t *testing.T) {
	var h *Header
	if _, ok := h.Get("x"); ok {
		t.Error("nil header has no fields")
	}
	if h.Len() != 0 || h.Keys() != nil || h.Clone() != nil {
		t.Error("nil header")
	}
	if !h.Equal(NewHeader()) {
		t.Error("nil header equals empty header")
	}
}
