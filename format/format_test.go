package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"y", "yaml", "j", "json", "p", "praat"} {
		f, err := ParseFormat(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
			continue
		}
		if s != f.String() && s != f.String()[:1] {
			t.Errorf("%s parsed as %s", s, f)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil || !f.IsJSON() {
		t.Errorf("got %v, %v", f, err)
	}
}
