package praat

import (
	"encoding/binary"
	"errors"
	"os"
	"testing"
	"unicode/utf16"

	"github.com/signadot/praat-format/ir"
	"github.com/signadot/praat-format/parse"
)

func TestParseFile(t *testing.T) {
	pts := []struct {
		path  string
		opts  []ParseOpt
		class string
	}{
		{path: "parse/testdata/two_frames.Formant", class: "Formant 2"},
		{path: "parse/testdata/pitch.Matrix", class: "Matrix"},
		{path: "parse/testdata/pitch.Matrix", opts: []ParseOpt{AsMatrix()}, class: "Matrix"},
		{path: "parse/testdata/words.TextGrid", class: "TextGrid"},
		{path: "parse/testdata/report.txt", class: "VoiceReport"},
	}
	for _, pt := range pts {
		obj, err := ParseFile(pt.path, pt.opts...)
		if err != nil {
			t.Errorf("%s: %v", pt.path, err)
			continue
		}
		if obj.Class() != pt.class {
			t.Errorf("%s: got class %q want %q", pt.path, obj.Class(), pt.class)
		}
	}
	obj, err := ParseFile("parse/testdata/pitch.Matrix")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := obj.(*ir.Pitch); !ok {
		t.Errorf("got %T", obj)
	}
	obj, err = ParseFile("parse/testdata/pitch.Matrix", AsMatrix())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := obj.(*ir.Matrix); !ok {
		t.Errorf("got %T", obj)
	}
}

func TestParseUTF16(t *testing.T) {
	d, err := os.ReadFile("parse/testdata/words.TextGrid")
	if err != nil {
		t.Fatal(err)
	}
	u := utf16.Encode([]rune("\ufeff" + string(d)))
	enc := make([]byte, 2*len(u))
	for i, c := range u {
		binary.BigEndian.PutUint16(enc[2*i:], c)
	}
	obj, err := Parse(enc)
	if err != nil {
		t.Fatal(err)
	}
	tg := obj.(*ir.TextGrid)
	if len(tg.Tiers) != 2 || tg.Tiers[0].Intervals[1].Text != `say "hi"` {
		t.Errorf("got %+v", tg.Tiers[0])
	}
}

func TestDetectErrors(t *testing.T) {
	dts := []string{
		"File type = \"ooTextFile\"\nObject class = \"Pitch 1\"\n",
		"File type = \"ooTextFile\"\n",
		"",
	}
	for _, d := range dts {
		if _, err := Parse([]byte(d)); !errors.Is(err, ErrUnknownClass) {
			t.Errorf("%q: expected ErrUnknownClass, got %v", d, err)
		}
	}
}

func TestParseOptions(t *testing.T) {
	d := []byte(`File type = "ooTextFile"
Object class = "Matrix"

dx = 1
x1 = 0
ny = 2
z [] []:
    z [1]:
        z [1] [1] = 1
`)
	obj, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	if p := obj.(*ir.Pitch); len(p.Warnings) != 1 {
		t.Errorf("got warnings %v", p.Warnings)
	}
	_, err = Parse(d, WithParseOptions(parse.ParseStrict()))
	if !errors.Is(err, parse.ErrIntegrity) {
		t.Errorf("expected ErrIntegrity, got %v", err)
	}
}
