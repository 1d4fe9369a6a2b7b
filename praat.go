// Package praat reads Praat text objects of any supported class.
//
// The class of an object is taken from its "Object class" line, or from
// the title of a voice report:
//
//	obj, err := praat.ParseFile("hello.TextGrid")
//	if tg, ok := obj.(*ir.TextGrid); ok {
//		...
//	}
//
// Single column Matrix objects are read as Pitch objects unless AsMatrix
// is given.
package praat

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/praat-format/ir"
	"github.com/signadot/praat-format/parse"
	"github.com/signadot/praat-format/token"
)

var ErrUnknownClass = errors.New("unknown object class")

type Class int

const (
	UnknownClass Class = iota
	FormantClass
	MatrixClass
	TextGridClass
	VoiceReportClass
)

func (c Class) String() string {
	switch c {
	case FormantClass:
		return "Formant"
	case MatrixClass:
		return "Matrix"
	case TextGridClass:
		return "TextGrid"
	case VoiceReportClass:
		return "VoiceReport"
	}
	return "unknown"
}

const (
	classKey     = "Object class"
	reportPrefix = "-- Voice report"
	// detectLines bounds how far Detect looks for the class line.
	detectLines = 8
)

// Detect returns the class of the object in d.
func Detect(d []byte) (Class, error) {
	src := token.NewSource(bytes.NewReader(d))
	for range detectLines {
		l, ok := src.Next()
		if !ok {
			break
		}
		if strings.HasPrefix(l.Text, reportPrefix) {
			return VoiceReportClass, nil
		}
		if !l.HasPrefix(classKey) {
			continue
		}
		_, class, err := token.SplitKeyEquals(l.Text)
		if err != nil {
			return UnknownClass, err
		}
		switch {
		case strings.HasPrefix(class, "Formant"):
			return FormantClass, nil
		case class == "Matrix":
			return MatrixClass, nil
		case class == "TextGrid":
			return TextGridClass, nil
		}
		return UnknownClass, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	if err := src.Err(); err != nil {
		return UnknownClass, err
	}
	return UnknownClass, fmt.Errorf("%w: no %q line", ErrUnknownClass, classKey)
}

type parseConfig struct {
	matrix bool
	opts   []parse.ParseOption
}

type ParseOpt func(*parseConfig)

// AsMatrix reads Matrix objects as *ir.Matrix instead of *ir.Pitch.
func AsMatrix() ParseOpt {
	return func(c *parseConfig) { c.matrix = true }
}

// WithParseOptions passes opts to the object reader.
func WithParseOptions(opts ...parse.ParseOption) ParseOpt {
	return func(c *parseConfig) { c.opts = append(c.opts, opts...) }
}

// Parse reads the object in d according to its class.
func Parse(d []byte, opts ...ParseOpt) (ir.Object, error) {
	cfg := &parseConfig{}
	for _, o := range opts {
		o(cfg)
	}
	class, err := Detect(d)
	if err != nil {
		return nil, err
	}
	in := bytes.NewReader(d)
	switch class {
	case FormantClass:
		return parse.Formant(in, cfg.opts...)
	case MatrixClass:
		if cfg.matrix {
			return parse.Matrix(in, cfg.opts...)
		}
		return parse.Pitch(in, cfg.opts...)
	case TextGridClass:
		return parse.TextGrid(in, cfg.opts...)
	case VoiceReportClass:
		return parse.VoiceReport(in)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownClass, class)
}

// ParseFile reads the object in the file at path.
func ParseFile(path string, opts ...ParseOpt) (ir.Object, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	obj, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obj, nil
}
