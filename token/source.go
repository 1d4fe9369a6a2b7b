package token

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const maxLineSize = 4 << 20

// Line is a single line of a Praat text object.
type Line struct {
	// Text is the line with surrounding whitespace removed.
	Text string
	// Raw is the line without its terminator.
	Raw string
	Pos Pos
}

// HasPrefix reports whether the trimmed line starts with any of prefixes.
func (l Line) HasPrefix(prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(l.Text, p) {
			return true
		}
	}
	return false
}

// Source reads lines with one line of lookahead.
type Source struct {
	sc     *bufio.Scanner
	line   int
	peeked *Line
	eof    bool
	err    error
}

// NewSource creates a Source reading from r. A leading UTF-8 byte order
// mark is dropped and UTF-16 input (with byte order mark) is decoded.
func NewSource(r io.Reader) *Source {
	sc := bufio.NewScanner(decodeReader(r))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Source{sc: sc}
}

// Peek returns the next line without consuming it. It returns false at
// end of input or on a read error, see [Source.Err].
func (s *Source) Peek() (Line, bool) {
	if s.peeked != nil {
		return *s.peeked, true
	}
	if s.eof {
		return Line{}, false
	}
	if !s.sc.Scan() {
		s.eof = true
		if err := s.sc.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				err = NewLineErr(ErrLineTooLong, Pos{Line: s.line + 1})
			}
			s.err = err
		}
		return Line{}, false
	}
	s.line++
	raw := strings.TrimRight(s.sc.Text(), "\r")
	l := Line{
		Text: strings.TrimSpace(raw),
		Raw:  raw,
		Pos:  Pos{Line: s.line, Text: raw},
	}
	s.peeked = &l
	return l, true
}

// Next consumes and returns the next line.
func (s *Source) Next() (Line, bool) {
	l, ok := s.Peek()
	s.peeked = nil
	return l, ok
}

// Err returns the first read error encountered, if any.
func (s *Source) Err() error {
	return s.err
}

// LineNo returns the number of the last line read.
func (s *Source) LineNo() int {
	return s.line
}

func decodeReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
