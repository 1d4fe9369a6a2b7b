package token

import (
	"fmt"
	"strconv"
)

// Pos is the position of a line in a Praat text object.
type Pos struct {
	// Line is 1-based; zero means unknown (end of input).
	Line int
	Text string
}

func (p Pos) IsEOF() bool {
	return p.Line == 0
}

func (p Pos) String() string {
	if p.IsEOF() {
		return "end of input"
	}
	sample := p.Text
	if len(sample) > 40 {
		sample = sample[:40]
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`%s` (line=%d)", sample, p.Line)
}
