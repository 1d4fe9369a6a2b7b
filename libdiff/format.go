package libdiff

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/praat-format/ir"
)

func (s *Segment) String() string {
	if s.Xmin == s.Xmax {
		return fmt.Sprintf("%d: @%s %s", s.Index, ir.FormatFloat(s.Xmin), strconv.Quote(s.Text))
	}
	return fmt.Sprintf("%d: [%s, %s] %s", s.Index, ir.FormatFloat(s.Xmin), ir.FormatFloat(s.Xmax), strconv.Quote(s.Text))
}

func span(xmin, xmax float64) string {
	return fmt.Sprintf("[%s, %s]", ir.FormatFloat(xmin), ir.FormatFloat(xmax))
}

// Write writes d in a line oriented form: one line per changed tier,
// followed by one indented line per changed segment.
func (d *Diff) Write(w io.Writer) error {
	b := &strings.Builder{}
	if d.From.Xmin != d.To.Xmin || d.From.Xmax != d.To.Xmax {
		fmt.Fprintf(b, "span %s -> %s\n", span(d.From.Xmin, d.From.Xmax), span(d.To.Xmin, d.To.Xmax))
	}
	for i := range d.Tiers {
		td := &d.Tiers[i]
		fmt.Fprintf(b, "%s tier %s\n", td.Kind, strconv.Quote(td.Name))
		if td.Kind != Replace {
			continue
		}
		if td.From.Class != td.To.Class {
			fmt.Fprintf(b, "  class %s -> %s\n", td.From.Class, td.To.Class)
		}
		if td.From.Xmin != td.To.Xmin || td.From.Xmax != td.To.Xmax {
			fmt.Fprintf(b, "  span %s -> %s\n", span(td.From.Xmin, td.From.Xmax), span(td.To.Xmin, td.To.Xmax))
		}
		for _, sd := range td.Segments {
			switch sd.Kind {
			case Delete:
				fmt.Fprintf(b, "  - %s\n", sd.From)
			case Insert:
				fmt.Fprintf(b, "  + %s\n", sd.To)
			case Replace:
				fmt.Fprintf(b, "  ~ %s -> %s", sd.From, sd.To)
				if sd.Text != "" {
					fmt.Fprintf(b, "  %s", sd.Text)
				}
				b.WriteByte('\n')
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (d *Diff) String() string {
	b := &strings.Builder{}
	d.Write(b)
	return b.String()
}
