package encode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/praat-format/ir"
	"github.com/signadot/praat-format/token"
)

const (
	tierIndent     = "    "
	fieldIndent    = "        "
	intervalIndent = "            "
)

// WriteTextGrid writes the interval tiers of tg in Praat's long text
// format. Point tiers and fields other than the class, name, span and
// intervals of each tier are not written.
func WriteTextGrid(w io.Writer, tg *ir.TextGrid) error {
	bw := bufio.NewWriter(w)
	tiers := make([]*ir.Tier, 0, len(tg.Tiers))
	for _, t := range tg.Tiers {
		if t.Kind == ir.Intervals {
			tiers = append(tiers, t)
		}
	}
	fmt.Fprintf(bw, "File type = \"ooTextFile\" \n")
	fmt.Fprintf(bw, "Object class = \"TextGrid\" \n\n")
	fmt.Fprintf(bw, "xmin = %s \n", ir.FormatFloat(tg.Xmin))
	fmt.Fprintf(bw, "xmax = %s \n", ir.FormatFloat(tg.Xmax))
	fmt.Fprintf(bw, "tiers? <exists> \n")
	fmt.Fprintf(bw, "size = %d \n", len(tiers))
	fmt.Fprintf(bw, "item []: \n")
	for i, t := range tiers {
		fmt.Fprintf(bw, "%sitem [%d]:\n", tierIndent, i+1)
		writeTier(bw, t)
	}
	return bw.Flush()
}

func writeTier(w io.Writer, t *ir.Tier) {
	class := t.Class
	if class == "" {
		class = ir.IntervalTier
	}
	fmt.Fprintf(w, "%sclass = %s \n", fieldIndent, token.Quote(class))
	fmt.Fprintf(w, "%sname = %s \n", fieldIndent, token.Quote(t.Name))
	fmt.Fprintf(w, "%sxmin = %s \n", fieldIndent, ir.FormatFloat(t.Xmin))
	fmt.Fprintf(w, "%sxmax = %s \n", fieldIndent, ir.FormatFloat(t.Xmax))
	fmt.Fprintf(w, "%sintervals: size = %d \n", fieldIndent, len(t.Intervals))
	for j, iv := range t.Intervals {
		fmt.Fprintf(w, "%sintervals [%d]:\n", fieldIndent, j+1)
		fmt.Fprintf(w, "%sxmin = %s \n", intervalIndent, ir.FormatFloat(iv.Xmin))
		fmt.Fprintf(w, "%sxmax = %s \n", intervalIndent, ir.FormatFloat(iv.Xmax))
		fmt.Fprintf(w, "%stext = %s \n", intervalIndent, token.Quote(iv.Text))
	}
}

// TextGridString returns the text WriteTextGrid writes for tg.
func TextGridString(tg *ir.TextGrid) string {
	buf := bytes.NewBuffer(nil)
	if err := WriteTextGrid(buf, tg); err != nil {
		panic(err)
	}
	return buf.String()
}
