package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/praat-format/ir"
)

var out io.Writer = os.Stderr

// SetOutput redirects debug output, mainly for tests.
func SetOutput(w io.Writer) {
	out = w
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Header:
			d, err := json.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw header] %v", x.Keys())
				continue
			}
			args[i] = string(d)
		case *ir.Frame:
			args[i] = fmt.Sprintf("frame@%s", ir.FormatFloat(x.Time))
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
