package ir

import (
	"fmt"

	"github.com/signadot/praat-format/token"
)

// IntegrityWarning records a non-fatal inconsistency found while reading
// an object.
type IntegrityWarning struct {
	Pos token.Pos
	Msg string
}

func (w IntegrityWarning) Error() string {
	return fmt.Sprintf("integrity warning: %s at %s", w.Msg, w.Pos)
}
