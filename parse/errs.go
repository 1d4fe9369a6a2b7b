package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/praat-format/token"
)

var (
	ErrParse        = errors.New("parse error")
	ErrIndex        = fmt.Errorf("%w: index mismatch", ErrParse)
	ErrEOF          = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrMissingField = fmt.Errorf("%w: missing field", ErrParse)
	ErrSize         = fmt.Errorf("%w: size mismatch", ErrParse)
	ErrLine         = fmt.Errorf("%w: malformed line", ErrParse)
	ErrIntegrity    = fmt.Errorf("%w: integrity", ErrParse)
)

// ParseError is a fatal error located at a line of the input.
type ParseError struct {
	Pos token.Pos
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(pos token.Pos, err error, msg string, args ...any) error {
	if msg == "" {
		return &ParseError{Pos: pos, Err: err}
	}
	return &ParseError{Pos: pos, Err: fmt.Errorf("%w: %s", err, fmt.Sprintf(msg, args...))}
}
