package token

import (
	"errors"
	"fmt"
)

var (
	ErrNoEquals    = errors.New("no '=' in line")
	ErrNoBracket   = errors.New("no bracket group in line")
	ErrUnbalanced  = errors.New("unterminated bracket group")
	ErrLineTooLong = errors.New("line too long")
)

// LineErr annotates err with the line it occurred on.
type LineErr struct {
	Err error
	Pos Pos
}

func NewLineErr(err error, pos Pos) error {
	return &LineErr{Err: err, Pos: pos}
}

func (e *LineErr) Unwrap() error {
	return e.Err
}

func (e *LineErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
