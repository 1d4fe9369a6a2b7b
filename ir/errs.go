package ir

import "errors"

var (
	ErrNotNumber = errors.New("not a number")
	ErrKind      = errors.New("unknown segment kind")
)
