package query

import "errors"

var (
	ErrRange = errors.New("time out of range")
	ErrField = errors.New("no numeric field")
	ErrExpr  = errors.New("bad filter expression")
)
