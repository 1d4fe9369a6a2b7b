package edit

import "errors"

var (
	ErrLookup   = errors.New("lookup failed")
	ErrBadRange = errors.New("bad time range")
	ErrPatch    = errors.New("patch failed")
)
