package runner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrExternalTool = errors.New("external tool failed")
	ErrNoOutput     = errors.New("no output written")
	ErrNotFound     = errors.New("praat not found")
	ErrInvalidAudio = errors.New("invalid wav file")
	ErrUnknownKey   = errors.New("unknown parameter key")
)

// ExternalToolError is a failed run of Praat. It matches ErrExternalTool
// as well as its cause.
type ExternalToolError struct {
	Tool   string
	Script string
	Args   []string
	Err    error
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("%s --run %s %s: %s", e.Tool, e.Script, strings.Join(e.Args, " "), e.Err.Error())
}

func (e *ExternalToolError) Unwrap() []error {
	return []error{ErrExternalTool, e.Err}
}
