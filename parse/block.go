package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/praat-format/debug"
	"github.com/signadot/praat-format/ir"
	"github.com/signadot/praat-format/token"
)

// ReadHeader reads `key = value` lines from src into h until a line whose
// trimmed content starts with one of stops. That line is left unread and
// returned. Lines without '=' are skipped, and a repeated key replaces the
// earlier value. ReadHeader returns false if the input ends first.
func ReadHeader(src *token.Source, h *ir.Header, stops ...string) (token.Line, bool) {
	return readBlock(src, h, nil, stops)
}

// readBlock is ReadHeader where the values of raw keys are kept as
// unquoted strings instead of being coerced.
func readBlock(src *token.Source, h *ir.Header, raw map[string]bool, stops []string) (token.Line, bool) {
	for {
		l, ok := src.Peek()
		if !ok {
			return token.Line{}, false
		}
		if l.HasPrefix(stops...) {
			return l, true
		}
		src.Next()
		k, v, err := token.SplitKeyRaw(l.Text)
		if err != nil {
			continue
		}
		h.Set(k, fieldValue(k, v, raw))
	}
}

func fieldValue(k, v string, raw map[string]bool) ir.Value {
	if raw[k] {
		return ir.String(token.Unquote(v))
	}
	return ir.FromText(token.TrimQuotes(v))
}

type reader struct {
	src      *token.Source
	opts     *parseOpts
	warnings []ir.IntegrityWarning
}

func newReader(in io.Reader, opts []ParseOption) *reader {
	return &reader{
		src:  token.NewSource(in),
		opts: getOpts(opts),
	}
}

// block reads a header block up to and including the stop line.
func (r *reader) block(h *ir.Header, raw map[string]bool, stops ...string) (token.Line, error) {
	l, ok := readBlock(r.src, h, raw, stops)
	if !ok {
		return token.Line{}, r.eof(stops...)
	}
	r.src.Next()
	return l, nil
}

func (r *reader) eof(want ...string) error {
	if err := r.src.Err(); err != nil {
		return err
	}
	return parseErr(token.Pos{}, ErrEOF, "expected %s", strings.Join(quoteAll(want), " or "))
}

func quoteAll(ss []string) []string {
	res := make([]string, len(ss))
	for i, s := range ss {
		res[i] = fmt.Sprintf("%q", s)
	}
	return res
}

// index returns the integer in the first bracket group of l.
func (r *reader) index(l token.Line) (int, error) {
	s, err := token.FirstBracket(l.Text)
	if err != nil {
		return 0, parseErr(l.Pos, fmt.Errorf("%w: %w", ErrLine, err), "")
	}
	v := ir.FromText(s)
	if v.Type != ir.IntType {
		return 0, parseErr(l.Pos, ErrLine, "index %q is not an integer", s)
	}
	return int(v.Int64), nil
}

// warn records an integrity warning. In strict mode it returns the
// warning as a fatal error instead.
func (r *reader) warn(pos token.Pos, msg string, args ...any) error {
	w := ir.IntegrityWarning{Pos: pos, Msg: fmt.Sprintf(msg, args...)}
	if debug.Parse() {
		debug.Logf("%s\n", w.Error())
	}
	if r.opts.strict {
		return parseErr(pos, ErrIntegrity, "%s", w.Msg)
	}
	r.warnings = append(r.warnings, w)
	if r.opts.warn != nil {
		r.opts.warn(w)
	}
	return nil
}

func requireFloat(h *ir.Header, k string, pos token.Pos) (float64, error) {
	f, ok := h.Float(k)
	if !ok {
		return 0, parseErr(pos, ErrMissingField, "numeric header field %q", k)
	}
	return f, nil
}

func requireInt(h *ir.Header, k string, pos token.Pos) (int, error) {
	i, ok := h.Int(k)
	if !ok {
		return 0, parseErr(pos, ErrMissingField, "integer header field %q", k)
	}
	return int(i), nil
}
