package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/praat-format/ir"
	"github.com/signadot/praat-format/token"
)

const matrixStart = "z [] []:"

// Matrix reads a Praat Matrix object with ny columns. The time of row r is
// x1 + dx*r.
//
// A missing or misnumbered column marker stops reading: the matrix is
// returned with the columns read so far and a warning. A row whose column
// index disagrees with its column is kept and warned about.
func Matrix(in io.Reader, opts ...ParseOption) (*ir.Matrix, error) {
	r := newReader(in, opts)
	m, err := r.matrix()
	if err != nil {
		return nil, err
	}
	m.Warnings = r.warnings
	return m, nil
}

// Pitch reads a single-column Matrix and flattens it into frames holding
// a "freq" field.
func Pitch(in io.Reader, opts ...ParseOption) (*ir.Pitch, error) {
	m, err := Matrix(in, opts...)
	if err != nil {
		return nil, err
	}
	return m.Flatten(), nil
}

func (r *reader) matrix() (*ir.Matrix, error) {
	h := ir.NewHeader()
	start, err := r.block(h, nil, matrixStart)
	if err != nil {
		return nil, err
	}
	dx, err := requireFloat(h, "dx", start.Pos)
	if err != nil {
		return nil, err
	}
	x1, err := requireFloat(h, "x1", start.Pos)
	if err != nil {
		return nil, err
	}
	ny, err := requireInt(h, "ny", start.Pos)
	if err != nil {
		return nil, err
	}
	m := &ir.Matrix{Header: h, Columns: [][]ir.Cell{}}
	for i := 0; i < ny; i++ {
		marker := fmt.Sprintf("z [%d]:", i+1)
		l, ok := r.src.Peek()
		if !ok || l.Text != marker {
			if err := r.src.Err(); err != nil {
				return nil, err
			}
			if err := r.warn(l.Pos, "expected %q of %d columns, got %q", marker, ny, l.Text); err != nil {
				return nil, err
			}
			return m, nil
		}
		r.src.Next()
		col, err := r.matrixColumn(i+1, dx, x1)
		if err != nil {
			return nil, err
		}
		m.Columns = append(m.Columns, col)
	}
	if err := r.src.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *reader) matrixColumn(c int, dx, x1 float64) ([]ir.Cell, error) {
	col := []ir.Cell{}
	for {
		l, ok := r.src.Peek()
		if !ok || token.IsMarker(l.Text) {
			return col, nil
		}
		r.src.Next()
		if l.Text == "" {
			continue
		}
		idx := token.BracketContents(l.Text)
		if len(idx) != 2 {
			return nil, parseErr(l.Pos, ErrLine, "expected z [column] [row] = value")
		}
		cv, rv := ir.FromText(strings.TrimSpace(idx[0])), ir.FromText(strings.TrimSpace(idx[1]))
		if cv.Type != ir.IntType || rv.Type != ir.IntType {
			return nil, parseErr(l.Pos, ErrLine, "non integer cell index")
		}
		val, ok := cellValue(l.Text)
		if !ok {
			return nil, parseErr(l.Pos, fmt.Errorf("%w: %w", ErrLine, token.ErrNoEquals), "")
		}
		if int(cv.Int64) != c {
			if err := r.warn(l.Pos, "row of column %d in column %d", cv.Int64, c); err != nil {
				return nil, err
			}
		}
		col = append(col, ir.Cell{
			Time: x1 + dx*float64(rv.Int64),
			Freq: ir.FromText(token.TrimQuotes(val)),
		})
	}
}

// cellValue returns what follows the '=' or ':' after the last bracket
// group of a matrix row.
func cellValue(line string) (string, bool) {
	rest := line[strings.LastIndexByte(line, ']')+1:]
	rest = strings.TrimSpace(rest)
	if rest == "" || (rest[0] != '=' && rest[0] != ':') {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}
