package ir

import "slices"

// Cell is one value of a Matrix column.
type Cell struct {
	Time float64
	Freq Value
}

// Matrix is a parsed Praat Matrix object.
type Matrix struct {
	Header  *Header
	Columns [][]Cell
	// Warnings holds the integrity problems met while reading. A matrix
	// with warnings may be missing columns.
	Warnings []IntegrityWarning
}

func (m *Matrix) Class() string {
	return objectClass(m.Header, "Matrix")
}

func (m *Matrix) Clone() *Matrix {
	res := &Matrix{
		Header:   m.Header.Clone(),
		Warnings: slices.Clone(m.Warnings),
	}
	if m.Columns != nil {
		res.Columns = make([][]Cell, len(m.Columns))
		for i, col := range m.Columns {
			res.Columns[i] = slices.Clone(col)
		}
	}
	return res
}

// pitchDropped are the header fields that describe the column axis and
// lose their meaning once a single column is flattened into frames.
var pitchDropped = []string{"ymin", "ymax", "ny", "dy", "y1"}

// Flatten converts the first column of m into a Pitch. The column-axis
// header fields are dropped. A matrix without columns yields a Pitch
// without frames.
func (m *Matrix) Flatten() *Pitch {
	h := m.Header.Clone()
	if h == nil {
		h = NewHeader()
	}
	for _, k := range pitchDropped {
		h.Delete(k)
	}
	p := &Pitch{
		Header:   h,
		Frames:   []*Frame{},
		Warnings: slices.Clone(m.Warnings),
	}
	if len(m.Columns) == 0 {
		return p
	}
	for _, c := range m.Columns[0] {
		fields := NewHeader()
		fields.Set(PitchField, c.Freq)
		p.Frames = append(p.Frames, &Frame{Time: c.Time, Fields: fields})
	}
	return p
}
