package parse

import (
	"io"

	"github.com/signadot/praat-format/ir"
)

const (
	framesStart  = "frames []:"
	framePrefix  = "frames ["
	formantStart = "formant []:"
	slotPrefix   = "formant ["
)

// Formant reads a Praat Formant object. The time of frame i is
// i*dx + x1.
func Formant(in io.Reader, opts ...ParseOption) (*ir.Formant, error) {
	r := newReader(in, opts)
	h := ir.NewHeader()
	start, err := r.block(h, nil, framesStart)
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
	res := &ir.Formant{Header: h, Frames: []*ir.Frame{}}
	for {
		l, ok := r.src.Peek()
		if !ok || !l.HasPrefix(framePrefix) {
			break
		}
		r.src.Next()
		i, err := r.index(l)
		if err != nil {
			return nil, err
		}
		frame, err := r.formantFrame(float64(i)*dx + x1)
		if err != nil {
			return nil, err
		}
		res.Frames = append(res.Frames, frame)
	}
	if err := r.src.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reader) formantFrame(t float64) (*ir.Frame, error) {
	frame := &ir.Frame{Time: t, Fields: ir.NewHeader()}
	l, err := r.block(frame.Fields, nil, formantStart, framePrefix)
	if err != nil {
		return nil, err
	}
	if l.Text != formantStart {
		return nil, parseErr(l.Pos, ErrLine, "expected %q", formantStart)
	}
	for {
		l, ok := r.src.Peek()
		if !ok || !l.HasPrefix(slotPrefix) {
			return frame, nil
		}
		r.src.Next()
		n, err := r.index(l)
		if err != nil {
			return nil, err
		}
		if n != len(frame.Formants)+1 {
			return nil, parseErr(l.Pos, ErrIndex, "formant %d after %d formants", n, len(frame.Formants))
		}
		slot := ir.NewHeader()
		ReadHeader(r.src, slot, slotPrefix, framePrefix)
		frame.Formants = append(frame.Formants, slot)
	}
}
