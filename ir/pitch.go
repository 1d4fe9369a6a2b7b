package ir

import "slices"

// PitchField is the frame field holding a pitch value.
const PitchField = "freq"

// Pitch is a single-column Matrix flattened into a frame sequence.
type Pitch struct {
	Header   *Header
	Frames   []*Frame
	Warnings []IntegrityWarning
}

func (p *Pitch) Class() string {
	return objectClass(p.Header, "Matrix")
}

func (p *Pitch) FrameList() []*Frame {
	return p.Frames
}

func (p *Pitch) Span() (float64, float64, bool) {
	return headerSpan(p.Header)
}

func (p *Pitch) Clone() *Pitch {
	return &Pitch{
		Header:   p.Header.Clone(),
		Frames:   cloneFrames(p.Frames),
		Warnings: slices.Clone(p.Warnings),
	}
}

// NewPitch builds a Pitch from parallel times and values.
func NewPitch(times []float64, values []float64) *Pitch {
	p := &Pitch{Header: NewHeader()}
	for i, t := range times {
		fields := NewHeader()
		fields.Set(PitchField, Float(values[i]))
		p.Frames = append(p.Frames, &Frame{Time: t, Fields: fields})
	}
	if n := len(times); n > 0 {
		p.Header.Set("xmin", Float(times[0]))
		p.Header.Set("xmax", Float(times[n-1]))
	}
	return p
}
