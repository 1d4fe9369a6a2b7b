package ir

// Formant is a parsed Praat Formant object.
type Formant struct {
	Header *Header
	Frames []*Frame
}

func (f *Formant) Class() string {
	return objectClass(f.Header, "Formant 2")
}

func (f *Formant) FrameList() []*Frame {
	return f.Frames
}

func (f *Formant) Span() (float64, float64, bool) {
	return headerSpan(f.Header)
}

// MaxFormants returns the largest number of formant slots in any frame.
func (f *Formant) MaxFormants() int {
	n := 0
	for _, fr := range f.Frames {
		n = max(n, len(fr.Formants))
	}
	return n
}

func (f *Formant) Clone() *Formant {
	return &Formant{
		Header: f.Header.Clone(),
		Frames: cloneFrames(f.Frames),
	}
}

func cloneFrames(frames []*Frame) []*Frame {
	if frames == nil {
		return nil
	}
	res := make([]*Frame, len(frames))
	for i, fr := range frames {
		res[i] = fr.Clone()
	}
	return res
}
