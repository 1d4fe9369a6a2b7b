package ir

// Object is implemented by every parsed Praat object.
type Object interface {
	// Class returns the "Object class" of the object.
	Class() string
}

var (
	_ Object = (*Formant)(nil)
	_ Object = (*Matrix)(nil)
	_ Object = (*Pitch)(nil)
	_ Object = (*TextGrid)(nil)
	_ Object = (*VoiceReport)(nil)

	_ FrameSource = (*Formant)(nil)
	_ FrameSource = (*Pitch)(nil)
)

func objectClass(h *Header, def string) string {
	if s, ok := h.Text("Object class"); ok {
		return s
	}
	return def
}
