package ir

// VoiceSection is one titled block of a voice report.
type VoiceSection struct {
	Title  string
	Fields *Header
}

// VoiceReport is the text report produced by Praat's "Voice report"
// command. Values are kept as written, units included.
type VoiceReport struct {
	Title    string
	Sections []VoiceSection
}

func (v *VoiceReport) Class() string {
	return "VoiceReport"
}

// Section returns the section with the given title, or nil.
func (v *VoiceReport) Section(title string) *VoiceSection {
	for i := range v.Sections {
		if v.Sections[i].Title == title {
			return &v.Sections[i]
		}
	}
	return nil
}
