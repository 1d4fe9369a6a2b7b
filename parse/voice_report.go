package parse

import (
	"io"
	"strings"

	"github.com/signadot/praat-format/ir"
)

const voiceIndent = "   "

// VoiceReport reads the text written by Praat's "Voice report" command.
// The first line is the report title; each unindented line opens a
// section whose indented `key: value` lines become its fields. Values are
// kept as written.
func VoiceReport(in io.Reader) (*ir.VoiceReport, error) {
	r := newReader(in, nil)
	title, ok := r.src.Next()
	if !ok {
		return nil, r.eof("report title")
	}
	vr := &ir.VoiceReport{Title: title.Text}
	var cur *ir.VoiceSection
	for {
		l, ok := r.src.Next()
		if !ok {
			break
		}
		if l.Text == "" {
			continue
		}
		if !strings.HasPrefix(l.Raw, voiceIndent) {
			vr.Sections = append(vr.Sections, ir.VoiceSection{
				Title:  strings.ReplaceAll(l.Text, ":", ""),
				Fields: ir.NewHeader(),
			})
			cur = &vr.Sections[len(vr.Sections)-1]
			continue
		}
		if cur == nil {
			return nil, parseErr(l.Pos, ErrLine, "field outside of a section")
		}
		k, v, _ := strings.Cut(l.Text, ":")
		cur.Fields.Set(strings.TrimSpace(k), ir.String(strings.TrimSpace(v)))
	}
	if err := r.src.Err(); err != nil {
		return nil, err
	}
	return vr, nil
}
