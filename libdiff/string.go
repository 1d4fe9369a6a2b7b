package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText marks the changes from from to to inline, deletions as {-x-}
// and insertions as {+x+}. When most of the text changed, the whole of
// from is marked deleted and the whole of to inserted. DiffText returns
// "" for equal texts.
func DiffText(from, to string) string {
	if from == to {
		return ""
	}
	if from == "" || to == "" {
		return mark(diffpatch.DiffDelete, from) + mark(diffpatch.DiffInsert, to)
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
	diffSize := 0
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			diffSize += len(d.Text)
		}
	}
	if diffSize > min(len(from), len(to))/2 {
		return mark(diffpatch.DiffDelete, from) + mark(diffpatch.DiffInsert, to)
	}
	b := &strings.Builder{}
	for _, d := range diffs {
		b.WriteString(mark(d.Type, d.Text))
	}
	return b.String()
}

func mark(op diffpatch.Operation, s string) string {
	if s == "" {
		return ""
	}
	switch op {
	case diffpatch.DiffDelete:
		return delOpen + s + delClose
	case diffpatch.DiffInsert:
		return insOpen + s + insClose
	}
	return s
}
