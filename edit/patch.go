package edit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/praat-format/debug"
	"github.com/signadot/praat-format/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies patch to the JSON form of tg. A JSON array is applied as
// a JSON Patch (RFC 6902), a JSON object as a merge patch (RFC 7386).
// The header of the result mirrors its span and tier count.
func Patch(tg *ir.TextGrid, patch []byte) (*ir.TextGrid, error) {
	d, err := json.Marshal(tg)
	if err != nil {
		return nil, err
	}
	patch = bytes.TrimSpace(patch)
	var out []byte
	if len(patch) > 0 && patch[0] == '[' {
		ops, err := jsonpatch.DecodePatch(patch)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		if debug.Edit() {
			debug.Logf("json patch with %d ops\n", len(ops))
		}
		out, err = ops.Apply(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	} else {
		if debug.Edit() {
			debug.LogAny(json.RawMessage(patch))
		}
		out, err = jsonpatch.MergePatch(d, patch)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	}
	res := &ir.TextGrid{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res.Header = tg.Header.Clone()
	res.SyncHeader()
	return res, nil
}
