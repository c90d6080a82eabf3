package merge

import (
	"fmt"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/ir"
	"github.com/signadot/uniutil/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies patch to doc as an RFC 7386 JSON merge patch: null
// deletes a key and arrays replace rather than merge.  Funcs do not
// survive the JSON round trip.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := encode.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	p, err := encode.MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return parse.Parse(out, parse.ParseJSON())
}

// ApplyJSONPatch applies the RFC 6902 operations in ops to doc.
func ApplyJSONPatch(doc *ir.Node, ops []byte) (*ir.Node, error) {
	patch, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("decoding json patch: %w", err)
	}
	d, err := encode.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := patch.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying json patch: %w", err)
	}
	return parse.Parse(out, parse.ParseJSON())
}
