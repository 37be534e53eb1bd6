package style

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/format"
	"github.com/signadot/richtext/ir"
	"github.com/signadot/richtext/parse"
	"github.com/signadot/richtext/property"
)

// ApplyJSONPatch applies an RFC 6902 patch to the JSON object form of s,
// then decodes and validates the result with reg. Untyped values lose
// their wire tags in JSON, so after patching their types are inferred from
// the JSON values.
func ApplyJSONPatch(reg *property.Registry, s *Style, patch []byte) (*Style, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: json patch: %w", errs.ErrParse, err)
	}
	doc, err := MarshalJSON(s)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: json patch: %w", errs.ErrInvalidArgument, err)
	}
	node, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return nil, err
	}
	res, err := FromIR(reg, node)
	if err != nil {
		return nil, err
	}
	if res.Equal(s) {
		return s, nil
	}
	return res, nil
}

// MarshalJSON returns the wire form of s as a JSON object without tags.
func MarshalJSON(s *Style) ([]byte, error) {
	node, err := s.ToIR()
	if err != nil {
		return nil, err
	}
	_ = node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		y.Tag = ""
		return true, nil
	})
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}
