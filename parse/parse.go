package parse

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/richtext/format"
	"github.com/signadot/richtext/ir"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Parse parses a single document. Empty input yields nil.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format == format.IRFormat {
		res := &ir.Node{}
		if err := json.Unmarshal(d, res); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return res, nil
	}
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var body ast.Node
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		if body != nil {
			return nil, fmt.Errorf("%w: expected a single document", ErrParse)
		}
		body = doc.Body
	}
	if body == nil {
		return nil, nil
	}
	return fromAST(body, "")
}

func fromAST(n ast.Node, tag string) (*ir.Node, error) {
	var (
		res *ir.Node
		err error
	)
	switch x := n.(type) {
	case *ast.TagNode:
		if tag != "" {
			return nil, fmt.Errorf("%w: %s: multiple tags", ErrParse, position(n))
		}
		return fromAST(x.Value, tagString(x))
	case *ast.AnchorNode:
		return fromAST(x.Value, tag)
	case *ast.CommentGroupNode:
		return nil, nil
	case *ast.MappingNode:
		res, err = fromMapping(x.Values)
	case *ast.MappingValueNode:
		res, err = fromMapping([]*ast.MappingValueNode{x})
	case *ast.SequenceNode:
		res, err = fromSequence(x.Values)
	case *ast.StringNode:
		res = ir.FromString(x.Value)
	case *ast.LiteralNode:
		res = ir.FromString(x.Value.Value)
	case *ast.IntegerNode:
		res, err = fromNumber(x.Token.Value, n)
	case *ast.FloatNode:
		res, err = fromNumber(x.Token.Value, n)
	case *ast.BoolNode:
		res = ir.FromBool(x.Value)
	case *ast.NullNode:
		res = ir.Null()
	default:
		return nil, fmt.Errorf("%w: %s: unsupported %s", ErrParse, position(n), n.Type())
	}
	if err != nil {
		return nil, err
	}
	if res == nil {
		if tag != "" {
			return ir.Null().WithTag(tag), nil
		}
		return nil, nil
	}
	if tag != "" {
		if err := ir.CheckTag(tag); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParse, position(n), err)
		}
	}
	return res.WithTag(tag), nil
}

func fromMapping(mvs []*ast.MappingValueNode) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(mvs))
	seen := make(map[string]bool, len(mvs))
	for _, mv := range mvs {
		key, err := keyString(mv.Key)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: %s: duplicate key %q", ErrParse, position(mv), key)
		}
		seen[key] = true
		val, err := fromAST(mv.Value, "")
		if err != nil {
			return nil, err
		}
		if val == nil {
			val = ir.Null()
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}

func fromSequence(items []ast.Node) (*ir.Node, error) {
	vals := make([]*ir.Node, 0, len(items))
	for _, item := range items {
		val, err := fromAST(item, "")
		if err != nil {
			return nil, err
		}
		if val == nil {
			val = ir.Null()
		}
		vals = append(vals, val)
	}
	return ir.FromSlice(vals), nil
}

func keyString(k ast.MapKeyNode) (string, error) {
	if _, ok := ast.Node(k).(*ast.TagNode); ok {
		return "", fmt.Errorf("%w: %s", ErrKeyTag, position(k))
	}
	switch x := k.(type) {
	case *ast.StringNode:
		return x.Value, nil
	case ast.ScalarNode:
		return x.GetToken().Value, nil
	}
	return "", fmt.Errorf("%w: %s: unsupported key %s", ErrParse, position(k), k.Type())
}

func fromNumber(lit string, n ast.Node) (*ir.Node, error) {
	clean := strings.ReplaceAll(lit, "_", "")
	if i, err := strconv.ParseInt(clean, 0, 64); err == nil {
		res := ir.FromInt(i)
		res.Number = lit
		return res, nil
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: bad number %q", ErrParse, position(n), lit)
	}
	res := ir.FromFloat(f)
	res.Number = lit
	return res, nil
}

func tagString(x *ast.TagNode) string {
	tag := x.Start.Value
	if !strings.HasPrefix(tag, "!") {
		tag = "!" + tag
	}
	return tag
}

func position(n ast.Node) string {
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return "?"
	}
	return fmt.Sprintf("%d:%d", tok.Position.Line, tok.Position.Column)
}
