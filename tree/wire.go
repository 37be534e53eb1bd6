package tree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/richtext/debug"
	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
	"github.com/signadot/richtext/parse"
	"github.com/signadot/richtext/style"
)

// Wire tags and keys. Text is a bare string; other leaves are tagged
// strings; containers are tagged objects.
const (
	ImageTag       = "!image"
	FlagTag        = "!flag"
	PlaceholderTag = "!placeholder"
	StyleTag       = "!style"
	StyleNameTag   = "!styleName"
	HyperlinkTag   = "!hyperlink"
	BadgeTag       = "!badge"

	ChildrenKey  = "children"
	StylesKey    = "styles"
	StyleNameKey = "style-name"
	URLKey       = "url"
	BadgeTextKey = "badgeText"
)

var kindTags = map[Kind]string{
	ImageKind:       ImageTag,
	FlagKind:        FlagTag,
	PlaceholderKind: PlaceholderTag,
	StyleKind:       StyleTag,
	StyleNameKind:   StyleNameTag,
	HyperlinkKind:   HyperlinkTag,
	BadgeKind:       BadgeTag,
}

var tagKinds = func() map[string]Kind {
	res := make(map[string]Kind, len(kindTags))
	for k, tag := range kindTags {
		res[tag] = k
	}
	return res
}()

// payloadKeys holds the key of the required payload of container kinds.
var payloadKeys = map[Kind]string{
	StyleNameKind: StyleNameKey,
	HyperlinkKind: URLKey,
	BadgeKind:     BadgeTextKey,
}

// ToIR encodes n in its wire form.
func ToIR(n *Node) (*ir.Node, error) {
	switch n.kind {
	case TextKind:
		return ir.FromString(n.value), nil
	case ImageKind, FlagKind, PlaceholderKind:
		return ir.FromString(n.value).WithTag(kindTags[n.kind]), nil
	case StyleKind, StyleNameKind, HyperlinkKind, BadgeKind:
	default:
		return nil, fmt.Errorf("%w: encode %s", errs.ErrUnhandledCase, n.kind)
	}
	var kvs []ir.KeyVal
	if key, ok := payloadKeys[n.kind]; ok {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: ir.FromString(n.value)})
	}
	if n.kind == StyleKind && !n.style.IsEmpty() {
		styles, err := n.style.ToIR()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(StylesKey), Val: styles})
	}
	if len(n.children) != 0 {
		kids := make([]*ir.Node, len(n.children))
		for i, c := range n.children {
			k, err := ToIR(c)
			if err != nil {
				return nil, err
			}
			kids[i] = k
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(ChildrenKey), Val: ir.FromSlice(kids)})
	}
	return ir.FromKeyVals(kvs).WithTag(kindTags[n.kind]), nil
}

// FromIR decodes a node from its wire form. An untagged array decodes as
// Join of its elements.
func FromIR(node *ir.Node, opts ...CodecOption) (*Node, error) {
	return fromIR(node, codecOptions(opts))
}

func fromIR(node *ir.Node, o *codecOpts) (*Node, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: missing node", errs.ErrInvalidArgument)
	}
	if debug.Decode() {
		debug.Logf("decode %s at %s", node.Tag, node.Path())
	}
	if node.Tag == "" {
		switch node.Type {
		case ir.StringType:
			return Text(node.String), nil
		case ir.ArrayType:
			kids, err := childrenFromIR(node, o)
			if err != nil {
				return nil, err
			}
			return Join(kids...)
		}
		return nil, fmt.Errorf("%w: untagged %s at %s", errs.ErrUnhandledCase, node.Type, node.Path())
	}
	kind, ok := tagKinds[node.Tag]
	if !ok {
		return nil, fmt.Errorf("%w: tag %s at %s", errs.ErrUnhandledCase, node.Tag, node.Path())
	}
	if kind.IsLeaf() {
		if node.Type != ir.StringType {
			return nil, fmt.Errorf("%w: %s must be a string, got %s at %s", errs.ErrValidation, node.Tag, node.Type, node.Path())
		}
		var (
			res *Node
			err error
		)
		switch kind {
		case ImageKind:
			res, err = Image(node.String)
		case FlagKind:
			res, err = Flag(node.String)
		case PlaceholderKind:
			res, err = Placeholder(node.String)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", node.Path(), err)
		}
		return res, nil
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: %s must be an object, got %s at %s", errs.ErrValidation, node.Tag, node.Type, node.Path())
	}
	var (
		payload, styles, children *ir.Node
		payloadKey                = payloadKeys[kind]
	)
	for i, f := range node.Fields {
		v := node.Values[i]
		switch {
		case f.String == ChildrenKey:
			children = v
		case kind == StyleKind && f.String == StylesKey:
			styles = v
		case payloadKey != "" && f.String == payloadKey:
			payload = v
		default:
			return nil, fmt.Errorf("%w: key %q in %s at %s", errs.ErrUnhandledCase, f.String, node.Tag, node.Path())
		}
	}
	var kids []*Node
	if children != nil {
		var err error
		if kids, err = childrenFromIR(children, o); err != nil {
			return nil, err
		}
	}
	if kind == StyleKind {
		s := style.Empty
		if styles != nil {
			var err error
			if s, err = style.FromIR(o.registry, styles); err != nil {
				return nil, fmt.Errorf("%s: %w", styles.Path(), err)
			}
		}
		return Styled(s, kids...)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: %q in %s at %s", errs.ErrMissingRequiredProperty, payloadKey, node.Tag, node.Path())
	}
	if payload.Type != ir.StringType {
		return nil, fmt.Errorf("%w: %q must be a string at %s", errs.ErrValidation, payloadKey, payload.Path())
	}
	var (
		res *Node
		err error
	)
	switch kind {
	case StyleNameKind:
		res, err = StyleName(payload.String, kids...)
	case HyperlinkKind:
		res, err = Hyperlink(payload.String, kids...)
	case BadgeKind:
		res, err = Badge(payload.String, kids...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", node.Path(), err)
	}
	return res, nil
}

func childrenFromIR(node *ir.Node, o *codecOpts) ([]*Node, error) {
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: %s must be an array, got %s at %s", errs.ErrValidation, ChildrenKey, node.Type, node.Path())
	}
	res := make([]*Node, len(node.Values))
	for i, v := range node.Values {
		c, err := fromIR(v, o)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

// Encode writes the wire form of n to w.
func Encode(w io.Writer, n *Node, opts ...CodecOption) error {
	node, err := ToIR(n)
	if err != nil {
		return err
	}
	return encode.Encode(node, w, codecOptions(opts).encodeOpts...)
}

// Decode parses a document and decodes its node.
func Decode(d []byte, opts ...CodecOption) (*Node, error) {
	o := codecOptions(opts)
	node, err := parse.Parse(d, o.parseOpts...)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%w: empty document", errs.ErrInvalidArgument)
	}
	return fromIR(node, o)
}

func encodeString(n *Node) (string, error) {
	node, err := ToIR(n)
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeBrackets(true), encode.EncodeWire(true)); err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(buf.Bytes())), nil
}
