package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/richtext/format"
	"github.com/signadot/richtext/ir"

	"github.com/goccy/go-yaml/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent   int
	brackets bool
	wire     bool
	format   format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// position says where the cursor is when a value starts.
type position int

const (
	atStart position = iota
	afterKey
	afterDash
)

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	var err error
	switch {
	case es.format == format.IRFormat:
		err = encodeIR(node, w, es)
	case es.format.IsJSON() || es.brackets:
		err = encodeFlow(node, w, es, 0)
	default:
		err = encodeBlock(node, w, es, 0, atStart)
	}
	if err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeIR(node *ir.Node, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.wire {
		d, err = json.Marshal(node)
	} else {
		d, err = json.MarshalIndent(node, "", strings.Repeat(" ", es.indent))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState, depth int) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	return writeString(w, s)
}

func writeTag(w io.Writer, node *ir.Node, es *EncState) error {
	if node.Tag == "" {
		return nil
	}
	if es.format == format.JSONFormat {
		return fmt.Errorf("%w: cannot encode tag %s at %s in %s", ErrEncoding, node.Tag, node.Path(), es.format)
	}
	return writeColored(w, es, node.Type, TagColor, node.Tag)
}

func isEmptyCollection(node *ir.Node) bool {
	return !node.Type.IsLeaf() && len(node.Values) == 0
}

// block style

func encodeBlock(node *ir.Node, w io.Writer, es *EncState, depth int, pos position) error {
	inline := node.Type.IsLeaf() || isEmptyCollection(node)
	if spaceBefore(node, pos, inline) {
		if err := writeString(w, " "); err != nil {
			return err
		}
	}
	if err := writeTag(w, node, es); err != nil {
		return err
	}
	if inline {
		if node.Tag != "" {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		return encodeScalar(node, w, es)
	}
	needNL := pos == afterKey || node.Tag != "" || (pos == afterDash && node.Type == ir.ArrayType)
	switch node.Type {
	case ir.ObjectType:
		for i, field := range node.Fields {
			if i > 0 || needNL {
				if err := writeNL(w, es, depth); err != nil {
					return err
				}
			}
			if err := writeColored(w, es, ir.ObjectType, FieldColor, quoteString(field.String, es)); err != nil {
				return err
			}
			if err := writeColored(w, es, ir.ObjectType, SepColor, ":"); err != nil {
				return err
			}
			if err := encodeBlock(node.Values[i], w, es, depth+1, afterKey); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for i, item := range node.Values {
			if i > 0 || needNL {
				if err := writeNL(w, es, depth); err != nil {
					return err
				}
			}
			if err := writeColored(w, es, ir.ArrayType, SepColor, "-"); err != nil {
				return err
			}
			if err := encodeBlock(item, w, es, depth+1, afterDash); err != nil {
				return err
			}
		}
	}
	return nil
}

func spaceBefore(node *ir.Node, pos position, inline bool) bool {
	switch pos {
	case afterKey:
		return inline || node.Tag != ""
	case afterDash:
		return inline || node.Tag != "" || node.Type == ir.ObjectType
	}
	return false
}

// flow style, also used for JSON

func encodeFlow(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	if err := writeTag(w, node, es); err != nil {
		return err
	}
	if node.Tag != "" {
		if err := writeString(w, " "); err != nil {
			return err
		}
	}
	if node.Type.IsLeaf() {
		return encodeScalar(node, w, es)
	}
	opener, closer := "[", "]"
	if node.Type == ir.ObjectType {
		opener, closer = "{", "}"
	}
	if err := writeColored(w, es, node.Type, SepColor, opener); err != nil {
		return err
	}
	n := len(node.Values)
	for i, val := range node.Values {
		if err := writeNL(w, es, depth+1); err != nil {
			return err
		}
		if node.Type == ir.ObjectType {
			key := quoteString(node.Fields[i].String, es)
			if err := writeColored(w, es, ir.ObjectType, FieldColor, key); err != nil {
				return err
			}
			sep := ": "
			if es.wire && es.format.IsJSON() {
				sep = ":"
			}
			if err := writeColored(w, es, ir.ObjectType, SepColor, sep); err != nil {
				return err
			}
		}
		if err := encodeFlow(val, w, es, depth+1); err != nil {
			return err
		}
		if i < n-1 {
			sep := ","
			if es.wire && !es.format.IsJSON() {
				sep = ", "
			}
			if err := writeColored(w, es, node.Type, SepColor, sep); err != nil {
				return err
			}
		}
	}
	if n != 0 {
		if err := writeNL(w, es, depth); err != nil {
			return err
		}
	}
	return writeColored(w, es, node.Type, SepColor, closer)
}

func encodeScalar(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch node.Type {
	case ir.ObjectType:
		v = "{}"
	case ir.ArrayType:
		v = "[]"
	case ir.StringType:
		v = quoteString(node.String, es)
	case ir.NumberType:
		v = numberString(node)
	case ir.BoolType:
		v = strconv.FormatBool(node.Bool)
	case ir.NullType:
		v = "null"
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
	}
	if es.Color == nil {
		return writeString(w, v)
	}
	attr := ValueColor
	if !node.Type.IsLeaf() {
		attr = SepColor
	}
	return writeString(w, es.Color(node.Type, attr, v))
}

func numberString(node *ir.Node) string {
	switch {
	case node.Number != "":
		return node.Number
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}

// String quoting helper

func quoteString(v string, es *EncState) string {
	if es.format.IsJSON() || needsQuote(v) {
		return jsonQuote(v)
	}
	return v
}

func needsQuote(v string) bool {
	if v == "" || token.IsNeedQuoted(v) {
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	switch v[0] {
	case '*', '&', '%', '@', ':', '#', ',', '{', '[', '(', '-', '!', '|', '>', '\'', '"', '?', '`', ' ':
		return true
	}
	switch strings.ToLower(v) {
	case "y", "n", "yes", "no", "on", "off", "true", "false", "null", "~":
		return true
	}
	return strings.ContainsAny(v, ":#,[]{}\n\t\"\\") || strings.HasSuffix(v, " ")
}

func jsonQuote(v string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return strconv.Quote(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
