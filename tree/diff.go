package tree

import (
	"bytes"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff of the encoded forms of from and to, with each
// line prefixed by "-", "+" or " ". It is empty when they encode the same.
func Diff(from, to *Node, opts ...CodecOption) (string, error) {
	fromText, err := encodeLines(from, opts)
	if err != nil {
		return "", err
	}
	toText, err := encodeLines(to, opts)
	if err != nil {
		return "", err
	}
	lineMap := map[string]rune{}
	var lines []string
	fromRunes := mapLinesTo(lineMap, &lines, fromText)
	toRunes := mapLinesTo(lineMap, &lines, toText)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	changed := false
	var b strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
			changed = true
		case diffpatch.DiffInsert:
			prefix = "+"
			changed = true
		}
		for _, r := range diff.Text {
			b.WriteString(prefix + lines[r] + "\n")
		}
	}
	if !changed {
		return "", nil
	}
	return b.String(), nil
}

func encodeLines(n *Node, opts []CodecOption) ([]string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(buf, n, opts...); err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), nil
}

func mapLinesTo(m map[string]rune, lines *[]string, text []string) []rune {
	rs := make([]rune, len(text))
	for i, line := range text {
		r, ok := m[line]
		if !ok {
			r = rune(len(*lines))
			m[line] = r
			*lines = append(*lines, line)
		}
		rs[i] = r
	}
	return rs
}
