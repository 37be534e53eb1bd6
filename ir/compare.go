package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Tags are not compared; see Equal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		switch {
		case a.Bool == b.Bool:
			return 0
		case !a.Bool:
			return -1
		}
		return 1
	case ArrayType:
		return compareLists(a.Values, b.Values)
	case ObjectType:
		if c := compareLists(a.Fields, b.Fields); c != 0 {
			return c
		}
		return compareLists(a.Values, b.Values)
	}
	return 0
}

// Equal reports whether a and b have the same structure, values and tags.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Tag != b.Tag || Compare(a, b) != 0 {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	fa, okA := a.NumberFloat()
	fb, okB := b.NumberFloat()
	if okA && okB {
		return cmp.Compare(fa, fb)
	}
	return strings.Compare(a.Number, b.Number)
}

func compareLists(as, bs []*Node) int {
	for i := 0; i < min(len(as), len(bs)); i++ {
		if c := Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}
