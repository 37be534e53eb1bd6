package tree

import "fmt"

// Kind identifies the variant of a Node.
type Kind int

const (
	TextKind Kind = iota
	ImageKind
	FlagKind
	PlaceholderKind
	StyleKind
	StyleNameKind
	HyperlinkKind
	BadgeKind
)

var kindNames = [...]string{
	TextKind:        "text",
	ImageKind:       "image",
	FlagKind:        "flag",
	PlaceholderKind: "placeholder",
	StyleKind:       "style",
	StyleNameKind:   "styleName",
	HyperlinkKind:   "hyperlink",
	BadgeKind:       "badge",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsLeaf reports whether nodes of kind k have no children.
func (k Kind) IsLeaf() bool {
	switch k {
	case TextKind, ImageKind, FlagKind, PlaceholderKind:
		return true
	}
	return false
}

// Kinds returns every kind.
func Kinds() []Kind {
	res := make([]Kind, len(kindNames))
	for i := range kindNames {
		res[i] = Kind(i)
	}
	return res
}
