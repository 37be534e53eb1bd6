package ir

import (
	"fmt"
	"strings"
)

// TagArgs splits the first element of a tag chain into its head, its
// parenthesised arguments and the remaining chain. The remaining chain is
// "!"-prefixed, or empty.
//
//	TagArgs("!untyped(color).x") == "!untyped", ["color"], "!x"
func TagArgs(tag string) (string, []string, string) {
	var (
		head, rest string
		args       []string
		depth      int
		open       int
		argStart   int
	)
	for i := 0; i < len(tag); i++ {
		switch tag[i] {
		case '.':
			if depth != 0 {
				continue
			}
			head = tag[:i]
			if open != 0 {
				head = tag[:open]
			}
			rest = tag[i+1:]
			if rest != "" {
				rest = "!" + rest
			}
			return head, args, rest
		case '(':
			if depth == 0 {
				open = i
				argStart = i + 1
			}
			depth++
		case ')':
			depth--
			if depth != 0 {
				continue
			}
			if argStart != 0 && i != argStart {
				args = append(args, tag[argStart:i])
			}
			argStart = 0
		case ',':
			if depth != 1 {
				continue
			}
			if argStart != 0 {
				args = append(args, tag[argStart:i])
			}
			argStart = i + 1
		}
	}
	head = tag
	if open != 0 {
		head = tag[:open]
	}
	return head, args, rest
}

// TagCompose builds a tag from a head, its arguments and an optional
// "!"-prefixed chain to append.
func TagCompose(tag string, args []string, oTag string) string {
	headTag := tag
	if len(args) != 0 {
		headTag += "(" + strings.Join(args, ",") + ")"
	}
	if oTag != "" {
		return headTag + "." + oTag[1:]
	}
	return headTag
}

// TagHas reports whether any element of the chain has head what. what
// should be "!"-prefixed.
func TagHas(tag, what string) bool {
	_, ok := TagGet(tag, what)
	return ok
}

// TagGet returns the arguments of the first element of the chain with head
// what.
func TagGet(tag, what string) ([]string, bool) {
	for tag != "" {
		head, args, rest := TagArgs(tag)
		if head == what {
			return args, true
		}
		tag = rest
	}
	return nil, false
}

// CheckTag validates tag syntax: a "!"-prefixed chain of labels made of
// letters, digits and '-', with balanced argument lists.
func CheckTag(tag string) error {
	if tag == "" {
		return nil
	}
	if tag[0] != '!' {
		return fmt.Errorf("%w: %q must start with '!'", ErrBadTag, tag)
	}
	depth := 0
	label := 0
	for i := 1; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c == '(':
			if depth == 0 && label == 0 {
				return fmt.Errorf("%w: %q missing tag label", ErrBadTag, tag)
			}
			depth++
		case c == ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: %q mismatched parentheses", ErrBadTag, tag)
			}
		case c == '.' || c == ',':
			if depth == 0 && c == '.' {
				if label == 0 {
					return fmt.Errorf("%w: %q missing tag label", ErrBadTag, tag)
				}
				label = 0
			}
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '-':
			if depth == 0 {
				label++
			}
		default:
			return fmt.Errorf("%w: %q invalid char %q", ErrBadTag, tag, c)
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %q imbalanced parentheses", ErrBadTag, tag)
	}
	if label == 0 {
		return fmt.Errorf("%w: %q missing tag label", ErrBadTag, tag)
	}
	return nil
}
