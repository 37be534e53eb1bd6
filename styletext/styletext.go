// Package styletext parses style declarations of the form
//
//	name: value; name: value;
//
// Values are kept as source text for the property handlers to parse:
// double quoted strings keep their quotes, and functional notation such as
// rgb(1, 2, 3) is a single token.
package styletext

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/signadot/richtext/errs"
)

// Declaration is one name: value pair.
type Declaration struct {
	Name  string
	Value string
	// Line and Column locate the name in the input, starting at 1.
	Line, Column int
}

func (d Declaration) String() string {
	return d.Name + ": " + d.Value
}

type sheet struct {
	Decls []*decl `parser:"( @@ ( \";\" @@? )* )?"`
}

type decl struct {
	Pos   lexer.Position
	Name  string     `parser:"@Ident \":\""`
	Value *declValue `parser:"@@"`
}

type declValue struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Parts  []string `parser:"@( String | Func | Ident | Word )+"`
}

// Order matters: Func must win over Ident, and Word catches hex colors and
// lengths.
var styleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Func", Pattern: `[a-zA-Z][a-zA-Z0-9-]*\([^)]*\)`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9-]*`},
	{Name: "Word", Pattern: `[^\s;:"]+`},
	{Name: "Punct", Pattern: `[:;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var styleParser = participle.MustBuild[sheet](
	participle.Lexer(styleLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses text into declarations in source order. Empty declarations
// between semicolons are ignored.
func Parse(text string) ([]Declaration, error) {
	s, err := styleParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("%w: style text: %w", errs.ErrParse, err)
	}
	res := make([]Declaration, 0, len(s.Decls))
	for _, d := range s.Decls {
		if d == nil {
			continue
		}
		res = append(res, Declaration{
			Name:   d.Name,
			Value:  strings.TrimSpace(text[d.Value.Pos.Offset:d.Value.EndPos.Offset]),
			Line:   d.Pos.Line,
			Column: d.Pos.Column,
		})
	}
	return res, nil
}

// Format writes declarations as style text.
func Format(decls []Declaration) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(d.String())
	}
	return b.String()
}
