package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/property"
	"github.com/signadot/richtext/tree"

	"github.com/scott-cotton/cli"
)

// valueFunc parses a -p name=doc argument into values. doc is a wire
// document; plain text decodes as text.
func valueFunc(values map[string]*tree.Node, a string) error {
	name, doc, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: expected name=doc, got %q", cli.ErrUsage, a)
	}
	if err := property.CheckName(name); err != nil {
		return fmt.Errorf("%w: placeholder: %w", cli.ErrUsage, err)
	}
	if strings.TrimSpace(doc) == "" {
		values[name] = tree.Text(doc)
		return nil
	}
	n, err := tree.Decode([]byte(doc))
	if err != nil {
		return fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, name, err)
	}
	values[name] = n
	return nil
}

func htmlDocs(cfg *HTMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.HTML.Parse(cc, args)
	if err != nil {
		return err
	}
	var opts []tree.RenderOption
	if cfg.Indent != "" {
		opts = append(opts, tree.MarkupIndent(cfg.Indent))
	}
	used := map[string]bool{}
	resolve := func(name string) (*tree.Node, bool) {
		n, ok := cfg.Values[name]
		if ok {
			used[name] = true
		}
		return n, ok
	}
	err = eachDoc(cfg.MainConfig, cc, args, func(k int, n *tree.Node) error {
		res, err := n.ResolvePlaceholders(resolve)
		if err != nil {
			return err
		}
		if missing := res.Placeholders(); len(missing) != 0 {
			return fmt.Errorf("%w: unresolved placeholders %s, use -p name=doc",
				errs.ErrUnsupportedOperation, strings.Join(missing, ", "))
		}
		if err := tree.WriteMarkup(cc.Out, res, opts...); err != nil {
			return err
		}
		_, err = io.WriteString(cc.Out, "\n")
		return err
	})
	if err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(cfg.Values)) {
		if !used[name] {
			theLog.Warn("unused placeholder value", "name", name)
		}
	}
	return nil
}
