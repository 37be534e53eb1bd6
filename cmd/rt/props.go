package main

import (
	"fmt"

	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/ir"

	"github.com/scott-cotton/cli"
)

func props(cfg *PropsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Props.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: props takes no arguments, got %v", cli.ErrUsage, args)
	}
	names := cfg.registry().Names()
	if cfg.Text {
		for _, n := range names {
			if _, err := fmt.Fprintf(cc.Out, "%d\t%s\t%s\n", n.Index(), n, n.Handler().Type); err != nil {
				return err
			}
		}
		return nil
	}
	items := make([]*ir.Node, len(names))
	for i, n := range names {
		kvs := []ir.KeyVal{
			{Key: ir.FromString("name"), Val: ir.FromString(n.String())},
			{Key: ir.FromString("index"), Val: ir.FromInt(int64(n.Index()))},
			{Key: ir.FromString("type"), Val: ir.FromString(n.Handler().Type)},
		}
		if edges, ok := n.Edges(); ok {
			vals := make([]*ir.Node, len(edges))
			for j, e := range edges {
				vals[j] = ir.FromString(e.String())
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString("edges"), Val: ir.FromSlice(vals)})
		}
		items[i] = ir.FromKeyVals(kvs)
	}
	if err := encode.Encode(ir.FromSlice(items), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
