package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/exprenv"
	"github.com/signadot/richtext/ir"
	"github.com/signadot/richtext/tree"

	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	prg, err := exprenv.Compile(args[0], exprenv.WithRegistry(cfg.registry()))
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(k int, n *tree.Node) error {
		res, err := prg.Run(n)
		if err != nil {
			return err
		}
		node, err := fromAny(res)
		if err != nil {
			return err
		}
		if err := writeSep(cc.Out, k); err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}

// fromAny converts an expression result to ir. Nodes take their wire form.
func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *tree.Node:
		return tree.ToIR(x)
	case []*tree.Node:
		items := make([]*ir.Node, len(x))
		for i, n := range x {
			item, err := tree.ToIR(n)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return ir.FromSlice(items), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		items := make([]*ir.Node, len(x))
		for i, e := range x {
			item, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return ir.FromSlice(items), nil
	case map[string]any:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			val, err := fromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(k), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	}
	return ir.FromString(fmt.Sprint(v)), nil
}
