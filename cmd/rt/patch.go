package main

import (
	"fmt"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/style"
	"github.com/signadot/richtext/tree"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a json patch argument", cli.ErrUsage)
	}
	p := []byte(args[0])
	if cfg.File {
		if p, err = readInput(cc, args[0]); err != nil {
			return err
		}
	}
	opts := cfg.codecOpts(cc.Out)
	return eachDoc(cfg.MainConfig, cc, args[1:], func(k int, n *tree.Node) error {
		if n.Kind() != tree.StyleKind {
			return fmt.Errorf("%w: root is a %s node, not a style node", errs.ErrUnsupportedOperation, n.Kind())
		}
		s, err := style.ApplyJSONPatch(cfg.registry(), n.Style(), p)
		if err != nil {
			return fmt.Errorf("error patching: %w", err)
		}
		res, err := n.SetStyle(s)
		if err != nil {
			return err
		}
		if err := writeSep(cc.Out, k); err != nil {
			return err
		}
		if err := tree.Encode(cc.Out, res.Root(), opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
