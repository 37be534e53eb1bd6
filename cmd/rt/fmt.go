package main

import (
	"fmt"

	"github.com/signadot/richtext/tree"

	"github.com/scott-cotton/cli"
)

func fmtDocs(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.codecOpts(cc.Out)
	return eachDoc(cfg.MainConfig, cc, args, func(k int, n *tree.Node) error {
		if cfg.Check {
			return nil
		}
		if err := writeSep(cc.Out, k); err != nil {
			return err
		}
		if err := tree.Encode(cc.Out, n, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
