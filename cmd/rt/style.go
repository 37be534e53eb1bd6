package main

import (
	"fmt"

	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/style"

	"github.com/scott-cotton/cli"
)

func styleText(cfg *StyleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Style.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: style requires 1 argument, got %d", cli.ErrUsage, len(args))
	}
	text := args[0]
	if cfg.File {
		d, err := readInput(cc, args[0])
		if err != nil {
			return err
		}
		text = string(d)
	}
	s, err := style.Parse(cfg.registry(), text)
	if err != nil {
		return fmt.Errorf("error parsing style: %w", err)
	}
	theLog.Debug("parsed style", "properties", s.Len())
	if !cfg.Wire {
		_, err := fmt.Fprintln(cc.Out, s.String())
		return err
	}
	node, err := s.ToIR()
	if err != nil {
		return err
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
