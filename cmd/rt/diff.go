package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/tree"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := getDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	d, err := tree.Diff(a, b, tree.WithEncodeOptions(encode.EncodeFormat(cfg.outFormat())))
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	if err := writeDiff(cc.Out, d, cfg.colored(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeDiff(w io.Writer, d string, colored bool) error {
	if !colored {
		_, err := io.WriteString(w, d)
		return err
	}
	del := color.New(color.FgRed).SprintFunc()
	ins := color.New(color.FgGreen).SprintFunc()
	for _, line := range strings.SplitAfter(d, "\n") {
		switch {
		case strings.HasPrefix(line, "-"):
			line = del(line)
		case strings.HasPrefix(line, "+"):
			line = ins(line)
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
