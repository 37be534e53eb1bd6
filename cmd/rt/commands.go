package main

import (
	"github.com/signadot/richtext/tree"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y, ir",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y, ir",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "rt").
		WithSynopsis("rt [opts] command [opts]").
		WithDescription("rt is a tool for working with rich text documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rtMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			HTMLCommand(cfg),
			StyleCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg),
			PropsCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-c] [files]").
		WithDescription("decode, validate and re-encode documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtDocs(cfg, cc, args)
		})
}

func HTMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HTMLConfig{MainConfig: mainCfg, Values: map[string]*tree.Node{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "p",
			Description: "resolve placeholder name with a document",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(valueOptTypeFunc(cfg.Values)), "(name=doc)"),
		})
	return cli.NewCommandAt(&cfg.HTML, "html").
		WithAliases("h").
		WithSynopsis("html [-indent s] [-p name=doc [-p name2=doc2]...] [files]").
		WithDescription("render documents as html").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return htmlDocs(cfg, cc, args)
		})
}

func valueOptTypeFunc(values map[string]*tree.Node) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := valueFunc(values, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func StyleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StyleConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Style, "style").
		WithAliases("s").
		WithSynopsis("style [-f] [-w] <style text>").
		WithDescription("parse style text and print it in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return styleText(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff a b").
		WithDescription("line diff of two documents, exiting 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-f] <json patch> [files]").
		WithDescription("apply a json patch to the styles of root style nodes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithSynopsis("eval <expr> [files]").
		WithDescription(evalDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

const evalDescription = `eval evaluates an expression against each document.

The document root is bound to 'node'. Available functions:

  kind(n) text(n) value(n) path(n)
  children(n) child(n, i) parent(n)
  styleOf(n, name)

Node results are encoded, other results are printed.`

func PropsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PropsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Props, "props").
		WithSynopsis("props [-t]").
		WithDescription("list registered style properties").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return props(cfg, cc, args)
		})
}
