package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/format"
	"github.com/signadot/richtext/parse"
	"github.com/signadot/richtext/property"
	"github.com/signadot/richtext/tree"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	B       bool `cli:"name=b desc='encode with brackets'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Verbose bool `cli:"name=v desc='log progress to stderr'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) registry() *property.Registry {
	return property.Default()
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) outFormat() format.Format {
	var res format.Format
	switch {
	case cfg.Y:
		res = format.YAMLFormat
	case cfg.J:
		res = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		res = *cfg.OutFormat
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
		// compact output is only well formed in flow style
		encode.EncodeBrackets(cfg.B || cfg.WireOut),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether output to w is colored: -color if given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) codecOpts(w io.Writer) []tree.CodecOption {
	return []tree.CodecOption{
		tree.WithRegistry(cfg.registry()),
		tree.WithParseOptions(cfg.parseOpts()...),
		tree.WithEncodeOptions(cfg.encOpts(w)...),
	}
}

type FmtConfig struct {
	*MainConfig
	Check bool `cli:"name=c aliases=check desc='only check that documents decode'"`

	Fmt *cli.Command
}

type HTMLConfig struct {
	*MainConfig
	Indent string `cli:"name=indent desc='indent style and style name content'"`
	Values map[string]*tree.Node

	HTML *cli.Command
}

type StyleConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='style arg is a file'"`
	Wire bool `cli:"name=w desc='print the wire form instead of style text'"`

	Style *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='patch arg is a file'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type PropsConfig struct {
	*MainConfig
	Text bool `cli:"name=t desc='print one property per line'"`

	Props *cli.Command
}
