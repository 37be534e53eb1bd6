// Package exprenv evaluates expr-lang expressions against document nodes.
//
// The node an expression runs against is bound to the variable node.
// The functions below are available:
//
//	kind(n)          kind name of n, such as "badge"
//	text(n)          plain text below n
//	value(n)         payload of n
//	path(n)          position of n below its root
//	children(n)      children of n
//	child(n, i)      child i of n
//	parent(n)        parent of n, or nil
//	styleOf(n, name) text of property name in the style of n, or nil
package exprenv

import (
	"fmt"

	"github.com/signadot/richtext/debug"
	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/property"
	"github.com/signadot/richtext/style"
	"github.com/signadot/richtext/tree"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// NodeVar is the name of the variable holding the evaluated node.
const NodeVar = "node"

// Env is the variable environment expressions run in.
type Env = map[string]any

type evalOpts struct {
	registry *property.Registry
}

type Option func(*evalOpts)

// WithRegistry sets the registry styleOf looks property names up in.
func WithRegistry(r *property.Registry) Option {
	return func(o *evalOpts) { o.registry = r }
}

// Program is a compiled expression.
type Program struct {
	src string
	prg *vm.Program
}

// Compile compiles src. Syntax and type errors wrap errs.ErrParse.
func Compile(src string, opts ...Option) (*Program, error) {
	o := &evalOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = property.Default()
	}
	exprOpts := append(funcs(o.registry), expr.Env(Env{NodeVar: (*tree.Node)(nil)}))
	prg, err := expr.Compile(src, exprOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrParse, err)
	}
	return &Program{src: src, prg: prg}, nil
}

// Run evaluates p with node bound to n.
func (p *Program) Run(n *tree.Node) (any, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", errs.ErrInvalidArgument)
	}
	if debug.Eval() {
		debug.Logf("eval %q on %s", p.src, n)
	}
	return expr.Run(p.prg, Env{NodeVar: n})
}

// Eval compiles src and runs it against n.
func Eval(src string, n *tree.Node, opts ...Option) (any, error) {
	p, err := Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	return p.Run(n)
}

func nodeArg(fn string, params []any, i int) (*tree.Node, error) {
	n, _ := params[i].(*tree.Node)
	if n == nil {
		return nil, fmt.Errorf("%w: %s: argument %d is nil", errs.ErrInvalidArgument, fn, i+1)
	}
	return n, nil
}

func funcs(reg *property.Registry) []expr.Option {
	return []expr.Option{
		expr.Function("kind", func(params ...any) (any, error) {
			n, err := nodeArg("kind", params, 0)
			if err != nil {
				return nil, err
			}
			return n.Kind().String(), nil
		},
			new(func(*tree.Node) string)),
		expr.Function("text", func(params ...any) (any, error) {
			n, err := nodeArg("text", params, 0)
			if err != nil {
				return nil, err
			}
			return n.Text(), nil
		},
			new(func(*tree.Node) string)),
		expr.Function("value", func(params ...any) (any, error) {
			n, err := nodeArg("value", params, 0)
			if err != nil {
				return nil, err
			}
			return n.Value(), nil
		},
			new(func(*tree.Node) string)),
		expr.Function("path", func(params ...any) (any, error) {
			n, err := nodeArg("path", params, 0)
			if err != nil {
				return nil, err
			}
			return n.Path(), nil
		},
			new(func(*tree.Node) string)),
		expr.Function("children", func(params ...any) (any, error) {
			n, err := nodeArg("children", params, 0)
			if err != nil {
				return nil, err
			}
			return n.Children(), nil
		},
			new(func(*tree.Node) []*tree.Node)),
		expr.Function("child", func(params ...any) (any, error) {
			n, err := nodeArg("child", params, 0)
			if err != nil {
				return nil, err
			}
			i := params[1].(int)
			c := n.Child(i)
			if c == nil {
				return nil, fmt.Errorf("%w: child %d of %d at %s", errs.ErrInvalidArgument, i, n.NumChildren(), n.Path())
			}
			return c, nil
		},
			new(func(*tree.Node, int) *tree.Node)),
		expr.Function("parent", func(params ...any) (any, error) {
			n, err := nodeArg("parent", params, 0)
			if err != nil {
				return nil, err
			}
			if n.IsRoot() {
				return nil, nil
			}
			return n.Parent(), nil
		},
			new(func(*tree.Node) *tree.Node)),
		expr.Function("styleOf", func(params ...any) (any, error) {
			n, err := nodeArg("styleOf", params, 0)
			if err != nil {
				return nil, err
			}
			name, err := reg.Lookup(params[1].(string))
			if err != nil {
				return nil, err
			}
			v, ok := n.Style().Get(name)
			if !ok {
				return nil, nil
			}
			return style.Text(v), nil
		},
			new(func(*tree.Node, string) any)),
	}
}
