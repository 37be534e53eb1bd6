package tree

import (
	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/parse"
	"github.com/signadot/richtext/property"
)

type codecOpts struct {
	registry   *property.Registry
	encodeOpts []encode.EncodeOption
	parseOpts  []parse.ParseOption
}

type CodecOption func(*codecOpts)

// WithRegistry sets the registry property names are looked up in when
// decoding. The default is property.Default().
func WithRegistry(r *property.Registry) CodecOption {
	return func(o *codecOpts) { o.registry = r }
}

func WithEncodeOptions(opts ...encode.EncodeOption) CodecOption {
	return func(o *codecOpts) { o.encodeOpts = append(o.encodeOpts, opts...) }
}

func WithParseOptions(opts ...parse.ParseOption) CodecOption {
	return func(o *codecOpts) { o.parseOpts = append(o.parseOpts, opts...) }
}

func codecOptions(opts []CodecOption) *codecOpts {
	o := &codecOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = property.Default()
	}
	return o
}
