package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	// YAMLFormat is the default. Tags are written natively.
	YAMLFormat Format = iota
	// JSONFormat is plain JSON. It cannot carry tags.
	JSONFormat
	// IRFormat is the lossless JSON form of the IR itself.
	IRFormat
)

var ErrBadFormat = errors.New("bad format")

var formatNames = map[string]Format{
	"y":    YAMLFormat,
	"yaml": YAMLFormat,
	"j":    JSONFormat,
	"json": JSONFormat,
	"ir":   IRFormat,
}

func ParseFormat(v string) (Format, error) {
	f, ok := formatNames[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case IRFormat:
		return []byte("ir"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat || f == IRFormat }

// Suffix returns the file extension for the format.
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case IRFormat:
		return ".ir.json"
	default:
		return ".yaml"
	}
}
