package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
)

const colorType = "color"

// Color is an sRGB color with alpha.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(0xff, 0xff, 0xff)
)

var namedColors = map[string]Color{
	"black":       RGB(0, 0, 0),
	"silver":      RGB(192, 192, 192),
	"gray":        RGB(128, 128, 128),
	"grey":        RGB(128, 128, 128),
	"white":       RGB(255, 255, 255),
	"maroon":      RGB(128, 0, 0),
	"red":         RGB(255, 0, 0),
	"purple":      RGB(128, 0, 128),
	"fuchsia":     RGB(255, 0, 255),
	"magenta":     RGB(255, 0, 255),
	"green":       RGB(0, 128, 0),
	"lime":        RGB(0, 255, 0),
	"olive":       RGB(128, 128, 0),
	"yellow":      RGB(255, 255, 0),
	"navy":        RGB(0, 0, 128),
	"blue":        RGB(0, 0, 255),
	"teal":        RGB(0, 128, 128),
	"aqua":        RGB(0, 255, 255),
	"cyan":        RGB(0, 255, 255),
	"orange":      RGB(255, 165, 0),
	"pink":        RGB(255, 192, 203),
	"brown":       RGB(165, 42, 42),
	"gold":        RGB(255, 215, 0),
	"indigo":      RGB(75, 0, 130),
	"violet":      RGB(238, 130, 238),
	"coral":       RGB(255, 127, 80),
	"salmon":      RGB(250, 128, 114),
	"khaki":       RGB(240, 230, 140),
	"crimson":     RGB(220, 20, 60),
	"lightgray":   RGB(211, 211, 211),
	"lightgrey":   RGB(211, 211, 211),
	"darkgray":    RGB(169, 169, 169),
	"darkgrey":    RGB(169, 169, 169),
	"lightblue":   RGB(173, 216, 230),
	"darkblue":    RGB(0, 0, 139),
	"lightgreen":  RGB(144, 238, 144),
	"darkgreen":   RGB(0, 100, 0),
	"darkred":     RGB(139, 0, 0),
	"transparent": {},
}

// ParseColor parses hex (#rgb, #rgba, #rrggbb, #rrggbbaa), functional
// (rgb(...), rgba(...)) and named colors.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHexColor(s, v[1:])
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseRGBFunc(s, v[5:len(v)-1], true)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGBFunc(s, v[4:len(v)-1], false)
	}
	return Color{}, fmt.Errorf("%w: bad color %q", errs.ErrParse, s)
}

func parseHexColor(orig, hex string) (Color, error) {
	switch len(hex) {
	case 3, 4:
		long := make([]byte, 0, 2*len(hex))
		for i := range len(hex) {
			long = append(long, hex[i], hex[i])
		}
		hex = string(long)
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: bad color %q", errs.ErrParse, orig)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: bad color %q", errs.ErrParse, orig)
	}
	if len(hex) == 6 {
		n = n<<8 | 0xff
	}
	return Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

func parseRGBFunc(orig, args string, alpha bool) (Color, error) {
	parts := strings.Split(args, ",")
	want := 3
	if alpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, fmt.Errorf("%w: bad color %q", errs.ErrParse, orig)
	}
	var comps [4]uint8
	comps[3] = 0xff
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == 3 {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil || f < 0 || f > 255 {
				return Color{}, fmt.Errorf("%w: bad alpha in %q", errs.ErrParse, orig)
			}
			// fractions in [0, 1], otherwise 0..255
			if f <= 1 {
				f *= 255
			}
			comps[i] = uint8(f + 0.5)
			continue
		}
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: bad component %q in %q", errs.ErrParse, p, orig)
		}
		comps[i] = uint8(n)
	}
	return Color{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) TypeName() string { return colorType }

func (c Color) ToIR() *ir.Node { return ir.FromString(c.String()) }

func ColorFromIR(node *ir.Node) (Color, error) {
	s, err := stringFromIR(colorType, node)
	if err != nil {
		return Color{}, err
	}
	return ParseColor(s)
}
