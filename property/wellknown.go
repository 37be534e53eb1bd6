package property

import "github.com/signadot/richtext/value"

// The well-known table. Indices follow declaration order in this file and
// are the same in every Registry.

var wellKnown []*Name

func declare(name string, h *Handler) *Name {
	n := &Name{name: name, index: len(wellKnown), handler: h}
	wellKnown = append(wellKnown, n)
	return n
}

func typed[T any](name string, h *Handler) Typed[T] {
	return Typed[T]{declare(name, h)}
}

func shorthand[T any](name string, top, left, right, bottom Typed[T]) Typed[T] {
	n := declare(name, top.handler)
	n.edges = &[4]*Name{top.Name, left.Name, right.Name, bottom.Name}
	return Typed[T]{n}
}

var (
	colorHandler      = ValueHandler(value.ParseColor, value.ColorFromIR)
	borderStyle       = EnumHandler(value.ParseBorderStyle, value.BorderStyleFromIR)
	pixels            = LengthHandler(value.PixelLength)
	pixelsOrNone      = LengthHandler(value.PixelLength, value.NoneLength)
	pixelsOrNormal    = LengthHandler(value.PixelLength, value.NormalLength)
	lineHeightHandler = LengthHandler(value.PixelLength, value.NumberLength, value.NormalLength)
	untyped           = UntypedHandler()
)

// All names every property; it can only be removed.
var All = declare("all", VoidHandler())

var (
	BackgroundColor         = typed[value.Color]("background-color", colorHandler)
	BorderBottomColor       = typed[value.Color]("border-bottom-color", colorHandler)
	BorderBottomStyle       = typed[value.BorderStyle]("border-bottom-style", borderStyle)
	BorderBottomWidth       = typed[value.Length]("border-bottom-width", pixels)
	BorderCollapse          = typed[value.BorderCollapse]("border-collapse", EnumHandler(value.ParseBorderCollapse, value.BorderCollapseFromIR))
	BorderLeftColor         = typed[value.Color]("border-left-color", colorHandler)
	BorderLeftStyle         = typed[value.BorderStyle]("border-left-style", borderStyle)
	BorderLeftWidth         = typed[value.Length]("border-left-width", pixels)
	BorderRightColor        = typed[value.Color]("border-right-color", colorHandler)
	BorderRightStyle        = typed[value.BorderStyle]("border-right-style", borderStyle)
	BorderRightWidth        = typed[value.Length]("border-right-width", pixels)
	BorderSpacing           = typed[value.Length]("border-spacing", pixels)
	BorderTopColor          = typed[value.Color]("border-top-color", colorHandler)
	BorderTopStyle          = typed[value.BorderStyle]("border-top-style", borderStyle)
	BorderTopWidth          = typed[value.Length]("border-top-width", pixels)
	Color                   = typed[value.Color]("color", colorHandler)
	Direction               = typed[value.Direction]("direction", EnumHandler(value.ParseDirection, value.DirectionFromIR))
	FontFamily              = typed[value.FontFamily]("font-family", ValueHandler(value.ParseFontFamily, value.FontFamilyFromIR))
	FontKerning             = typed[value.FontKerning]("font-kerning", EnumHandler(value.ParseFontKerning, value.FontKerningFromIR))
	FontSize                = typed[value.FontSize]("font-size", ValueHandler(value.ParseFontSize, value.FontSizeFromIR))
	FontStretch             = typed[value.FontStretch]("font-stretch", EnumHandler(value.ParseFontStretch, value.FontStretchFromIR))
	FontStyle               = typed[value.FontStyle]("font-style", EnumHandler(value.ParseFontStyle, value.FontStyleFromIR))
	FontVariant             = typed[value.FontVariant]("font-variant", EnumHandler(value.ParseFontVariant, value.FontVariantFromIR))
	FontWeight              = typed[value.FontWeight]("font-weight", ValueHandler(value.ParseFontWeight, value.FontWeightFromIR))
	HangingPunctuation      = typed[value.HangingPunctuation]("hanging-punctuation", EnumHandler(value.ParseHangingPunctuation, value.HangingPunctuationFromIR))
	Height                  = typed[value.Length]("height", pixels)
	HyphenateCharacter      = typed[string]("hyphenate-character", StringHandler())
	Hyphens                 = typed[value.Hyphens]("hyphens", EnumHandler(value.ParseHyphens, value.HyphensFromIR))
	LetterSpacing           = typed[value.Length]("letter-spacing", pixelsOrNormal)
	LineHeight              = typed[value.Length]("line-height", lineHeightHandler)
	ListStylePosition       = typed[value.ListStylePosition]("list-style-position", EnumHandler(value.ParseListStylePosition, value.ListStylePositionFromIR))
	ListStyleType           = typed[value.ListStyleType]("list-style-type", EnumHandler(value.ParseListStyleType, value.ListStyleTypeFromIR))
	MarginBottom            = typed[value.Length]("margin-bottom", pixels)
	MarginLeft              = typed[value.Length]("margin-left", pixels)
	MarginRight             = typed[value.Length]("margin-right", pixels)
	MarginTop               = typed[value.Length]("margin-top", pixels)
	MaxHeight               = typed[value.Length]("max-height", pixelsOrNone)
	MaxWidth                = typed[value.Length]("max-width", pixelsOrNone)
	MinHeight               = typed[value.Length]("min-height", pixels)
	MinWidth                = typed[value.Length]("min-width", pixels)
	Opacity                 = typed[value.Opacity]("opacity", ValueHandler(value.ParseOpacity, value.OpacityFromIR))
	OutlineColor            = typed[value.Color]("outline-color", colorHandler)
	OutlineOffset           = typed[value.Length]("outline-offset", pixels)
	OutlineStyle            = typed[value.OutlineStyle]("outline-style", EnumHandler(value.ParseOutlineStyle, value.OutlineStyleFromIR))
	OutlineWidth            = typed[value.Length]("outline-width", pixels)
	OverflowWrap            = typed[value.OverflowWrap]("overflow-wrap", EnumHandler(value.ParseOverflowWrap, value.OverflowWrapFromIR))
	OverflowX               = typed[value.Overflow]("overflow-x", EnumHandler(value.ParseOverflow, value.OverflowFromIR))
	OverflowY               = typed[value.Overflow]("overflow-y", EnumHandler(value.ParseOverflow, value.OverflowFromIR))
	PaddingBottom           = typed[value.Length]("padding-bottom", pixels)
	PaddingLeft             = typed[value.Length]("padding-left", pixels)
	PaddingRight            = typed[value.Length]("padding-right", pixels)
	PaddingTop              = typed[value.Length]("padding-top", pixels)
	TextAlign               = typed[value.TextAlign]("text-align", EnumHandler(value.ParseTextAlign, value.TextAlignFromIR))
	TextDecorationColor     = typed[value.Color]("text-decoration-color", colorHandler)
	TextDecorationLine      = typed[value.TextDecorationLine]("text-decoration-line", EnumHandler(value.ParseTextDecorationLine, value.TextDecorationLineFromIR))
	TextDecorationStyle     = typed[value.TextDecorationStyle]("text-decoration-style", EnumHandler(value.ParseTextDecorationStyle, value.TextDecorationStyleFromIR))
	TextDecorationThickness = typed[value.Length]("text-decoration-thickness", pixels)
	TextIndent              = typed[value.Length]("text-indent", pixels)
	TextJustify             = typed[value.TextJustify]("text-justify", EnumHandler(value.ParseTextJustify, value.TextJustifyFromIR))
	TextOverflow            = typed[value.TextOverflow]("text-overflow", ValueHandler(value.ParseTextOverflow, value.TextOverflowFromIR))
	TextTransform           = typed[value.TextTransform]("text-transform", EnumHandler(value.ParseTextTransform, value.TextTransformFromIR))
	TextWrapping            = typed[value.TextWrapping]("text-wrapping", EnumHandler(value.ParseTextWrapping, value.TextWrappingFromIR))
	VerticalAlign           = typed[value.VerticalAlign]("vertical-align", EnumHandler(value.ParseVerticalAlign, value.VerticalAlignFromIR))
	Visibility              = typed[value.Visibility]("visibility", EnumHandler(value.ParseVisibility, value.VisibilityFromIR))
	WhiteSpace              = typed[value.WhiteSpace]("white-space", EnumHandler(value.ParseWhiteSpace, value.WhiteSpaceFromIR))
	Width                   = typed[value.Length]("width", pixels)
	WordBreak               = typed[value.WordBreak]("word-break", EnumHandler(value.ParseWordBreak, value.WordBreakFromIR))
	WordSpacing             = typed[value.Length]("word-spacing", pixelsOrNormal)
	WordWrap                = typed[value.WordWrap]("word-wrap", EnumHandler(value.ParseWordWrap, value.WordWrapFromIR))
	WritingMode             = typed[value.WritingMode]("writing-mode", EnumHandler(value.ParseWritingMode, value.WritingModeFromIR))
)

// Shorthands write and read their four edges.
var (
	BorderColor = shorthand("border-color", BorderTopColor, BorderLeftColor, BorderRightColor, BorderBottomColor)
	BorderStyle = shorthand("border-style", BorderTopStyle, BorderLeftStyle, BorderRightStyle, BorderBottomStyle)
	BorderWidth = shorthand("border-width", BorderTopWidth, BorderLeftWidth, BorderRightWidth, BorderBottomWidth)
	Margin      = shorthand("margin", MarginTop, MarginLeft, MarginRight, MarginBottom)
	Padding     = shorthand("padding", PaddingTop, PaddingLeft, PaddingRight, PaddingBottom)
)
