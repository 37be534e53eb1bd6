package value

import "github.com/signadot/richtext/ir"

// Keyword enumerations. Each type's text and wire form is its css keyword.

type BorderStyle int

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleHidden
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

var borderStyleEnum = &enum{typeName: "border-style", names: []string{"none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset"}}

func BorderStyleValues() []BorderStyle { return enumValues[BorderStyle](borderStyleEnum) }

func ParseBorderStyle(s string) (BorderStyle, error) {
	return parseEnum[BorderStyle](borderStyleEnum, s)
}

func BorderStyleFromIR(node *ir.Node) (BorderStyle, error) {
	return enumFromIR[BorderStyle](borderStyleEnum, node)
}

func (v BorderStyle) String() string   { return borderStyleEnum.name(int(v)) }
func (v BorderStyle) TypeName() string { return borderStyleEnum.typeName }
func (v BorderStyle) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v BorderStyle) Valid() bool      { return borderStyleEnum.valid(int(v)) }

type BorderCollapse int

const (
	BorderCollapseSeparate BorderCollapse = iota
	BorderCollapseCollapse
)

var borderCollapseEnum = &enum{typeName: "border-collapse", names: []string{"separate", "collapse"}}

func BorderCollapseValues() []BorderCollapse { return enumValues[BorderCollapse](borderCollapseEnum) }

func ParseBorderCollapse(s string) (BorderCollapse, error) {
	return parseEnum[BorderCollapse](borderCollapseEnum, s)
}

func BorderCollapseFromIR(node *ir.Node) (BorderCollapse, error) {
	return enumFromIR[BorderCollapse](borderCollapseEnum, node)
}

func (v BorderCollapse) String() string   { return borderCollapseEnum.name(int(v)) }
func (v BorderCollapse) TypeName() string { return borderCollapseEnum.typeName }
func (v BorderCollapse) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v BorderCollapse) Valid() bool      { return borderCollapseEnum.valid(int(v)) }

type Direction int

const (
	DirectionLtr Direction = iota
	DirectionRtl
)

var directionEnum = &enum{typeName: "direction", names: []string{"ltr", "rtl"}}

func DirectionValues() []Direction { return enumValues[Direction](directionEnum) }

func ParseDirection(s string) (Direction, error) { return parseEnum[Direction](directionEnum, s) }

func DirectionFromIR(node *ir.Node) (Direction, error) {
	return enumFromIR[Direction](directionEnum, node)
}

func (v Direction) String() string   { return directionEnum.name(int(v)) }
func (v Direction) TypeName() string { return directionEnum.typeName }
func (v Direction) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v Direction) Valid() bool      { return directionEnum.valid(int(v)) }

type FontKerning int

const (
	FontKerningAuto FontKerning = iota
	FontKerningNormal
	FontKerningNone
)

var fontKerningEnum = &enum{typeName: "font-kerning", names: []string{"auto", "normal", "none"}}

func FontKerningValues() []FontKerning { return enumValues[FontKerning](fontKerningEnum) }

func ParseFontKerning(s string) (FontKerning, error) {
	return parseEnum[FontKerning](fontKerningEnum, s)
}

func FontKerningFromIR(node *ir.Node) (FontKerning, error) {
	return enumFromIR[FontKerning](fontKerningEnum, node)
}

func (v FontKerning) String() string   { return fontKerningEnum.name(int(v)) }
func (v FontKerning) TypeName() string { return fontKerningEnum.typeName }
func (v FontKerning) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v FontKerning) Valid() bool      { return fontKerningEnum.valid(int(v)) }

type FontStretch int

const (
	FontStretchUltraCondensed FontStretch = iota
	FontStretchExtraCondensed
	FontStretchCondensed
	FontStretchSemiCondensed
	FontStretchNormal
	FontStretchSemiExpanded
	FontStretchExpanded
	FontStretchExtraExpanded
	FontStretchUltraExpanded
)

var fontStretchEnum = &enum{typeName: "font-stretch", names: []string{"ultra-condensed", "extra-condensed", "condensed", "semi-condensed", "normal", "semi-expanded", "expanded", "extra-expanded", "ultra-expanded"}}

func FontStretchValues() []FontStretch { return enumValues[FontStretch](fontStretchEnum) }

func ParseFontStretch(s string) (FontStretch, error) {
	return parseEnum[FontStretch](fontStretchEnum, s)
}

func FontStretchFromIR(node *ir.Node) (FontStretch, error) {
	return enumFromIR[FontStretch](fontStretchEnum, node)
}

func (v FontStretch) String() string   { return fontStretchEnum.name(int(v)) }
func (v FontStretch) TypeName() string { return fontStretchEnum.typeName }
func (v FontStretch) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v FontStretch) Valid() bool      { return fontStretchEnum.valid(int(v)) }

type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var fontStyleEnum = &enum{typeName: "font-style", names: []string{"normal", "italic", "oblique"}}

func FontStyleValues() []FontStyle { return enumValues[FontStyle](fontStyleEnum) }

func ParseFontStyle(s string) (FontStyle, error) { return parseEnum[FontStyle](fontStyleEnum, s) }

func FontStyleFromIR(node *ir.Node) (FontStyle, error) {
	return enumFromIR[FontStyle](fontStyleEnum, node)
}

func (v FontStyle) String() string   { return fontStyleEnum.name(int(v)) }
func (v FontStyle) TypeName() string { return fontStyleEnum.typeName }
func (v FontStyle) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v FontStyle) Valid() bool      { return fontStyleEnum.valid(int(v)) }

type FontVariant int

const (
	FontVariantNormal FontVariant = iota
	FontVariantSmallCaps
	FontVariantInitial
)

var fontVariantEnum = &enum{typeName: "font-variant", names: []string{"normal", "small-caps", "initial"}}

func FontVariantValues() []FontVariant { return enumValues[FontVariant](fontVariantEnum) }

func ParseFontVariant(s string) (FontVariant, error) {
	return parseEnum[FontVariant](fontVariantEnum, s)
}

func FontVariantFromIR(node *ir.Node) (FontVariant, error) {
	return enumFromIR[FontVariant](fontVariantEnum, node)
}

func (v FontVariant) String() string   { return fontVariantEnum.name(int(v)) }
func (v FontVariant) TypeName() string { return fontVariantEnum.typeName }
func (v FontVariant) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v FontVariant) Valid() bool      { return fontVariantEnum.valid(int(v)) }

type Hyphens int

const (
	HyphensNone Hyphens = iota
	HyphensManual
	HyphensAuto
)

var hyphensEnum = &enum{typeName: "hyphens", names: []string{"none", "manual", "auto"}}

func HyphensValues() []Hyphens { return enumValues[Hyphens](hyphensEnum) }

func ParseHyphens(s string) (Hyphens, error) { return parseEnum[Hyphens](hyphensEnum, s) }

func HyphensFromIR(node *ir.Node) (Hyphens, error) { return enumFromIR[Hyphens](hyphensEnum, node) }

func (v Hyphens) String() string   { return hyphensEnum.name(int(v)) }
func (v Hyphens) TypeName() string { return hyphensEnum.typeName }
func (v Hyphens) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v Hyphens) Valid() bool      { return hyphensEnum.valid(int(v)) }

type ListStylePosition int

const (
	ListStylePositionInside ListStylePosition = iota
	ListStylePositionOutside
)

var listStylePositionEnum = &enum{typeName: "list-style-position", names: []string{"inside", "outside"}}

func ListStylePositionValues() []ListStylePosition {
	return enumValues[ListStylePosition](listStylePositionEnum)
}

func ParseListStylePosition(s string) (ListStylePosition, error) {
	return parseEnum[ListStylePosition](listStylePositionEnum, s)
}

func ListStylePositionFromIR(node *ir.Node) (ListStylePosition, error) {
	return enumFromIR[ListStylePosition](listStylePositionEnum, node)
}

func (v ListStylePosition) String() string   { return listStylePositionEnum.name(int(v)) }
func (v ListStylePosition) TypeName() string { return listStylePositionEnum.typeName }
func (v ListStylePosition) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v ListStylePosition) Valid() bool      { return listStylePositionEnum.valid(int(v)) }

type ListStyleType int

const (
	ListStyleTypeDisc ListStyleType = iota
	ListStyleTypeCircle
	ListStyleTypeSquare
	ListStyleTypeDecimal
	ListStyleTypeDecimalLeadingZero
	ListStyleTypeLowerRoman
	ListStyleTypeUpperRoman
	ListStyleTypeLowerAlpha
	ListStyleTypeUpperAlpha
	ListStyleTypeNone
)

var listStyleTypeEnum = &enum{typeName: "list-style-type", names: []string{"disc", "circle", "square", "decimal", "decimal-leading-zero", "lower-roman", "upper-roman", "lower-alpha", "upper-alpha", "none"}}

func ListStyleTypeValues() []ListStyleType { return enumValues[ListStyleType](listStyleTypeEnum) }

func ParseListStyleType(s string) (ListStyleType, error) {
	return parseEnum[ListStyleType](listStyleTypeEnum, s)
}

func ListStyleTypeFromIR(node *ir.Node) (ListStyleType, error) {
	return enumFromIR[ListStyleType](listStyleTypeEnum, node)
}

func (v ListStyleType) String() string   { return listStyleTypeEnum.name(int(v)) }
func (v ListStyleType) TypeName() string { return listStyleTypeEnum.typeName }
func (v ListStyleType) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v ListStyleType) Valid() bool      { return listStyleTypeEnum.valid(int(v)) }

type HangingPunctuation int

const (
	HangingPunctuationNone HangingPunctuation = iota
	HangingPunctuationFirst
	HangingPunctuationLast
	HangingPunctuationForceEnd
	HangingPunctuationAllowEnd
)

var hangingPunctuationEnum = &enum{typeName: "hanging-punctuation", names: []string{"none", "first", "last", "force-end", "allow-end"}}

func HangingPunctuationValues() []HangingPunctuation {
	return enumValues[HangingPunctuation](hangingPunctuationEnum)
}

func ParseHangingPunctuation(s string) (HangingPunctuation, error) {
	return parseEnum[HangingPunctuation](hangingPunctuationEnum, s)
}

func HangingPunctuationFromIR(node *ir.Node) (HangingPunctuation, error) {
	return enumFromIR[HangingPunctuation](hangingPunctuationEnum, node)
}

func (v HangingPunctuation) String() string   { return hangingPunctuationEnum.name(int(v)) }
func (v HangingPunctuation) TypeName() string { return hangingPunctuationEnum.typeName }
func (v HangingPunctuation) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v HangingPunctuation) Valid() bool      { return hangingPunctuationEnum.valid(int(v)) }

// OutlineStyle is BorderStyle without "hidden".
type OutlineStyle int

const (
	OutlineStyleNone OutlineStyle = iota
	OutlineStyleAuto
	OutlineStyleDotted
	OutlineStyleDashed
	OutlineStyleSolid
	OutlineStyleDouble
	OutlineStyleGroove
	OutlineStyleRidge
	OutlineStyleInset
	OutlineStyleOutset
)

var outlineStyleEnum = &enum{typeName: "outline-style", names: []string{"none", "auto", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset"}}

func OutlineStyleValues() []OutlineStyle { return enumValues[OutlineStyle](outlineStyleEnum) }

func ParseOutlineStyle(s string) (OutlineStyle, error) {
	return parseEnum[OutlineStyle](outlineStyleEnum, s)
}

func OutlineStyleFromIR(node *ir.Node) (OutlineStyle, error) {
	return enumFromIR[OutlineStyle](outlineStyleEnum, node)
}

func (v OutlineStyle) String() string   { return outlineStyleEnum.name(int(v)) }
func (v OutlineStyle) TypeName() string { return outlineStyleEnum.typeName }
func (v OutlineStyle) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v OutlineStyle) Valid() bool      { return outlineStyleEnum.valid(int(v)) }

type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowClip
	OverflowScroll
	OverflowAuto
)

var overflowEnum = &enum{typeName: "overflow", names: []string{"visible", "hidden", "clip", "scroll", "auto"}}

func OverflowValues() []Overflow { return enumValues[Overflow](overflowEnum) }

func ParseOverflow(s string) (Overflow, error) { return parseEnum[Overflow](overflowEnum, s) }

func OverflowFromIR(node *ir.Node) (Overflow, error) { return enumFromIR[Overflow](overflowEnum, node) }

func (v Overflow) String() string   { return overflowEnum.name(int(v)) }
func (v Overflow) TypeName() string { return overflowEnum.typeName }
func (v Overflow) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v Overflow) Valid() bool      { return overflowEnum.valid(int(v)) }

type OverflowWrap int

const (
	OverflowWrapNormal OverflowWrap = iota
	OverflowWrapAnywhere
	OverflowWrapBreakWord
)

var overflowWrapEnum = &enum{typeName: "overflow-wrap", names: []string{"normal", "anywhere", "break-word"}}

func OverflowWrapValues() []OverflowWrap { return enumValues[OverflowWrap](overflowWrapEnum) }

func ParseOverflowWrap(s string) (OverflowWrap, error) {
	return parseEnum[OverflowWrap](overflowWrapEnum, s)
}

func OverflowWrapFromIR(node *ir.Node) (OverflowWrap, error) {
	return enumFromIR[OverflowWrap](overflowWrapEnum, node)
}

func (v OverflowWrap) String() string   { return overflowWrapEnum.name(int(v)) }
func (v OverflowWrap) TypeName() string { return overflowWrapEnum.typeName }
func (v OverflowWrap) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v OverflowWrap) Valid() bool      { return overflowWrapEnum.valid(int(v)) }

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
	TextAlignStart
	TextAlignEnd
)

var textAlignEnum = &enum{typeName: "text-align", names: []string{"left", "right", "center", "justify", "start", "end"}}

func TextAlignValues() []TextAlign { return enumValues[TextAlign](textAlignEnum) }

func ParseTextAlign(s string) (TextAlign, error) { return parseEnum[TextAlign](textAlignEnum, s) }

func TextAlignFromIR(node *ir.Node) (TextAlign, error) {
	return enumFromIR[TextAlign](textAlignEnum, node)
}

func (v TextAlign) String() string   { return textAlignEnum.name(int(v)) }
func (v TextAlign) TypeName() string { return textAlignEnum.typeName }
func (v TextAlign) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v TextAlign) Valid() bool      { return textAlignEnum.valid(int(v)) }

type TextDecorationLine int

const (
	TextDecorationLineNone TextDecorationLine = iota
	TextDecorationLineUnderline
	TextDecorationLineOverline
	TextDecorationLineLineThrough
)

var textDecorationLineEnum = &enum{typeName: "text-decoration-line", names: []string{"none", "underline", "overline", "line-through"}}

func TextDecorationLineValues() []TextDecorationLine {
	return enumValues[TextDecorationLine](textDecorationLineEnum)
}

func ParseTextDecorationLine(s string) (TextDecorationLine, error) {
	return parseEnum[TextDecorationLine](textDecorationLineEnum, s)
}

func TextDecorationLineFromIR(node *ir.Node) (TextDecorationLine, error) {
	return enumFromIR[TextDecorationLine](textDecorationLineEnum, node)
}

func (v TextDecorationLine) String() string   { return textDecorationLineEnum.name(int(v)) }
func (v TextDecorationLine) TypeName() string { return textDecorationLineEnum.typeName }
func (v TextDecorationLine) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v TextDecorationLine) Valid() bool      { return textDecorationLineEnum.valid(int(v)) }

type TextDecorationStyle int

const (
	TextDecorationStyleSolid TextDecorationStyle = iota
	TextDecorationStyleDouble
	TextDecorationStyleDotted
	TextDecorationStyleDashed
	TextDecorationStyleWavy
)

var textDecorationStyleEnum = &enum{typeName: "text-decoration-style", names: []string{"solid", "double", "dotted", "dashed", "wavy"}}

func TextDecorationStyleValues() []TextDecorationStyle {
	return enumValues[TextDecorationStyle](textDecorationStyleEnum)
}

func ParseTextDecorationStyle(s string) (TextDecorationStyle, error) {
	return parseEnum[TextDecorationStyle](textDecorationStyleEnum, s)
}

func TextDecorationStyleFromIR(node *ir.Node) (TextDecorationStyle, error) {
	return enumFromIR[TextDecorationStyle](textDecorationStyleEnum, node)
}

func (v TextDecorationStyle) String() string   { return textDecorationStyleEnum.name(int(v)) }
func (v TextDecorationStyle) TypeName() string { return textDecorationStyleEnum.typeName }
func (v TextDecorationStyle) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v TextDecorationStyle) Valid() bool      { return textDecorationStyleEnum.valid(int(v)) }

type TextJustify int

const (
	TextJustifyAuto TextJustify = iota
	TextJustifyInterWord
	TextJustifyInterCharacter
	TextJustifyNone
)

var textJustifyEnum = &enum{typeName: "text-justify", names: []string{"auto", "inter-word", "inter-character", "none"}}

func TextJustifyValues() []TextJustify { return enumValues[TextJustify](textJustifyEnum) }

func ParseTextJustify(s string) (TextJustify, error) {
	return parseEnum[TextJustify](textJustifyEnum, s)
}

func TextJustifyFromIR(node *ir.Node) (TextJustify, error) {
	return enumFromIR[TextJustify](textJustifyEnum, node)
}

func (v TextJustify) String() string   { return textJustifyEnum.name(int(v)) }
func (v TextJustify) TypeName() string { return textJustifyEnum.typeName }
func (v TextJustify) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v TextJustify) Valid() bool      { return textJustifyEnum.valid(int(v)) }

type TextTransform int

const (
	TextTransformNone TextTransform = iota
	TextTransformCapitalize
	TextTransformUppercase
	TextTransformLowercase
)

var textTransformEnum = &enum{typeName: "text-transform", names: []string{"none", "capitalize", "uppercase", "lowercase"}}

func TextTransformValues() []TextTransform { return enumValues[TextTransform](textTransformEnum) }

func ParseTextTransform(s string) (TextTransform, error) {
	return parseEnum[TextTransform](textTransformEnum, s)
}

func TextTransformFromIR(node *ir.Node) (TextTransform, error) {
	return enumFromIR[TextTransform](textTransformEnum, node)
}

func (v TextTransform) String() string   { return textTransformEnum.name(int(v)) }
func (v TextTransform) TypeName() string { return textTransformEnum.typeName }
func (v TextTransform) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v TextTransform) Valid() bool      { return textTransformEnum.valid(int(v)) }

type TextWrapping int

const (
	TextWrappingClip TextWrapping = iota
	TextWrappingOverflow
	TextWrappingWrap
)

var textWrappingEnum = &enum{typeName: "text-wrapping", names: []string{"clip", "overflow", "wrap"}}

func TextWrappingValues() []TextWrapping { return enumValues[TextWrapping](textWrappingEnum) }

func ParseTextWrapping(s string) (TextWrapping, error) {
	return parseEnum[TextWrapping](textWrappingEnum, s)
}

func TextWrappingFromIR(node *ir.Node) (TextWrapping, error) {
	return enumFromIR[TextWrapping](textWrappingEnum, node)
}

func (v TextWrapping) String() string   { return textWrappingEnum.name(int(v)) }
func (v TextWrapping) TypeName() string { return textWrappingEnum.typeName }
func (v TextWrapping) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v TextWrapping) Valid() bool      { return textWrappingEnum.valid(int(v)) }

type VerticalAlign int

const (
	VerticalAlignBaseline VerticalAlign = iota
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTop
	VerticalAlignTextTop
	VerticalAlignMiddle
	VerticalAlignBottom
	VerticalAlignTextBottom
)

var verticalAlignEnum = &enum{typeName: "vertical-align", names: []string{"baseline", "sub", "super", "top", "text-top", "middle", "bottom", "text-bottom"}}

func VerticalAlignValues() []VerticalAlign { return enumValues[VerticalAlign](verticalAlignEnum) }

func ParseVerticalAlign(s string) (VerticalAlign, error) {
	return parseEnum[VerticalAlign](verticalAlignEnum, s)
}

func VerticalAlignFromIR(node *ir.Node) (VerticalAlign, error) {
	return enumFromIR[VerticalAlign](verticalAlignEnum, node)
}

func (v VerticalAlign) String() string   { return verticalAlignEnum.name(int(v)) }
func (v VerticalAlign) TypeName() string { return verticalAlignEnum.typeName }
func (v VerticalAlign) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v VerticalAlign) Valid() bool      { return verticalAlignEnum.valid(int(v)) }

type Visibility int

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
	VisibilityCollapse
)

var visibilityEnum = &enum{typeName: "visibility", names: []string{"visible", "hidden", "collapse"}}

func VisibilityValues() []Visibility { return enumValues[Visibility](visibilityEnum) }

func ParseVisibility(s string) (Visibility, error) { return parseEnum[Visibility](visibilityEnum, s) }

func VisibilityFromIR(node *ir.Node) (Visibility, error) {
	return enumFromIR[Visibility](visibilityEnum, node)
}

func (v Visibility) String() string   { return visibilityEnum.name(int(v)) }
func (v Visibility) TypeName() string { return visibilityEnum.typeName }
func (v Visibility) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v Visibility) Valid() bool      { return visibilityEnum.valid(int(v)) }

type WhiteSpace int

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNowrap
	WhiteSpacePre
	WhiteSpacePreWrap
	WhiteSpacePreLine
)

var whiteSpaceEnum = &enum{typeName: "white-space", names: []string{"normal", "nowrap", "pre", "pre-wrap", "pre-line"}}

func WhiteSpaceValues() []WhiteSpace { return enumValues[WhiteSpace](whiteSpaceEnum) }

func ParseWhiteSpace(s string) (WhiteSpace, error) { return parseEnum[WhiteSpace](whiteSpaceEnum, s) }

func WhiteSpaceFromIR(node *ir.Node) (WhiteSpace, error) {
	return enumFromIR[WhiteSpace](whiteSpaceEnum, node)
}

func (v WhiteSpace) String() string   { return whiteSpaceEnum.name(int(v)) }
func (v WhiteSpace) TypeName() string { return whiteSpaceEnum.typeName }
func (v WhiteSpace) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v WhiteSpace) Valid() bool      { return whiteSpaceEnum.valid(int(v)) }

type WordBreak int

const (
	WordBreakNormal WordBreak = iota
	WordBreakBreakAll
	WordBreakKeepAll
	WordBreakBreakWord
)

var wordBreakEnum = &enum{typeName: "word-break", names: []string{"normal", "break-all", "keep-all", "break-word"}}

func WordBreakValues() []WordBreak { return enumValues[WordBreak](wordBreakEnum) }

func ParseWordBreak(s string) (WordBreak, error) { return parseEnum[WordBreak](wordBreakEnum, s) }

func WordBreakFromIR(node *ir.Node) (WordBreak, error) {
	return enumFromIR[WordBreak](wordBreakEnum, node)
}

func (v WordBreak) String() string   { return wordBreakEnum.name(int(v)) }
func (v WordBreak) TypeName() string { return wordBreakEnum.typeName }
func (v WordBreak) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v WordBreak) Valid() bool      { return wordBreakEnum.valid(int(v)) }

type WordWrap int

const (
	WordWrapNormal WordWrap = iota
	WordWrapBreakWord
)

var wordWrapEnum = &enum{typeName: "word-wrap", names: []string{"normal", "break-word"}}

func WordWrapValues() []WordWrap { return enumValues[WordWrap](wordWrapEnum) }

func ParseWordWrap(s string) (WordWrap, error) { return parseEnum[WordWrap](wordWrapEnum, s) }

func WordWrapFromIR(node *ir.Node) (WordWrap, error) { return enumFromIR[WordWrap](wordWrapEnum, node) }

func (v WordWrap) String() string   { return wordWrapEnum.name(int(v)) }
func (v WordWrap) TypeName() string { return wordWrapEnum.typeName }
func (v WordWrap) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v WordWrap) Valid() bool      { return wordWrapEnum.valid(int(v)) }

type WritingMode int

const (
	WritingModeHorizontalTb WritingMode = iota
	WritingModeVerticalRl
	WritingModeVerticalLr
)

var writingModeEnum = &enum{typeName: "writing-mode", names: []string{"horizontal-tb", "vertical-rl", "vertical-lr"}}

func WritingModeValues() []WritingMode { return enumValues[WritingMode](writingModeEnum) }

func ParseWritingMode(s string) (WritingMode, error) {
	return parseEnum[WritingMode](writingModeEnum, s)
}

func WritingModeFromIR(node *ir.Node) (WritingMode, error) {
	return enumFromIR[WritingMode](writingModeEnum, node)
}

func (v WritingMode) String() string   { return writingModeEnum.name(int(v)) }
func (v WritingMode) TypeName() string { return writingModeEnum.typeName }
func (v WritingMode) ToIR() *ir.Node   { return ir.FromString(v.String()) }
func (v WritingMode) Valid() bool      { return writingModeEnum.valid(int(v)) }

func enumCodecs() []*Codec {
	return []*Codec{
		codecOf(borderStyleEnum.typeName, ParseBorderStyle, BorderStyleFromIR),
		codecOf(borderCollapseEnum.typeName, ParseBorderCollapse, BorderCollapseFromIR),
		codecOf(directionEnum.typeName, ParseDirection, DirectionFromIR),
		codecOf(fontKerningEnum.typeName, ParseFontKerning, FontKerningFromIR),
		codecOf(fontStretchEnum.typeName, ParseFontStretch, FontStretchFromIR),
		codecOf(fontStyleEnum.typeName, ParseFontStyle, FontStyleFromIR),
		codecOf(fontVariantEnum.typeName, ParseFontVariant, FontVariantFromIR),
		codecOf(hyphensEnum.typeName, ParseHyphens, HyphensFromIR),
		codecOf(hangingPunctuationEnum.typeName, ParseHangingPunctuation, HangingPunctuationFromIR),
		codecOf(outlineStyleEnum.typeName, ParseOutlineStyle, OutlineStyleFromIR),
		codecOf(listStylePositionEnum.typeName, ParseListStylePosition, ListStylePositionFromIR),
		codecOf(listStyleTypeEnum.typeName, ParseListStyleType, ListStyleTypeFromIR),
		codecOf(overflowEnum.typeName, ParseOverflow, OverflowFromIR),
		codecOf(overflowWrapEnum.typeName, ParseOverflowWrap, OverflowWrapFromIR),
		codecOf(textAlignEnum.typeName, ParseTextAlign, TextAlignFromIR),
		codecOf(textDecorationLineEnum.typeName, ParseTextDecorationLine, TextDecorationLineFromIR),
		codecOf(textDecorationStyleEnum.typeName, ParseTextDecorationStyle, TextDecorationStyleFromIR),
		codecOf(textJustifyEnum.typeName, ParseTextJustify, TextJustifyFromIR),
		codecOf(textTransformEnum.typeName, ParseTextTransform, TextTransformFromIR),
		codecOf(textWrappingEnum.typeName, ParseTextWrapping, TextWrappingFromIR),
		codecOf(verticalAlignEnum.typeName, ParseVerticalAlign, VerticalAlignFromIR),
		codecOf(visibilityEnum.typeName, ParseVisibility, VisibilityFromIR),
		codecOf(whiteSpaceEnum.typeName, ParseWhiteSpace, WhiteSpaceFromIR),
		codecOf(wordBreakEnum.typeName, ParseWordBreak, WordBreakFromIR),
		codecOf(wordWrapEnum.typeName, ParseWordWrap, WordWrapFromIR),
		codecOf(writingModeEnum.typeName, ParseWritingMode, WritingModeFromIR),
	}
}
