// Package value defines the self-describing style property value types:
// Color, Length, FontWeight, FontSize, FontFamily, Opacity, TextOverflow
// and the keyword enumerations (BorderStyle, TextAlign, ...).
//
// Every type is comparable with == and implements Value, which gives it a
// canonical text form (parseable again by the type's Parse function) and a
// wire form. Values are plain Go values, so no interning is needed.
package value
