package params

import (
	"math"
	"strconv"

	"diorama/core"
)

// Kind is the value type of a field.
type Kind string

const (
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindColor  Kind = "color"
)

// Value is an immutable parameter value of one Kind. Colors are held in
// canonical lower-case "#rrggbb" form.
type Value struct {
	kind  Kind
	num   float64
	flag  bool
	color string
}

func NumberValue(v float64) Value { return Value{kind: KindNumber, num: v} }

func BoolValue(v bool) Value { return Value{kind: KindBool, flag: v} }

// ColorValue parses and canonicalises a hex color.
func ColorValue(hex string) (Value, error) {
	c, err := core.ParseHexColor(hex)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: KindColor, color: c.Hex()}, nil
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Float() float64 { return v.num }

func (v Value) Float32() float32 { return float32(v.num) }

// Int rounds the number to the nearest integer.
func (v Value) Int() int { return int(math.Round(v.num)) }

func (v Value) Bool() bool { return v.flag }

// Hex returns the canonical color string, or "" for non-color values.
func (v Value) Hex() string { return v.color }

// Color decodes the stored hex string.
func (v Value) Color() core.Color {
	if v.kind != KindColor {
		return core.Color{}
	}
	return core.MustHexColor(v.color)
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindColor:
		return v.color
	}
	return "<unset>"
}

// Interface returns the value as float64, bool or string.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	case KindColor:
		return v.color
	}
	return nil
}
