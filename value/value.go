// Package value defines the runtime value model: the tagged variant every
// expression reduces to, and the equality/stringification rules that apply
// across the interpreter.
package value

import (
	"math"
	"strconv"
)

// Type identifies the runtime variant of a Value.
type Type string

const (
	NilType      Type = "nil"
	BooleanType  Type = "boolean"
	FloatType    Type = "float"
	StringType   Type = "string"
	FunctionType Type = "function"
)

// Value is the interface every runtime value implements: type tag,
// display form, and value equality (spec §3.3).
type Value interface {
	Type() Type
	String() string
	Equals(other Value) bool
}

// Nil is the interpreter's single null value. There is exactly one live
// instance, NilValue, handed out by every producer of nil so identity
// comparisons and allocation stay cheap.
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }
func (Nil) Equals(other Value) bool {
	_, ok := other.(Nil)
	return ok
}

// NilValue is the shared nil singleton (spec §9's "global singleton nil").
var NilValue Value = Nil{}

// Boolean wraps a language-level true/false.
type Boolean struct {
	Value bool
}

func (b Boolean) Type() Type     { return BooleanType }
func (b Boolean) String() string { return strconv.FormatBool(b.Value) }
func (b Boolean) Equals(other Value) bool {
	o, ok := other.(Boolean)
	return ok && o.Value == b.Value
}

// Float wraps the language's only numeric type, an IEEE-754 double.
type Float struct {
	Value float64
}

func (f Float) Type() Type { return FloatType }

// String renders an integer-valued float without a trailing decimal point
// (spec §8: "3" not "3.0"), otherwise uses Go's shortest round-trip form.
func (f Float) String() string {
	if math.IsInf(f.Value, 1) {
		return "inf"
	}
	if math.IsInf(f.Value, -1) {
		return "-inf"
	}
	if math.IsNaN(f.Value) {
		return "NaN"
	}
	if f.Value == math.Trunc(f.Value) && math.Abs(f.Value) < 1e15 {
		return strconv.FormatFloat(f.Value, 'f', 0, 64)
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// Equals follows IEEE-754: NaN is never equal to anything, including
// itself (spec §3.3, §8).
func (f Float) Equals(other Value) bool {
	o, ok := other.(Float)
	return ok && f.Value == o.Value
}

// String wraps a language-level string value.
type String struct {
	Value string
}

func (s String) Type() Type     { return StringType }
func (s String) String() string { return s.Value }
func (s String) Equals(other Value) bool {
	o, ok := other.(String)
	return ok && o.Value == s.Value
}

// IsTruthy implements the language's truthiness projection (spec §4.3.1):
// nil and false are falsy; everything else, including 0 and "", is truthy.
func IsTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Boolean:
		return vv.Value
	default:
		return true
	}
}

// Concat implements the "+" operator's string-concatenation branch (spec
// §4.3.1): if either operand is a string, both sides are stringified and
// joined.
func Concat(left, right Value) Value {
	return String{Value: left.String() + right.String()}
}
