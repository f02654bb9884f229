// Package value implements the primitive value model shared by the lexer,
// parser, and evaluator: a small closed set of tagged primitives plus the
// typed operation semantics that combine them.
package value

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Kind identifies which variant of Primitive is populated.
type Kind uint8

const (
	KindInteger Kind = iota
	KindFloat
	KindBoolean
	KindString
)

// String returns a human-readable form of the kind, used in type-error
// messages ("type error: + on Integer and String").
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	default:
		return "Unknown"
	}
}

// Primitive is the tagged union of the four value kinds a cell can hold.
// It intentionally avoids interface{} payloads so every field access is a
// direct struct read.
type Primitive struct {
	kind Kind
	i    int32
	f    float32
	b    bool
	s    string
}

// Integer constructs an Integer primitive.
func Integer(i int32) Primitive { return Primitive{kind: KindInteger, i: i} }

// Float constructs a Float primitive.
func Float(f float32) Primitive { return Primitive{kind: KindFloat, f: f} }

// Boolean constructs a Boolean primitive.
func Boolean(b bool) Primitive { return Primitive{kind: KindBoolean, b: b} }

// String constructs a String primitive. The text is normalized to NFC so
// that cells built from different but canonically-equivalent byte
// sequences compare and display identically.
func String(s string) Primitive { return Primitive{kind: KindString, s: norm.NFC.String(s)} }

// Kind reports which variant is populated.
func (p Primitive) Kind() Kind { return p.kind }

// IntValue returns the Integer payload; only meaningful when Kind() == KindInteger.
func (p Primitive) IntValue() int32 { return p.i }

// FloatValue returns the Float payload; only meaningful when Kind() == KindFloat.
func (p Primitive) FloatValue() float32 { return p.f }

// BoolValue returns the Boolean payload; only meaningful when Kind() == KindBoolean.
func (p Primitive) BoolValue() bool { return p.b }

// StringValue returns the String payload; only meaningful when Kind() == KindString.
func (p Primitive) StringValue() string { return p.s }

// Display renders the value the way the shell's grid and result pane show
// it: Integer as signed decimal, Float with a fractional point and no
// trailing noise, Boolean as true/false, String as its raw characters.
func (p Primitive) Display() string {
	switch p.kind {
	case KindInteger:
		return strconv.FormatInt(int64(p.i), 10)
	case KindFloat:
		return formatFloat(p.f)
	case KindBoolean:
		if p.b {
			return "true"
		}
		return "false"
	case KindString:
		return p.s
	default:
		return ""
	}
}

// formatFloat produces the shortest decimal string that reads back as the
// same float32 and always carries a fractional point.
func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	for _, c := range s {
		if c == '.' {
			return s
		}
	}
	return s + ".0"
}

// IsNumeric reports whether the value is an Integer or a Float.
func (p Primitive) IsNumeric() bool {
	return p.kind == KindInteger || p.kind == KindFloat
}

// AsFloat widens a numeric primitive to float64 for arithmetic that needs
// promotion. The second result is false for non-numeric primitives.
func (p Primitive) AsFloat() (float64, bool) {
	switch p.kind {
	case KindInteger:
		return float64(p.i), true
	case KindFloat:
		return float64(p.f), true
	default:
		return 0, false
	}
}

// TypeError formats the standard "type error: <op> on <left> and <right>"
// message used throughout §4.1 of the evaluation rules.
func TypeError(op string, left, right Kind) error {
	return fmt.Errorf("type error: %s on %s and %s", op, left, right)
}
