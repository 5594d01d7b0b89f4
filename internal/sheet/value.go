package sheet

import (
	"strconv"
)

// Kind identifies the type of a cell value
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	}
	return "null"
}

// Value is a typed cell value. The zero Value is null.
type Value struct {
	kind Kind
	num  float64
	text string
	b    bool
}

// Null returns the absent value
func Null() Value { return Value{} }

// Number returns a numeric value
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Text returns a text value. An empty string is still text, not null.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool returns a boolean value
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Equal reports whether both values have the same kind and the same value.
// A number never equals text, even when the text spells the same number.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindText:
		return v.text == o.text
	case KindBool:
		return v.b == o.b
	}
	return true
}

// String renders the plain textual form of the value; null renders as "".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	}
	return ""
}
