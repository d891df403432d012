package json

import (
	"strconv"
	"strings"
)

// Value is a JSON value: Object, Array, String, Number, Bool or Null.
type Value interface {
	jsonValue()
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Object keeps its members in source order. Duplicate keys are kept.
type Object struct {
	Members []Member
}

// Get returns the value of the last member named key.
func (o Object) Get(key string) (Value, bool) {
	for i := len(o.Members) - 1; i >= 0; i-- {
		if o.Members[i].Key == key {
			return o.Members[i].Value, true
		}
	}
	return nil, false
}

type Array struct {
	Values []Value
}

type String string

type Bool bool

type Null struct{}

// Sign of a number or exponent.
type Sign byte

const (
	Positive Sign = iota
	Negative
)

func (s Sign) prefix() string {
	if s == Negative {
		return "-"
	}
	return ""
}

// Exp is the exponent part of a number.
type Exp struct {
	Sign   Sign
	Digits string
}

// Number keeps the textual parts of a JSON number so no precision is lost.
type Number struct {
	Sign Sign
	Int  string
	Frac string // empty when there is no fraction
	Exp  *Exp   // nil when there is no exponent
}

// Text returns the number in JSON syntax.
func (n Number) Text() string {
	var b strings.Builder
	b.WriteString(n.Sign.prefix())
	b.WriteString(n.Int)
	if n.Frac != "" {
		b.WriteByte('.')
		b.WriteString(n.Frac)
	}
	if n.Exp != nil {
		b.WriteByte('e')
		b.WriteString(n.Exp.Sign.prefix())
		b.WriteString(n.Exp.Digits)
	}
	return b.String()
}

func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(n.Text(), 64)
}

func (Object) jsonValue() {}
func (Array) jsonValue()  {}
func (String) jsonValue() {}
func (Number) jsonValue() {}
func (Bool) jsonValue()   {}
func (Null) jsonValue()   {}
