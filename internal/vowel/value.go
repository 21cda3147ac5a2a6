package vowel

import (
	"strconv"
	"unicode/utf8"
)

// Value is a runtime value. The set of implementations is closed: Number,
// Text, Bool, Nil, *Function, *Overloads, *Class and *Instance.
type Value interface {
	String() string
	isValue()
}

// Number is the only numeric type of the language
type Number float64

// Text is a string value
type Text string

// Bool is a boolean value
type Bool bool

// Nil is the absence of a value
type Nil struct{}

func (Number) isValue() {}
func (Text) isValue()   {}
func (Bool) isValue()   {}
func (Nil) isValue()    {}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (t Text) String() string {
	return string(t)
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (Nil) String() string {
	return "nil"
}

// length is the number of characters in the text, used by the relational
// operators.
func (t Text) length() Number {
	return Number(utf8.RuneCountInString(string(t)))
}

// stringify returns the printed form of a value. A nil interface is printed
// the same way as Nil.
func stringify(v Value) string {
	if v == nil {
		return Nil{}.String()
	}
	return v.String()
}

func isTruthy(value Value) bool {
	switch v := value.(type) {
	case nil, Nil:
		return false
	case Bool:
		return bool(v)
	}
	return true
}

// isEqual reports whether the two values are equal. Nil only equals Nil, the
// other values compare by their own equality.
func isEqual(a, b Value) bool {
	_, aNil := a.(Nil)
	_, bNil := b.(Nil)
	if aNil || bNil || a == nil || b == nil {
		return (aNil || a == nil) && (bNil || b == nil)
	}
	return a == b
}
