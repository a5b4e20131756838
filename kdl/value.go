package kdl

import (
	"strconv"
)

// Value is a scalar KDL value, used both as a node argument and as a
// property value.
//
// Like a node, a value works as a tagged union: the payload lives in the
// field selected by Type. Numbers carry their literal text in Number and,
// when representable, a parsed Int64 or Float64.
type Value struct {
	Type ValueType
	// Tag is the optional type annotation, eg "u8" for (u8)10.
	Tag string

	String  string
	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

func FromInt(v int64) Value {
	return Value{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(f float64) Value {
	return Value{
		Type:    NumberType,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
		Float64: &f,
	}
}

// FromNumber creates a number value from its literal text, keeping the
// text verbatim and parsing it as an int64 or float64 where possible.
func FromNumber(lit string) Value {
	v := Value{Type: NumberType, Number: lit}
	if i, err := strconv.ParseInt(lit, 0, 64); err == nil {
		v.Int64 = &i
		return v
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		v.Float64 = &f
	}
	return v
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

func Null() Value {
	return Value{Type: NullType}
}

func (v Value) WithTag(tag string) Value {
	v.Tag = tag
	return v
}

// Clone returns a copy of v which shares no pointers with v.
func (v Value) Clone() Value {
	res := v
	if v.Int64 != nil {
		i := *v.Int64
		res.Int64 = &i
	}
	if v.Float64 != nil {
		f := *v.Float64
		res.Float64 = &f
	}
	return res
}

// Any returns the Go value carried by v: string, bool, int64, float64,
// the literal text for unparsed numbers, or nil.
func (v Value) Any() any {
	switch v.Type {
	case StringType:
		return v.String
	case BoolType:
		return v.Bool
	case NumberType:
		if v.Int64 != nil {
			return *v.Int64
		}
		if v.Float64 != nil {
			return *v.Float64
		}
		return v.Number
	}
	return nil
}

// Text returns the KDL literal form of v, without its tag.
func (v Value) Text() string {
	switch v.Type {
	case StringType:
		return strconv.Quote(v.String)
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case NumberType:
		if v.Number != "" {
			return v.Number
		}
		if v.Int64 != nil {
			return strconv.FormatInt(*v.Int64, 10)
		}
		if v.Float64 != nil {
			return strconv.FormatFloat(*v.Float64, 'g', -1, 64)
		}
		return "0"
	}
	return "null"
}

// Property is a key and value of a node property.  Nodes store their
// properties as a map; a Property only exists while a caller inspects one
// entry of it.
type Property struct {
	Key   string
	Value Value
}

func NewProperty(key string, v Value) Property {
	return Property{Key: key, Value: v}
}
