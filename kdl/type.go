package kdl

import "fmt"

type ValueType int

const (
	NullType ValueType = iota
	NumberType
	StringType
	BoolType
)

func (t ValueType) String() string {
	s, ok := map[ValueType]string{
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Bool",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ValueType) UnmarshalText(d []byte) error {
	tt, ok := map[string]ValueType{
		"Null":   NullType,
		"Bool":   BoolType,
		"Number": NumberType,
		"String": StringType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func ValueTypes() []ValueType {
	return []ValueType{
		NullType,
		NumberType,
		StringType,
		BoolType,
	}
}
