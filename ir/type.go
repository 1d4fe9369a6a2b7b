package ir

import "fmt"

// Type is the type of a scalar Value.
type Type int

const (
	StringType Type = iota
	IntType
	FloatType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		IntType:    "Int",
		FloatType:  "Float",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String": StringType,
		"Int":    IntType,
		"Float":  FloatType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		IntType,
		FloatType,
	}
}

func (t Type) IsNumber() bool {
	return t == IntType || t == FloatType
}
