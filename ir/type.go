package ir

import "fmt"

type Type int

const (
	NoneType Type = iota
	IntType
	FloatType
	BoolType
	StringType
	CharType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NoneType:   "None",
		IntType:    "Integer",
		FloatType:  "Float",
		BoolType:   "Boolean",
		StringType: "String",
		CharType:   "Character",
		ObjectType: "Object",
		ArrayType:  "Array",
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
		"None":      NoneType,
		"Integer":   IntType,
		"Float":     FloatType,
		"Boolean":   BoolType,
		"String":    StringType,
		"Character": CharType,
		"Object":    ObjectType,
		"Array":     ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NoneType,
		IntType,
		FloatType,
		BoolType,
		StringType,
		CharType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	return t != ObjectType && t != ArrayType
}

func (t Type) IsNumber() bool {
	return t == IntType || t == FloatType
}
