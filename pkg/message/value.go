package message

import "fmt"

type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueNumeric
	ValueBoolean
	ValueString
)

// Value holds at most one of a numeric, boolean or string value. The zero Value is unset.
type Value struct {
	kind    ValueKind
	numeric float64
	boolean bool
	str     string
}

func NumericValue(v float64) Value { return Value{kind: ValueNumeric, numeric: v} }
func BooleanValue(v bool) Value    { return Value{kind: ValueBoolean, boolean: v} }
func StringValue(v string) Value   { return Value{kind: ValueString, str: v} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsSet() bool     { return v.kind != ValueNone }

func (v Value) AsNumeric() (float64, bool) { return v.numeric, v.kind == ValueNumeric }
func (v Value) AsBoolean() (bool, bool)    { return v.boolean, v.kind == ValueBoolean }
func (v Value) AsString() (string, bool)   { return v.str, v.kind == ValueString }

// Interface returns the held value as float64, bool or string, or nil when unset.
func (v Value) Interface() interface{} {
	switch v.kind {
	case ValueNumeric:
		return v.numeric
	case ValueBoolean:
		return v.boolean
	case ValueString:
		return v.str
	default:
		return nil
	}
}

// valueOf converts a generically decoded scalar into a Value.
func valueOf(in interface{}) (Value, error) {
	switch v := in.(type) {
	case nil:
		return Value{}, nil
	case float64:
		return NumericValue(v), nil
	case float32:
		return NumericValue(float64(v)), nil
	case uint64:
		return NumericValue(float64(v)), nil
	case int64:
		return NumericValue(float64(v)), nil
	case bool:
		return BooleanValue(v), nil
	case string:
		return StringValue(v), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", in)
	}
}
