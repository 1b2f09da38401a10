// Package jsonval provides an order-preserving JSON value type.
//
// encoding/json's usual destination for an untyped JSON document,
// map[string]interface{}, loses the one thing the wire format in package
// codec depends on: the order object keys were written in. Go maps don't
// iterate in insertion order, and there's no ordered-map JSON value in the
// examples this module was grounded on, so Value and its Object are built
// directly on encoding/json's token stream (see parse.go) rather than on
// json.Unmarshal into an interface{}.
package jsonval

import "fmt"

// Kind discriminates the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// NumberKind discriminates the three numeric shapes a Value can carry.
type NumberKind int

const (
	NumberI64 NumberKind = iota
	NumberU64
	NumberF64
)

// Number is a JSON number carrying one of three native shapes. Only one of
// I64/U64/F64 is meaningful, selected by Kind.
type Number struct {
	Kind NumberKind
	I64  int64
	U64  uint64
	F64  float64
}

func (n Number) String() string {
	switch n.Kind {
	case NumberI64:
		return fmt.Sprintf("%d", n.I64)
	case NumberU64:
		return fmt.Sprintf("%d", n.U64)
	default:
		return formatFloat(n.F64)
	}
}

// Value is a tagged union over the JSON data model: Null, Bool, Number,
// String, Array of Value, or Object (an ordered string-keyed map).
type Value struct {
	kind Kind
	b    bool
	num  Number
	str  string
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int64 wraps a signed integer.
func Int64(v int64) Value { return Value{kind: KindNumber, num: Number{Kind: NumberI64, I64: v}} }

// Uint64 wraps an unsigned integer.
func Uint64(v uint64) Value { return Value{kind: KindNumber, num: Number{Kind: NumberU64, U64: v}} }

// Float64 wraps an IEEE-754 double.
func Float64(v float64) Value { return Value{kind: KindNumber, num: Number{Kind: NumberF64, F64: v}} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a slice of values.
func Array(items []Value) Value { return Value{kind: KindArray, arr: items} }

// Obj wraps an *Object.
func Obj(o *Object) Value { return Value{kind: KindObject, obj: o} }

func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsNull() bool      { return v.kind == KindNull }
func (v Value) Bool() bool        { return v.b }
func (v Value) Number() Number    { return v.num }
func (v Value) Str() string       { return v.str }
func (v Value) Array() []Value    { return v.arr }
func (v Value) Object() *Object   { return v.obj }

// Object is a string-keyed map that iterates in insertion order: the order
// the encoder walks it in is the order the wire carries, and the decoder
// must reconstruct that same order (spec requirement on Object).
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty, order-tracking object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Set inserts or updates key. A new key is appended to the iteration order;
// an existing key keeps its original position and has its value replaced.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns the object's keys in insertion order. Callers must not
// mutate the returned slice.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of entries in the object.
func (o *Object) Len() int { return len(o.keys) }

// Range visits each (key, value) pair in insertion order.
func (o *Object) Range(fn func(key string, v Value)) {
	for _, k := range o.keys {
		fn(k, o.vals[k])
	}
}
