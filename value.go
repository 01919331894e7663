// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

package jdom

import "fmt"

// A Value is a node of a JSON document tree: a tagged union over the JSON
// kinds, with exactly one payload active at a time.
//
// Every child of an Object or Array is owned exclusively by its container;
// a tree is a strict hierarchy rooted at the value returned by Parse or by a
// constructor. Transferring a payload out with Move leaves the source in the
// Invalid state, in which every operation fails with ErrNotSupported.
type Value struct {
	kind Kind
	obj  map[string]*Value
	arr  []*Value
	str  string
	inum int64
	fnum float64
	flag bool

	lastErr ErrKind
}

// NewObject constructs an empty object value.
func NewObject() *Value { return &Value{kind: Object, obj: make(map[string]*Value)} }

// NewArray constructs an empty array value.
func NewArray() *Value { return &Value{kind: Array} }

// New constructs a scalar or adopts an existing node. The argument must be a
// string, int, int64, float64, bool, nil, or *Value. It panics for any other
// type.
func New(v any) *Value {
	switch t := v.(type) {
	case *Value:
		return t
	case string:
		return &Value{kind: String, str: t}
	case int:
		return &Value{kind: Integer, inum: int64(t)}
	case int64:
		return &Value{kind: Integer, inum: t}
	case float64:
		return &Value{kind: Float, fnum: t}
	case bool:
		return &Value{kind: Bool, flag: t}
	case nil:
		return &Value{kind: Null}
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}

// Kind reports which payload v holds. It always succeeds.
func (v *Value) Kind() Kind { return v.kind }

// Len reports the number of attributes of an object or elements of an array.
// It is 1 for every scalar kind and 0 for an Invalid value.
func (v *Value) Len() int {
	switch v.kind {
	case Object:
		return len(v.obj)
	case Array:
		return len(v.arr)
	case Invalid:
		return 0
	}
	return 1
}

// Set inserts or replaces the attribute key on an object. The value is
// converted with New, so any type New accepts is allowed. Inserting an
// existing key replaces the previous child, which is discarded: last write
// wins. An empty key fails with ErrEmptyKey; a non-object receiver fails
// with ErrNotSupported. Either failure leaves the object unchanged.
func (v *Value) Set(key string, value any) *Value {
	switch {
	case v.kind != Object:
		v.lastErr = ErrNotSupported
	case key == "":
		v.lastErr = ErrEmptyKey
	default:
		v.obj[key] = New(value)
	}
	return v
}

// Push appends a value to an array. The value is converted with New. A
// non-array receiver fails with ErrNotSupported and is left unchanged.
func (v *Value) Push(value any) *Value {
	if v.kind != Array {
		v.lastErr = ErrNotSupported
	} else {
		v.arr = append(v.arr, New(value))
	}
	return v
}

// Get returns the child stored under key in an object. A missing key fails
// with ErrNotFound and a non-object receiver fails with ErrNotSupported; in
// both cases Get returns the receiver so the chain can continue.
func (v *Value) Get(key string) *Value {
	if v.kind != Object {
		v.lastErr = ErrNotSupported
		return v
	}
	if c, ok := v.obj[key]; ok {
		return c
	}
	v.lastErr = ErrNotFound
	return v
}

// At returns the array element at index i. A non-array receiver fails with
// ErrNotSupported and returns the receiver.
//
// At performs no bounds checking: the caller must ensure 0 <= i < Len().
// An out-of-range index panics.
func (v *Value) At(i int) *Value {
	if v.kind != Array {
		v.lastErr = ErrNotSupported
		return v
	}
	return v.arr[i]
}

// Text extracts the payload of a string value. Any other kind fails with
// ErrTypeMismatch and returns "".
func (v *Value) Text() string {
	if v.kind != String {
		v.lastErr = ErrTypeMismatch
		return ""
	}
	return v.str
}

// Int64 extracts the payload of an integer value. Any other kind fails with
// ErrTypeMismatch and returns -1.
func (v *Value) Int64() int64 {
	if v.kind != Integer {
		v.lastErr = ErrTypeMismatch
		return -1
	}
	return v.inum
}

// Float64 extracts the payload of a float value. Any other kind fails with
// ErrTypeMismatch and returns 0.
func (v *Value) Float64() float64 {
	if v.kind != Float {
		v.lastErr = ErrTypeMismatch
		return 0
	}
	return v.fnum
}

// Bool extracts the payload of a boolean value. Any other kind fails with
// ErrTypeMismatch and returns false.
func (v *Value) Bool() bool {
	if v.kind != Bool {
		v.lastErr = ErrTypeMismatch
		return false
	}
	return v.flag
}

// MapString invokes f with the string payload of v if extraction succeeds
// and no error is already pending; otherwise it is a no-op.
func (v *Value) MapString(f func(string)) *Value {
	s := v.Text()
	if v.lastErr == ErrNone {
		f(s)
	}
	return v
}

// MapInt invokes f with the integer payload of v if extraction succeeds and
// no error is already pending; otherwise it is a no-op.
func (v *Value) MapInt(f func(int64)) *Value {
	n := v.Int64()
	if v.lastErr == ErrNone {
		f(n)
	}
	return v
}

// MapBool invokes f with the boolean payload of v if extraction succeeds and
// no error is already pending; otherwise it is a no-op.
func (v *Value) MapBool(f func(bool)) *Value {
	b := v.Bool()
	if v.lastErr == ErrNone {
		f(b)
	}
	return v
}

// MapArray applies f to each element of an array in index order. A non-array
// receiver fails with ErrNotSupported; a pending error makes MapArray a
// no-op.
func (v *Value) MapArray(f func(*Value)) *Value {
	if v.kind != Array {
		v.lastErr = ErrNotSupported
		return v
	}
	if v.lastErr != ErrNone {
		return v
	}
	for _, elt := range v.arr {
		f(elt)
	}
	return v
}

// MapObject applies f to each (key, child) pair of an object. Iteration
// order is unspecified. A non-object receiver, or a pending error, fails
// with ErrNotSupported.
func (v *Value) MapObject(f func(string, *Value)) *Value {
	if v.kind != Object || v.lastErr != ErrNone {
		v.lastErr = ErrNotSupported
		return v
	}
	for k, c := range v.obj {
		f(k, c)
	}
	return v
}

// Err returns the pending error kind without clearing it.
func (v *Value) Err() ErrKind { return v.lastErr }

// HasError reports whether an error is pending on v.
func (v *Value) HasError() bool { return v.lastErr != ErrNone }

// ClearError discards any pending error.
func (v *Value) ClearError() { v.lastErr = ErrNone }

// HandleError invokes f with the pending error kind and clears it. If no
// error is pending, HandleError is a no-op.
func (v *Value) HandleError(f func(ErrKind)) {
	if v.lastErr != ErrNone {
		f(v.lastErr)
		v.lastErr = ErrNone
	}
}

// Move transfers the payload and pending error of v into a fresh node and
// returns it. The receiver is left in the Invalid state; any further
// operation on it fails with ErrNotSupported.
func (v *Value) Move() *Value {
	moved := *v
	*v = Value{}
	return &moved
}

func (v *Value) String() string {
	switch v.kind {
	case Object:
		return fmt.Sprintf("Object(len=%d)", len(v.obj))
	case Array:
		return fmt.Sprintf("Array(len=%d)", len(v.arr))
	case String:
		return fmt.Sprintf("String(%q)", v.str)
	case Integer:
		return fmt.Sprintf("Integer(%d)", v.inum)
	case Float:
		return fmt.Sprintf("Float(%v)", v.fnum)
	case Bool:
		return fmt.Sprintf("Bool(%v)", v.flag)
	case Null:
		return "Null"
	}
	return "Invalid"
}
