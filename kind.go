// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

package jdom

// Kind is the type of the payload held by a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // moved-from or zero value; holds no payload
	Object              // key-value attributes; keys are non-empty strings
	Array               // ordered sequence of values
	String              // text
	Integer             // 64-bit signed integer
	Float               // 64-bit floating point
	Bool                // true or false
	Null                // the null constant
)

var kindStr = [...]string{
	Invalid: "invalid",
	Object:  "object",
	Array:   "array",
	String:  "string",
	Integer: "integer",
	Float:   "float",
	Bool:    "boolean",
	Null:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// ErrKind is the type of the sticky error register carried by every Value.
// A failed operation records its error kind on the relevant value and
// returns; nothing is thrown. The register retains the most recent failure
// until the caller clears it.
type ErrKind byte

// Constants defining the valid ErrKind values.
const (
	ErrNone         ErrKind = iota // no error pending
	ErrNotSupported                // operation is invalid for this kind
	ErrNotFound                    // the requested key does not exist
	ErrEmptyKey                    // object insertion with an empty key
	ErrParse                       // the root of a tree built from malformed input
	ErrTypeMismatch                // extraction kind does not match the payload
)

var errStr = [...]string{
	ErrNone:         "no error",
	ErrNotSupported: "operation not supported",
	ErrNotFound:     "key not found",
	ErrEmptyKey:     "empty attribute key",
	ErrParse:        "parse error",
	ErrTypeMismatch: "type mismatch",
}

func (e ErrKind) String() string {
	if int(e) >= len(errStr) {
		return "unknown error"
	}
	return errStr[e]
}
