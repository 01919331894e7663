// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

package jdom

import (
	"strconv"
	"strings"
)

// JSON renders v as compact JSON-like text with no insignificant whitespace.
//
// String contents are emitted verbatim between quotation marks; no escaping
// is re-applied, so callers must not embed unescaped control characters or
// quotation marks in string payloads (see Quote). Array elements appear in
// index order. Object attributes appear in whatever order the underlying
// storage yields, which is not guaranteed to match insertion or parse order.
func (v *Value) JSON() string {
	switch v.kind {
	case Object:
		if len(v.obj) == 0 {
			return "{}"
		}
		var sb strings.Builder
		sb.WriteByte('{')
		first := true
		for key, c := range v.obj {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteByte('"')
			sb.WriteString(key)
			sb.WriteString(`":`)
			sb.WriteString(c.JSON())
		}
		sb.WriteByte('}')
		return sb.String()

	case Array:
		if len(v.arr) == 0 {
			return "[]"
		}
		var sb strings.Builder
		sb.WriteByte('[')
		sb.WriteString(v.arr[0].JSON())
		for _, elt := range v.arr[1:] {
			sb.WriteByte(',')
			sb.WriteString(elt.JSON())
		}
		sb.WriteByte(']')
		return sb.String()

	case String:
		return `"` + v.str + `"`
	case Integer:
		return strconv.FormatInt(v.inum, 10)
	case Float:
		return strconv.FormatFloat(v.fnum, 'f', -1, 64)
	case Bool:
		if v.flag {
			return "true"
		}
		return "false"
	case Null:
		return "null"
	}
	return ""
}
