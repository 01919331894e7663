// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

// Package jdom implements a parser and document model for a permissive
// superset of JSON.
//
// # Parsing
//
// The Parse function converts a string of (relaxed) JSON text into a tree of
// Value nodes. Parse always returns a usable root value; if the input is
// malformed, the caller-supplied handler is invoked exactly once with a
// ParseContext describing the failure, and the root carries ErrParse:
//
//	v := jdom.Parse(text, jdom.ConsoleReporter(os.Stderr, 20))
//	if v.HasError() {
//	   log.Print("input was malformed, tree is best-effort")
//	}
//
// The grammar accepted here is deliberately relaxed: exponent notation is not
// supported, escape handling inside strings is minimal, and containers left
// unterminated at the end of input yield their partial contents without
// error. See the comments on the individual Parse helpers for the details.
//
// # Values
//
// A Value is a tagged union over the JSON kinds (Object, Array, String,
// Integer, Float, Bool, Null). Accessors and mutators are chainable, and a
// failure anywhere in a chain never aborts it; each failure is recorded in a
// sticky error register on the node it occurred on, to be inspected (and
// cleared) after the chain:
//
//	v.Get("config").Get("ports").MapArray(func(p *jdom.Value) {
//	   fmt.Println(p.Int64())
//	})
//	if v.Get("config").HasError() {
//	   log.Print("no ports configured")
//	}
//
// Serialization back to compact text is provided by the JSON method.
package jdom
