// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

package jdom

import "fmt"

// A ParseContext describes a parse failure: the error kind, the absolute
// cursor position at which it was detected, and a window onto the input
// around that position. It is delivered to the ErrorHandler passed to Parse.
type ParseContext struct {
	in  string
	pos int
	err ParseErrKind
}

// Err returns the kind of the failure.
func (c *ParseContext) Err() ParseErrKind { return c.err }

// Pos returns the absolute byte offset at which the failure was detected.
func (c *ParseContext) Pos() int { return c.pos }

// Snippet returns the input text within radius bytes of the failure
// position, clamped to the bounds of the input. A negative radius is
// treated as zero.
func (c *ParseContext) Snippet(radius int) string {
	radius = max(radius, 0)
	pos := min(c.pos, len(c.in))
	start := max(pos-radius, 0)
	end := min(pos+radius, len(c.in))
	return c.in[start:end]
}

func (c *ParseContext) String() string {
	return fmt.Sprintf("%s (offset %d)", c.err, c.pos)
}
