// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

package jdom

import (
	"fmt"
	"io"
)

// ConsoleReporter returns an ErrorHandler that writes a one-line diagnostic
// to w, quoting radius bytes of input around the failure.
func ConsoleReporter(w io.Writer, radius int) ErrorHandler {
	return func(c *ParseContext) {
		fmt.Fprintf(w, "parse error: %s\n  near %s\n", c, Quote(c.Snippet(radius)))
	}
}

// ColorReporter is ConsoleReporter with the diagnostic wrapped in red. It
// only renders usefully on terminals that support ANSI escape sequences.
func ColorReporter(w io.Writer, radius int) ErrorHandler {
	return func(c *ParseContext) {
		fmt.Fprintf(w, "\033[1;31mparse error: %s\n  near %s\033[0m\n", c, Quote(c.Snippet(radius)))
	}
}
