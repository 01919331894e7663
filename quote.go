// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

package jdom

import (
	"errors"
	"strings"

	"go4.org/mem"

	"github.com/gcjson/jdom/internal/escape"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
//
// The serializer does not call Quote: JSON emits string payloads verbatim.
// Quote is for callers who need to embed arbitrary text in a value that will
// later be serialized, or to sanitize text for diagnostics.
func Quote(src string) string { return `"` + string(escape.Quote(mem.S(src))) + `"` }

// Unquote decodes a JSON string value. Double quotation marks are removed
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
