// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

package jdom_test

import (
	"testing"

	"github.com/gcjson/jdom"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"hallo", `"hallo"`},
		{"a b\tc", `"a b\tc"`},
		{"line1\nline2", `"line1\nline2"`},
		{`back\slash`, `"back\\slash"`},
		{`say "hi"`, `"say \"hi\""`},
		{"\x01", `"\u0001"`},
		{"møøse", `"møøse"`},
	}
	for _, test := range tests {
		if got := jdom.Quote(test.input); got != test.want {
			t.Errorf("Quote %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"hallo"`, "hallo"},
		{`"a\tb\nc"`, "a\tb\nc"},
		{`"an \"inner\" string"`, `an "inner" string`},
		{`"Aß"`, "Aß"},
		{`"\q"`, "�"}, // invalid escapes decode to the replacement rune
	}
	for _, test := range tests {
		got, err := jdom.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote %#q: unexpected error: %v", test.input, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Unquote %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []string{
		``, `"`, `x`, `"unterminated`, `unopened"`, // missing quotations
		`"\"`,    // the escape swallows the closing quote
		`"\u00"`, // incomplete Unicode escape (the closing quote is consumed by it)
	}
	for _, input := range tests {
		if got, err := jdom.Unquote(input); err == nil {
			t.Errorf("Unquote %#q: got %#q, want error", input, got)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	inputs := []string{"", "plain", "tabs\tand\nnewlines", `\" tricky \\`, "ünïcödé"}
	for _, input := range inputs {
		dec, err := jdom.Unquote(jdom.Quote(input))
		if err != nil {
			t.Errorf("Round trip %#q: unexpected error: %v", input, err)
		} else if string(dec) != input {
			t.Errorf("Round trip %#q: got %#q", input, dec)
		}
	}
}
