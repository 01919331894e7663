// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

package jdom_test

import (
	"strings"
	"testing"

	"github.com/gcjson/jdom"
)

func TestConsoleReporter(t *testing.T) {
	var buf strings.Builder
	jdom.Parse(`{"key":100,,}`, jdom.ConsoleReporter(&buf, 5))

	out := buf.String()
	if !strings.Contains(out, "parse error") {
		t.Errorf("Diagnostic %q: missing error prefix", out)
	}
	if !strings.Contains(out, jdom.UnexpectedComma.String()) {
		t.Errorf("Diagnostic %q: missing error message", out)
	}
	if !strings.Contains(out, "offset") {
		t.Errorf("Diagnostic %q: missing offset", out)
	}
	if !strings.Contains(out, "near") {
		t.Errorf("Diagnostic %q: missing snippet", out)
	}
}

func TestColorReporter(t *testing.T) {
	var buf strings.Builder
	jdom.Parse("[,]", jdom.ColorReporter(&buf, 5))

	out := buf.String()
	if !strings.HasPrefix(out, "\033[1;31m") {
		t.Errorf("Diagnostic %q: missing color prefix", out)
	}
	if !strings.Contains(out, jdom.MissingCommaItem.String()) {
		t.Errorf("Diagnostic %q: missing error message", out)
	}
}

func TestReporterSilentOnSuccess(t *testing.T) {
	var buf strings.Builder
	jdom.Parse("[1,2,3]", jdom.ConsoleReporter(&buf, 5))
	if buf.Len() != 0 {
		t.Errorf("Diagnostic on valid input: %q", buf.String())
	}
}
