// Copyright (C) 2026 The jdom Authors. All Rights Reserved.

// Program jdump parses permissive JSON from a file or stdin and prints it
// back in compact form, reporting a windowed diagnostic on parse errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/tailscale/hujson"

	"github.com/gcjson/jdom"
)

var cli struct {
	Input   string `help:"Path to an input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Check   bool   `help:"Parse the input and report diagnostics without printing it back." short:"c"`
	HuJSON  bool   `help:"Standardize HuJSON (comments, trailing commas) before parsing." name:"hujson"`
	Radius  int    `help:"Bytes of context to show around a parse error." default:"20"`
	Color   bool   `help:"Colorize diagnostics." default:"true" negatable:""`
	Version bool   `help:"Show version information." short:"v"`
}

const version = "0.1.0"

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("jdump"),
		kong.Description("Parse permissive JSON and print it back in compact form."),
		kong.UsageOnError(),
	)

	if cli.Version {
		fmt.Printf("jdump version %s\n", version)
		return
	}

	text, err := readInput()
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(process(text, os.Stdout, os.Stderr))
}

// readInput returns the contents of the input file, or of stdin if no file
// was named.
func readInput() ([]byte, error) {
	if cli.Input != "" {
		data, err := os.ReadFile(cli.Input)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// process parses text and writes the compact rendering to out, with parse
// diagnostics going to errOut.
func process(text []byte, out, errOut io.Writer) error {
	if cli.HuJSON {
		std, err := hujson.Standardize(text)
		if err != nil {
			return fmt.Errorf("standardizing input: %w", err)
		}
		text = std
	}

	report := jdom.ConsoleReporter(errOut, cli.Radius)
	if cli.Color {
		report = jdom.ColorReporter(errOut, cli.Radius)
	}

	v := jdom.Parse(string(text), report)
	if v.HasError() {
		return errors.New("input is not valid JSON")
	}
	if !cli.Check {
		fmt.Fprintln(out, v.JSON())
	}
	return nil
}
