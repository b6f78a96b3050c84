package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rickgorman/argparse/internal/cli"
	"github.com/rickgorman/argparse/internal/schemafile"
	"github.com/rickgorman/argparse/internal/ui"
	"github.com/rickgorman/argparse/pkg/argparse"
	"github.com/rickgorman/argparse/pkg/usage"
)

const version = "1.0.0"

// Exit codes
const (
	exitOK    = 0
	exitParse = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(osArgs []string, stdout, stderr io.Writer) int {
	ui.Out = stderr

	args, err := cli.Parse(osArgs)
	if err != nil {
		if err.Error() == "show_help" {
			showHelp(stdout)
			return exitOK
		}
		if err.Error() == "show_version" {
			fmt.Fprintf(stdout, "argparse %s\n", version)
			return exitOK
		}
		ui.Fail("Error parsing arguments: %v", err)
		ui.Info("Run %s for usage information", ui.Bold("argparse --help"))
		return exitUsage
	}

	if args.NoColor {
		ui.DisableColor()
	}
	logger := newLogger(args.LogLevel, args.LogFormat, stderr)

	parser, source, err := loadParser(args.SchemaPath)
	if err != nil {
		ui.Fail("Failed to load schema: %v", err)
		return exitParse
	}
	logger.Debug("Schema loaded.", "source", source, "arguments", parser.ArgumentCount(),
		"positional", parser.PositionalCount(), "optional", parser.OptionalCount())

	target := args.Target
	if len(target) == 0 {
		target = []string{parser.ExecName()}
	}

	if argparse.HelpRequested(target) {
		logger.Debug("Help requested.")
		if err := usage.Render(stdout, parser); err != nil {
			logger.Error("Failed to write usage.", "error", err)
			return exitParse
		}
		return exitOK
	}

	logger.Debug("Parsing.", "argv", target)
	res, err := parser.Parse(target)
	if err != nil {
		logger.Debug("Parse failed.", "error", err)
		ui.Fail("%v", err)
		ui.BlankLine()
		if err := usage.Render(stderr, parser); err != nil {
			logger.Error("Failed to write usage.", "error", err)
		}
		return exitParse
	}
	if parser.DroppedPositional() {
		ui.Warn("Positional arguments skipped: a drop_positional_check argument was given")
	}

	if args.JSON {
		if err := writeJSON(stdout, parser, res, source); err != nil {
			logger.Error("Failed to write JSON.", "error", err)
			return exitParse
		}
		return exitOK
	}

	n := 0
	for _, spec := range parser.Specs() {
		if v, ok := res.Value(spec.Name); ok {
			ui.Value(stdout, spec.Name, v)
			n++
		}
	}
	ui.Success("Parsed %d of %d arguments", n, parser.ArgumentCount())
	return exitOK
}

// loadParser builds the parser from a schema file, or the built-in example
// schema when path is empty. The second value identifies the schema.
func loadParser(path string) (*argparse.Parser, string, error) {
	if path == "" {
		p, err := builtinParser()
		return p, "builtin", err
	}

	schema, err := schemafile.Load(path)
	if err != nil {
		return nil, "", err
	}
	p, err := schema.Build()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return p, schema.Fingerprint, nil
}

func builtinParser() (*argparse.Parser, error) {
	p := argparse.New("ArgumentParser Example", "example")
	specs := []argparse.ArgumentSpec{
		{Name: "filepath", Help: "Path to input file", Type: argparse.String, Importance: argparse.Positional},
		{Name: "output", Help: "Path to output file", Type: argparse.String, Importance: argparse.Optional},
		{Name: "number-int", Help: "Some int number", Type: argparse.Int, Importance: argparse.Optional},
		{Name: "number-float", Help: "Some float number", Type: argparse.Float, Importance: argparse.Optional},
		{Name: "number-double", Help: "Some double number", Type: argparse.Double, Importance: argparse.Optional},
		{Name: "v", Help: "Verbose", Type: argparse.StoreTrue, Importance: argparse.Optional},
		{Name: "vv", Help: "Very verbose", Type: argparse.StoreTrue, Importance: argparse.Optional},
		{Name: "no-smth", Help: "Set some flag to false", Type: argparse.StoreFalse, Importance: argparse.Optional},
	}
	for _, s := range specs {
		if err := p.Register(s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

type jsonOutput struct {
	Exec   string                 `json:"exec"`
	Schema string                 `json:"schema"`
	Values map[string]interface{} `json:"values"`
}

func writeJSON(w io.Writer, p *argparse.Parser, res *argparse.Result, source string) error {
	out := jsonOutput{
		Exec:   p.ExecName(),
		Schema: source,
		Values: make(map[string]interface{}),
	}
	for _, spec := range p.Specs() {
		if v, ok := res.Value(spec.Name); ok {
			out.Values[spec.Name] = v
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func showHelp(w io.Writer) {
	fmt.Fprintf(w, `%s

Parse an argument vector against a declared schema and print the typed values.

%s
  argparse [options] [-- PROGRAM ARGS...]
  argparse [options] --line "PROGRAM ARGS..."

%s
  --schema FILE        Load the schema from a .yaml, .yml or .toml file
                       (default: built-in example schema)
  --line STRING        Parse a shell-quoted command line
  --json               Print results as JSON
  --no-color           Disable colored output
  --log-level LEVEL    debug, info, warn or error (default warn)
  --log-format FORMAT  text or json (default text)
  --version            Print version and exit
  -h, --help           Show this help

Pass --help or /? inside the parsed vector to see the schema's usage.
`, ui.Bold("argparse "+version), ui.Bold("Usage:"), ui.Bold("Options:"))
}
