// Package cli handles command-line argument parsing for the argparse binary.
package cli

import (
	"errors"
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Args represents parsed command-line arguments.
type Args struct {
	// Schema source; empty means the built-in example schema
	SchemaPath string

	// Output flags
	JSON    bool
	NoColor bool

	// Logging flags
	LogLevel  string
	LogFormat string

	// Argument vector to parse against the schema, program name first
	Target []string
}

// Parse parses command-line arguments into an Args struct.
func Parse(osArgs []string) (*Args, error) {
	args := &Args{
		LogLevel:  "warn",
		LogFormat: "text",
		Target:    []string{},
	}

	lineSet := false
	i := 1 // Skip program name
	for i < len(osArgs) {
		arg := osArgs[i]

		switch arg {
		case "-h", "--help":
			return nil, errors.New("show_help")

		case "--version":
			return nil, errors.New("show_version")

		case "--schema":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--schema requires a path argument")
			}
			args.SchemaPath = osArgs[i+1]
			i += 2

		case "--line":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--line requires a command line argument")
			}
			words, err := shellquote.Split(osArgs[i+1])
			if err != nil {
				return nil, fmt.Errorf("--line: %w", err)
			}
			args.Target = words
			lineSet = true
			i += 2

		case "--json":
			args.JSON = true
			i++

		case "--no-color":
			args.NoColor = true
			i++

		case "--log-level":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--log-level requires an argument")
			}
			switch osArgs[i+1] {
			case "debug", "info", "warn", "error":
			default:
				return nil, fmt.Errorf("--log-level: unknown level %q", osArgs[i+1])
			}
			args.LogLevel = osArgs[i+1]
			i += 2

		case "--log-format":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--log-format requires an argument")
			}
			if osArgs[i+1] != "text" && osArgs[i+1] != "json" {
				return nil, fmt.Errorf("--log-format: unknown format %q", osArgs[i+1])
			}
			args.LogFormat = osArgs[i+1]
			i += 2

		case "--":
			if lineSet {
				return nil, fmt.Errorf("--line and -- are mutually exclusive")
			}
			args.Target = append(args.Target, osArgs[i+1:]...)
			return args, nil

		default:
			return nil, fmt.Errorf("unknown flag: %s", arg)
		}
	}

	return args, nil
}
