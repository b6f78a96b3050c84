// Package cli provides command-line argument parsing for the argparse binary.
//
// This package handles the binary's own flags. The argument vector that is
// parsed against a schema comes either after a "--" separator or from a
// single shell-style string given to --line.
//
// Supported flags include:
//   - --schema: Load the schema from a YAML or TOML file
//   - --line: Parse a shell-quoted command line instead of the words after --
//   - --json: Print results as JSON
//   - --no-color: Disable colored output
//   - --log-level: debug, info, warn or error (default warn)
//   - --log-format: text or json (default text)
//
// Example usage:
//
//	args, err := cli.Parse(os.Args)
//	if err != nil {
//	    if err.Error() == "show_help" {
//	        showHelp()
//	        os.Exit(0)
//	    }
//	    log.Fatal(err)
//	}
//
//	// args.Target[0] is the program name of the parsed vector
package cli
