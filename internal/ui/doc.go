// Package ui provides terminal output formatting for the argparse binary.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Info, success, failure, and warning messages
//   - "name: value" rows for parsed arguments
//
// Status messages go to ui.Out (defaults to os.Stderr) to allow
// testing and output redirection. Parsed values are written to the
// writer passed to Value, normally stdout.
//
// Example usage:
//
//	if args.NoColor {
//	    ui.DisableColor()
//	}
//	ui.Info("Loaded schema %s", path)
//	ui.Value(os.Stdout, "count", 42)
//	ui.Success("Parsed 3 arguments")
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
