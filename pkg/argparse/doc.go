// Package argparse parses a flat set of positional and optional command-line
// arguments declared up front.
//
// Arguments are registered with a name, help text, a type and an importance.
// Positional arguments are bound by slot in declaration order; optional
// arguments are bound by a leading "-name" or "--name" token, with the value
// either in the next token or inline after '='. Flags (StoreTrue, StoreFalse)
// take no value.
//
// Parsing runs in fixed stages:
//   - Sanitize: split --name=value tokens and strip single-quote wrapping
//   - Optional pass: bind registered optionals by name
//   - Positional pass: bind positionals by slot, unless a bound optional
//     carries DropPositionalCheck
//   - Convert: turn raw strings into typed values
//
// The first failure stops the parse and is returned as an *Error whose Kind
// can be tested with errors.Is against the Err* sentinels. Unknown optional
// names are ignored rather than rejected.
//
// Example usage:
//
//	p := argparse.New("Copy a file", "cp")
//	p.AddArgument("src", "Source file", argparse.String, argparse.Positional, argparse.None)
//	p.AddArgument("retries", "Retry count", argparse.Int, argparse.Optional, argparse.None)
//	p.AddArgument("verbose", "Verbose output", argparse.StoreTrue, argparse.Optional, argparse.None)
//
//	res, err := p.Parse(os.Args)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if n, ok := res.Int("retries"); ok {
//	    // --retries was given, possibly as 0
//	}
//
// The package never prints or logs; rendering help and errors is left to the
// caller (see package usage).
package argparse
