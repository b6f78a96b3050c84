// Package schemafile loads argument schemas from YAML or TOML files.
//
// A schema file declares the parser description, display name, author and an
// ordered list of arguments. Argument order matters: positional slots are
// assigned in the order positional arguments appear.
//
// YAML example:
//
//	description: Convert a file
//	app: convert
//	arguments:
//	  - name: input
//	    help: Input file
//	  - name: level
//	    type: int
//	    importance: optional
//	  - name: version
//	    type: store_true
//	    importance: optional
//	    behavior: drop_positional_check
//
// The same schema in TOML:
//
//	description = "Convert a file"
//	app = "convert"
//
//	[[arguments]]
//	name = "input"
//	help = "Input file"
//
//	[[arguments]]
//	name = "level"
//	type = "int"
//	importance = "optional"
//
// Missing fields default to type "string", importance "positional" and
// behavior "none". Unknown keys are rejected.
//
// Example usage:
//
//	schema, err := schemafile.Load("convert.yaml")
//	if err != nil {
//	    return err
//	}
//	parser, err := schema.Build()
package schemafile
