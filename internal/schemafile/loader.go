// Package schemafile loads argument schemas declared in YAML or TOML files.
package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rickgorman/argparse/pkg/argparse"
	"github.com/rickgorman/argparse/pkg/hash"
	"gopkg.in/yaml.v3"
)

// Schema is a loaded schema file.
type Schema struct {
	Path        string     `yaml:"-" toml:"-"`
	Fingerprint string     `yaml:"-" toml:"-"`
	Description string     `yaml:"description" toml:"description"`
	App         string     `yaml:"app" toml:"app"`
	Author      string     `yaml:"author" toml:"author"`
	Arguments   []Argument `yaml:"arguments" toml:"arguments"`
}

// Argument is one declared argument. Enum fields use the names accepted by
// argparse.ParseArgType, ParseImportance and ParseBehavior.
type Argument struct {
	Name       string `yaml:"name" toml:"name"`
	Help       string `yaml:"help" toml:"help"`
	Type       string `yaml:"type" toml:"type"`
	Importance string `yaml:"importance" toml:"importance"`
	Behavior   string `yaml:"behavior" toml:"behavior"`
}

// Load reads and decodes the schema at path. The decoder is picked by file
// extension.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	schema, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	schema.Path = path
	return schema, nil
}

// Decode decodes schema data in the format named by ext (".yaml", ".yml" or
// ".toml").
func Decode(data []byte, ext string) (*Schema, error) {
	schema := &Schema{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to an empty schema, as with TOML.
		if err := dec.Decode(schema); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), schema)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported schema format %q", ext)
	}

	schema.Fingerprint = hash.Fingerprint(data)
	return schema, nil
}

// Build creates a parser and registers every argument in file order.
func (s *Schema) Build() (*argparse.Parser, error) {
	p := argparse.New(s.Description, s.App, argparse.WithAuthor(s.Author))
	for i, a := range s.Arguments {
		spec, err := a.spec()
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, a.Name, err)
		}
		if err := p.Register(spec); err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, a.Name, err)
		}
	}
	return p, nil
}

func (a Argument) spec() (argparse.ArgumentSpec, error) {
	spec := argparse.ArgumentSpec{
		Name: a.Name,
		Help: a.Help,
	}

	var err error
	if a.Type != "" {
		if spec.Type, err = argparse.ParseArgType(a.Type); err != nil {
			return spec, err
		}
	}
	if a.Importance != "" {
		if spec.Importance, err = argparse.ParseImportance(a.Importance); err != nil {
			return spec, err
		}
	}
	if spec.Behavior, err = argparse.ParseBehavior(a.Behavior); err != nil {
		return spec, err
	}
	return spec, nil
}
