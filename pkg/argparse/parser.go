package argparse

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Parser holds a declared argument schema and the result of the last parse.
// Register every argument before calling Parse. A Parser is not safe for
// concurrent use.
type Parser struct {
	description string
	appName     string
	author      string
	separators  string
	execName    string

	reg            *registry
	last           *Result
	dropPositional bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithAuthor sets the author shown in usage output.
func WithAuthor(author string) Option {
	return func(p *Parser) {
		p.author = author
	}
}

// WithPathSeparators sets the bytes treated as directory separators when the
// display name is derived from argv[0].
func WithPathSeparators(seps string) Option {
	return func(p *Parser) {
		p.separators = seps
	}
}

// New creates a parser. appName is the display name until a parse derives
// one from argv[0].
func New(description, appName string, opts ...Option) *Parser {
	p := &Parser{
		description: description,
		appName:     appName,
		separators:  DefaultPathSeparators,
		reg:         newRegistry(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register declares an argument. Position is assigned by the parser.
func (p *Parser) Register(spec ArgumentSpec) error {
	return p.reg.register(spec)
}

// AddArgument is a shorthand for Register.
func (p *Parser) AddArgument(name, help string, typ ArgType, imp Importance, b Behavior) error {
	return p.Register(ArgumentSpec{
		Name:       name,
		Help:       help,
		Type:       typ,
		Importance: imp,
		Behavior:   b,
	})
}

// Parse runs the full pipeline over argv, where argv[0] is the program path.
// The first error aborts the parse. Each call starts from a clean binding
// state, so a parser can be reused for several argument vectors.
func (p *Parser) Parse(argv []string) (*Result, error) {
	p.last = nil
	p.dropPositional = false

	if p.separators == "" {
		return nil, newError(KindInvalidOSSep, "", "no path separators configured")
	}
	if len(argv) == 0 {
		return nil, newError(KindRawVectorOutOfRange, "", "argument vector is empty, expected the program name at index 0")
	}
	p.execName = ExecName(argv[0], p.separators)

	tokens := Sanitize(argv[1:], 2*p.reg.optional+p.reg.positional)

	b := newBindings(p.reg)
	if err := b.bindOptional(tokens); err != nil {
		return nil, err
	}
	if err := b.bindPositional(tokens); err != nil {
		return nil, err
	}
	res, err := b.convert()
	if err != nil {
		return nil, err
	}

	p.last = res
	p.dropPositional = b.dropPositional
	return res, nil
}

// ParseLine splits a shell-style command line into words and parses them.
// The first word is the program name.
func (p *Parser) ParseLine(line string) (*Result, error) {
	argv, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("split command line: %w", err)
	}
	return p.Parse(argv)
}

// Result returns the result of the last successful parse, or nil.
func (p *Parser) Result() *Result {
	return p.last
}

// Get looks name up in the last successful parse. See Result.Get.
func (p *Parser) Get(name string, target interface{}) bool {
	if p.last == nil {
		return false
	}
	return p.last.Get(name, target)
}

// GetString returns a String argument from the last parse.
func (p *Parser) GetString(name string) (string, bool) {
	var v string
	ok := p.Get(name, &v)
	return v, ok
}

// GetInt returns an Int argument from the last parse.
func (p *Parser) GetInt(name string) (int, bool) {
	var v int
	ok := p.Get(name, &v)
	return v, ok
}

// GetFloat returns a Float argument from the last parse.
func (p *Parser) GetFloat(name string) (float32, bool) {
	var v float32
	ok := p.Get(name, &v)
	return v, ok
}

// GetDouble returns a Double argument from the last parse.
func (p *Parser) GetDouble(name string) (float64, bool) {
	var v float64
	ok := p.Get(name, &v)
	return v, ok
}

// GetBool returns a flag from the last parse.
func (p *Parser) GetBool(name string) (bool, bool) {
	var v bool
	ok := p.Get(name, &v)
	return v, ok
}

// IsOptionalToken reports whether token looks like an optional argument.
func (p *Parser) IsOptionalToken(token string) bool {
	return IsOptionalToken(token)
}

// DroppedPositional reports whether the last successful parse skipped
// positional binding because of a DropPositionalCheck argument.
func (p *Parser) DroppedPositional() bool {
	return p.dropPositional
}

// ExecName returns the display name of the program.
func (p *Parser) ExecName() string {
	if p.execName != "" {
		return p.execName
	}
	return p.appName
}

func (p *Parser) Description() string { return p.description }

func (p *Parser) Author() string { return p.author }

// Specs returns the declared arguments in registration order.
func (p *Parser) Specs() []ArgumentSpec {
	out := make([]ArgumentSpec, len(p.reg.specs))
	copy(out, p.reg.specs)
	return out
}

// Lookup returns the declared argument called name.
func (p *Parser) Lookup(name string) (ArgumentSpec, bool) {
	return p.reg.lookup(name)
}

func (p *Parser) ArgumentCount() int   { return len(p.reg.specs) }
func (p *Parser) PositionalCount() int { return p.reg.positional }
func (p *Parser) OptionalCount() int   { return p.reg.optional }

// HelpRequested reports whether argv asks for help with --help or /?.
func HelpRequested(argv []string) bool {
	for _, arg := range argv {
		if arg == "--help" || arg == "/?" {
			return true
		}
	}
	return false
}
