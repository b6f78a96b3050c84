package argparse

import "strings"

const (
	storeTrueValue  = "<store_true>"
	storeFalseValue = "<store_false>"
)

type binding struct {
	bound bool
	raw   string
}

// bindings is the per-parse state. Entries line up with registry.specs.
type bindings struct {
	reg            *registry
	values         []binding
	dropPositional bool
}

func newBindings(reg *registry) *bindings {
	return &bindings{
		reg:    reg,
		values: make([]binding, len(reg.specs)),
	}
}

func (b *bindings) set(name, raw string) {
	b.values[b.reg.index[name]] = binding{bound: true, raw: raw}
}

// bindOptional walks the canonical tokens and binds every registered optional
// it finds. Unknown names are skipped.
func (b *bindings) bindOptional(tokens []string) error {
	if b.reg.optional == 0 {
		return nil
	}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !strings.HasPrefix(tok, "-") {
			continue
		}
		name := strings.TrimPrefix(strings.TrimPrefix(tok, "-"), "-")
		spec, ok := b.reg.lookup(name)
		if !ok {
			continue
		}
		if spec.Behavior == DropPositionalCheck {
			b.dropPositional = true
		}
		switch spec.Type {
		case StoreTrue:
			b.set(name, storeTrueValue)
			continue
		case StoreFalse:
			b.set(name, storeFalseValue)
			continue
		}
		if i+1 >= len(tokens) {
			return newError(KindOptionalNoValue, name, "optional argument '%s' provided with no value", name)
		}
		i++
		b.set(name, tokens[i])
	}
	return nil
}

// bindPositional binds positional arguments by slot.
func (b *bindings) bindPositional(tokens []string) error {
	if b.dropPositional || b.reg.positional == 0 {
		return nil
	}
	if b.reg.positional > len(tokens) {
		return newError(KindPositional, "", "not enough positional arguments provided: want %d, got %d tokens",
			b.reg.positional, len(tokens))
	}
	for _, spec := range b.reg.specs {
		if spec.Importance != Positional {
			continue
		}
		idx := spec.Position - 1
		if idx < 0 || idx >= len(tokens) {
			continue
		}
		if strings.HasPrefix(tokens[idx], "-") {
			return newError(KindPositional, spec.Name,
				"positional argument '%s' can't start with '-' character: %q", spec.Name, tokens[idx])
		}
		b.set(spec.Name, tokens[idx])
	}
	return nil
}
