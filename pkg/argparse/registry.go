package argparse

// registry holds declared arguments in registration order.
type registry struct {
	specs      []ArgumentSpec
	index      map[string]int
	positional int
	optional   int
}

func newRegistry() *registry {
	return &registry{index: make(map[string]int)}
}

func (r *registry) register(spec ArgumentSpec) error {
	if spec.Name == "" {
		return newError(KindInvalidSpec, "", "argument name can't be empty")
	}
	if !spec.Type.valid() {
		return newError(KindInvalidSpec, spec.Name, "argument '%s' has unknown type %s", spec.Name, spec.Type)
	}
	if spec.Behavior != None && spec.Behavior != DropPositionalCheck {
		return newError(KindInvalidSpec, spec.Name, "argument '%s' has unknown behavior %s", spec.Name, spec.Behavior)
	}
	if _, ok := r.index[spec.Name]; ok {
		return newError(KindDuplicateArgument, spec.Name, "argument '%s' is already registered", spec.Name)
	}

	switch spec.Importance {
	case Positional:
		r.positional++
		spec.Position = r.positional
	case Optional:
		r.optional++
		spec.Position = -1
	default:
		return newError(KindInvalidSpec, spec.Name, "argument '%s' has unknown importance %s", spec.Name, spec.Importance)
	}

	r.index[spec.Name] = len(r.specs)
	r.specs = append(r.specs, spec)
	return nil
}

func (r *registry) lookup(name string) (ArgumentSpec, bool) {
	i, ok := r.index[name]
	if !ok {
		return ArgumentSpec{}, false
	}
	return r.specs[i], true
}
