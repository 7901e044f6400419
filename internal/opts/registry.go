package opts

// Registry is the set of flags a subcommand accepts, indexed by every
// alias of every spec.
//
// A Registry is built with chained Allow calls and treated as read-only
// afterwards; it is then safe to share between goroutines.
type Registry struct {
	name  string
	specs []*Spec
	index map[string]*Spec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Spec)}
}

// Named sets a display name (usually the subcommand) and returns r.
func (r *Registry) Named(name string) *Registry {
	r.name = name
	return r
}

// Name returns the display name set with Named.
func (r *Registry) Name() string {
	return r.name
}

// Allow registers a flag under label and returns r for chaining.
// Registering an existing label replaces the prior spec and all of its
// aliases; the last registration wins.
func (r *Registry) Allow(label string, options ...SpecOption) *Registry {
	if label == "" {
		return r
	}
	spec := &Spec{Label: label}
	for _, o := range options {
		o(spec)
	}

	if old, ok := r.index[label]; ok && old.Label == label {
		r.remove(old)
	}

	r.specs = append(r.specs, spec)
	for _, alias := range spec.Aliases() {
		r.index[alias] = spec
	}
	return r
}

func (r *Registry) remove(old *Spec) {
	for _, alias := range old.Aliases() {
		if r.index[alias] == old {
			delete(r.index, alias)
		}
	}
	for i, s := range r.specs {
		if s == old {
			r.specs = append(r.specs[:i], r.specs[i+1:]...)
			break
		}
	}
}

// Lookup resolves a label, short form or long form to its spec.
func (r *Registry) Lookup(alias string) (*Spec, bool) {
	if r == nil {
		return nil, false
	}
	s, ok := r.index[alias]
	return s, ok
}

// Specs returns the registered specs in registration order.
func (r *Registry) Specs() []*Spec {
	if r == nil {
		return nil
	}
	out := make([]*Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Render produces the tokens for one requested option.
// Unknown labels and missing required values produce nil.
func (r *Registry) Render(label string, v Value) []string {
	spec, ok := r.Lookup(label)
	if !ok {
		return nil
	}
	return spec.Render(v)
}
