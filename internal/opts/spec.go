package opts

// Spec declares one recognized flag.
type Spec struct {
	Label      string
	Short      string // e.g. "-c"
	Long       string // e.g. "--color"
	TakesValue bool
	Repeatable bool
}

// SpecOption configures a Spec when it is allowed in a Registry.
type SpecOption func(*Spec)

// Short sets the short form, e.g. "-C".
func Short(form string) SpecOption {
	return func(s *Spec) { s.Short = form }
}

// Long sets the long form, e.g. "--git-dir".
func Long(form string) SpecOption {
	return func(s *Spec) { s.Long = form }
}

// TakesValue marks the flag as requiring a value.
func TakesValue() SpecOption {
	return func(s *Spec) { s.TakesValue = true }
}

// Repeatable marks the flag as allowed more than once per invocation.
func Repeatable() SpecOption {
	return func(s *Spec) { s.Repeatable = true }
}

// Aliases returns every key the spec can be looked up by: the label,
// then the short and long forms when set. Duplicates are removed.
func (s *Spec) Aliases() []string {
	aliases := make([]string, 0, 3)
	for _, a := range []string{s.Label, s.Short, s.Long} {
		if a == "" {
			continue
		}
		dup := false
		for _, seen := range aliases {
			if seen == a {
				dup = true
				break
			}
		}
		if !dup {
			aliases = append(aliases, a)
		}
	}
	return aliases
}

// Flag returns the textual form used on the command line.
// The long form is preferred. Returns "" when neither form is set.
func (s *Spec) Flag() string {
	if s.Long != "" {
		return s.Long
	}
	return s.Short
}

// Render produces the tokens for one occurrence of the flag.
// Returns nil when the spec has no textual form or when it takes a value
// and none is given. A value passed to a flag that takes none is ignored.
func (s *Spec) Render(v Value) []string {
	flag := s.Flag()
	if flag == "" {
		return nil
	}
	if !s.TakesValue {
		return []string{flag}
	}
	if !v.Present() {
		return nil
	}
	return []string{flag, v.String()}
}
