package opts

// Entry is one requested option.
type Entry struct {
	Label string
	Value Value
}

// Set is an ordered list of requested options. Duplicate labels are kept
// and each renders on its own, which is how repeatable flags are built.
//
// A Set is not bound to a registry until it is rendered and performs no
// validation when entries are added.
type Set struct {
	entries []Entry
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{}
}

// Add appends a flag without a value and returns s for chaining.
func (s *Set) Add(label string) *Set {
	s.entries = append(s.entries, Entry{Label: label})
	return s
}

// AddValue appends a flag with a value and returns s for chaining.
func (s *Set) AddValue(label, value string) *Set {
	s.entries = append(s.entries, Entry{Label: label, Value: Of(value)})
	return s
}

// Append appends an entry as is.
func (s *Set) Append(e Entry) *Set {
	s.entries = append(s.entries, e)
	return s
}

// From bulk-loads entries from source and returns s for chaining.
//
// Supported sources are Values (and map[string]any), []string of bare
// labels, and *Set. Any other source, including nil, leaves s unchanged.
func (s *Set) From(source any) *Set {
	switch src := source.(type) {
	case Values:
		return s.FromValues(src)
	case map[string]any:
		return s.FromValues(Values(src))
	case []string:
		return s.FromLabels(src)
	case *Set:
		return s.FromSet(src)
	default:
		return s
	}
}

// FromValues adds every entry of vs in sorted key order, skipping
// entries whose value is literally false.
func (s *Set) FromValues(vs Values) *Set {
	for _, label := range vs.Keys() {
		v, keep := toValue(vs[label])
		if !keep {
			continue
		}
		s.Append(Entry{Label: label, Value: v})
	}
	return s
}

// FromLabels adds each label as a bare flag.
func (s *Set) FromLabels(labels []string) *Set {
	for _, label := range labels {
		s.Add(label)
	}
	return s
}

// FromSet appends the entries of other.
func (s *Set) FromSet(other *Set) *Set {
	if other == nil {
		return s
	}
	s.entries = append(s.entries, other.entries...)
	return s
}

// Entries returns a copy of the pending entries in insertion order.
func (s *Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of pending entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// Render resolves every entry against r, in insertion order, and returns
// the concatenated tokens. Entries r cannot render are dropped.
func (s *Set) Render(r *Registry) []string {
	args, _ := s.RenderReport(r)
	return args
}

// RenderReport is Render that also returns the entries that were dropped,
// for diagnostics.
func (s *Set) RenderReport(r *Registry) (args []string, dropped []Entry) {
	args = []string{}
	for _, e := range s.entries {
		tokens := r.Render(e.Label, e.Value)
		if len(tokens) == 0 {
			dropped = append(dropped, e)
			continue
		}
		args = append(args, tokens...)
	}
	return args, dropped
}
