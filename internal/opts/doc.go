// Package opts declares which command-line flags a git subcommand accepts
// and renders requested options into argument tokens.
//
// A [Registry] is built once per subcommand from [Spec] declarations. A
// [Set] collects the options a caller asks for, in order, without knowing
// which registry will render it. Rendering a set against a registry keeps
// the options the registry knows and drops the rest.
//
// # Usage
//
//	reg := opts.NewRegistry().
//	    Allow("c", opts.Short("-c"), opts.TakesValue(), opts.Repeatable()).
//	    Allow("dir", opts.Short("-C"), opts.TakesValue())
//
//	args := opts.NewSet().
//	    AddValue("c", "color.ui=false").
//	    AddValue("c", "core.quotePath=true").
//	    Add("porcelain"). // unknown to reg: dropped
//	    Render(reg)
//	// args == []string{"-c", "color.ui=false", "-c", "core.quotePath=true"}
//
// # Dropping Rules
//
// Rendering never fails. An entry contributes no tokens when:
//
//   - its label is not registered
//   - its spec takes a value and the entry carries none
//
// This lets one set of option hints be rendered against several
// registries (global flags and subcommand flags), each keeping only what
// it understands.
//
// # Bulk Loading
//
// [Set.From] accepts a [Values] mapping, a label slice or another set.
// In a mapping, a literal false value means "explicitly disabled" and the
// key is skipped; nil or true adds a bare flag. Mapping keys are loaded in
// sorted order since Go maps are unordered.
package opts
