package config

import "github.com/ttych/gitw/internal/opts"

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	if local.GitPath != "" {
		merged.GitPath = local.GitPath
	}

	// Option hints merge key by key; local wins.
	merged.Options = global.Options.Merge(local.Options)

	merged.Commands = make(map[string]opts.Values, len(global.Commands)+len(local.Commands))
	for name, values := range global.Commands {
		merged.Commands[name] = values.Merge()
	}
	for name, values := range local.Commands {
		merged.Commands[name] = merged.Commands[name].Merge(values)
	}

	return &merged
}
