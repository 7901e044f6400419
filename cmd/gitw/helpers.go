package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ttych/gitw/internal/config"
	"github.com/ttych/gitw/internal/git"
	"github.com/ttych/gitw/internal/log"
	"github.com/ttych/gitw/internal/repository"
)

// effectiveConfig overlays the .gitw.toml of the repository containing
// the working directory, when there is one.
func (a *app) effectiveConfig(ctx context.Context) (config.Config, error) {
	top, err := git.New(a.cfg, git.WithDir(a.dir)).Toplevel(ctx)
	if err != nil {
		return a.cfg, nil
	}
	local, err := config.LoadLocal(top)
	if err != nil {
		return a.cfg, err
	}
	if local != nil {
		log.FromContext(ctx).Debug("using local config", "path", top+"/"+config.LocalConfigFileName)
	}
	return config.ApplyEnv(*config.MergeLocal(&a.cfg, local), os.Getenv), nil
}

// repository returns the repository containing the working directory.
func (a *app) repository(ctx context.Context) (*repository.Repository, error) {
	if err := git.New(a.cfg).Check(); err != nil {
		return nil, err
	}
	cfg, err := a.effectiveConfig(ctx)
	if err != nil {
		return nil, err
	}
	return repository.At(ctx, cfg, a.dir)
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// suggest returns the candidates closest to input, best match first.
func suggest(input string, candidates []string) []string {
	matches := fuzzy.Find(input, candidates)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

// notFound builds a "not found" error with a did-you-mean hint.
func notFound(kind, name string, candidates []string) error {
	if hints := suggest(name, candidates); len(hints) > 0 {
		return fmt.Errorf("%s %q not found (did you mean %s?)", kind, name, strings.Join(hints, ", "))
	}
	if len(candidates) > 0 {
		return fmt.Errorf("%s %q not found (available: %s)", kind, name, strings.Join(candidates, ", "))
	}
	return fmt.Errorf("%s %q not found", kind, name)
}
