package opts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
		want []string
	}{
		{"short only", Spec{Label: "label_short", Short: "-l"}, []string{"label_short", "-l"}},
		{"long only", Spec{Label: "label_long", Long: "--long"}, []string{"label_long", "--long"}},
		{"short and long", Spec{Label: "label", Short: "-l", Long: "--label"}, []string{"label", "-l", "--label"}},
		{"label equals long", Spec{Label: "--bare", Long: "--bare"}, []string{"--bare"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.spec.Aliases())
		})
	}
}

func TestSpecRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		spec  Spec
		value Value
		want  []string
	}{
		{"flag ignores value", Spec{Label: "l", Short: "-l"}, Of("not expected"), []string{"-l"}},
		{"flag without value", Spec{Label: "l", Short: "-l"}, Value{}, []string{"-l"}},
		{"with value", Spec{Label: "l", Short: "-l", TakesValue: true}, Of("expected"), []string{"-l", "expected"}},
		{"missing value", Spec{Label: "l", Short: "-l", TakesValue: true}, Value{}, nil},
		{"empty value is present", Spec{Label: "m", Short: "-m", TakesValue: true}, Of(""), []string{"-m", ""}},
		{"long preferred", Spec{Label: "l", Short: "-l", Long: "--label"}, Value{}, []string{"--label"}},
		{"no textual form", Spec{Label: "l"}, Value{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.spec.Render(tt.value))
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Allow("color", Short("-c"), Long("--color"))

	byLabel, ok := r.Lookup("color")
	require.True(t, ok)
	byShort, ok := r.Lookup("-c")
	require.True(t, ok)
	byLong, ok := r.Lookup("--color")
	require.True(t, ok)

	assert.Same(t, byLabel, byShort)
	assert.Same(t, byLabel, byLong)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryAllowOverwrites(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Allow("depth", Long("--depth")).
		Allow("depth", Short("-d"), TakesValue())

	_, ok := r.Lookup("--depth")
	assert.False(t, ok, "aliases of the replaced spec must be gone")

	spec, ok := r.Lookup("depth")
	require.True(t, ok)
	assert.Equal(t, "-d", spec.Short)
	assert.True(t, spec.TakesValue)
	assert.Len(t, r.Specs(), 1)
}

func TestRegistryRenderUnknown(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Allow("a", Short("-a"))
	assert.Nil(t, r.Render("b", Of("x")))

	var nilRegistry *Registry
	assert.Nil(t, nilRegistry.Render("a", Value{}))
}

func TestSetRenderFiltersUnknown(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Allow("option_a", Short("-a"), Long("--option-a")).
		Allow("option_b", Short("-b"), Long("--option-b")).
		Allow("option_c", Short("-c"), Long("--option-c"))

	got := NewSet().
		Add("option_a").
		Add("option_b").
		Add("option_d").
		Render(r)

	assert.Equal(t, []string{"--option-a", "--option-b"}, got)
}

func TestSetRenderRepeatable(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Allow("c", Short("-c"), TakesValue(), Repeatable())

	got := NewSet().
		AddValue("c", "a=1").
		AddValue("c", "b=2").
		Render(r)

	assert.Equal(t, []string{"-c", "a=1", "-c", "b=2"}, got)
}

func TestSetRenderDuplicates(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Allow("a", Short("-a")).
		Allow("b", Short("-b"), TakesValue()).
		Allow("c", Short("-c"))

	got := NewSet().
		Add("a").
		Add("a").
		AddValue("b", "123").
		AddValue("b", "456").
		Render(r)

	assert.Equal(t, []string{"-a", "-a", "-b", "123", "-b", "456"}, got)
}

func TestSetRenderOrderPreserved(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Allow("x", Short("-x")).
		Allow("y", Long("--y"), TakesValue()).
		Allow("z", Short("-z"))

	got := NewSet().
		Add("z").
		Add("unknown").
		Add("y"). // missing value: dropped
		AddValue("y", "1").
		Add("x").
		Render(r)

	assert.Equal(t, []string{"-z", "--y", "1", "-x"}, got)
}

func TestSetRenderByAlias(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Allow("message", Short("-m"), Long("--message"), TakesValue())

	got := NewSet().AddValue("-m", "hello").AddValue("--message", "world").Render(r)

	assert.Equal(t, []string{"--message", "hello", "--message", "world"}, got)
}

func TestSetRenderEmpty(t *testing.T) {
	t.Parallel()

	got := NewSet().Render(NewRegistry())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSetRenderReport(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Allow("dir", Short("-C"), TakesValue())

	args, dropped := NewSet().
		AddValue("dir", "/tmp").
		Add("dir").
		Add("porcelain").
		RenderReport(r)

	assert.Equal(t, []string{"-C", "/tmp"}, args)
	require.Len(t, dropped, 2)
	assert.Equal(t, "dir", dropped[0].Label)
	assert.Equal(t, "porcelain", dropped[1].Label)
}

func TestSetFromValues(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Allow("all", Short("-a")).
		Allow("depth", Long("--depth"), TakesValue()).
		Allow("message", Short("-m"), TakesValue()).
		Allow("quiet", Short("-q"))

	got := NewSet().From(Values{
		"quiet":   false,
		"all":     true,
		"depth":   1,
		"message": "initial",
		"unknown": "x",
	}).Render(r)

	assert.Equal(t, []string{"-a", "--depth", "1", "-m", "initial"}, got)
}

func TestSetFromValuesNilValue(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Allow("bare", Long("--bare")).
		Allow("depth", Long("--depth"), TakesValue())

	got := NewSet().From(Values{"bare": nil, "depth": nil}).Render(r)

	assert.Equal(t, []string{"--bare"}, got)
}

func TestSetFromSources(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Allow("a", Short("-a")).
		Allow("b", Short("-b"))

	other := NewSet().Add("b")

	got := NewSet().
		From([]string{"a", "zz"}).
		From(map[string]any{"b": true}).
		From(other).
		From(nil).
		From(42).
		Render(r)

	assert.Equal(t, []string{"-a", "-b", "-b"}, got)
}

func TestValuesMerge(t *testing.T) {
	t.Parallel()

	base := Values{"quiet": true, "depth": 1}
	merged := base.Merge(Values{"depth": 2}, nil, Values{"bare": true})

	assert.Equal(t, Values{"quiet": true, "depth": 2, "bare": true}, merged)
	assert.Equal(t, 1, base["depth"], "receiver must not be modified")
}

func TestSetEntriesIsCopy(t *testing.T) {
	t.Parallel()

	s := NewSet().Add("a")
	entries := s.Entries()
	entries[0].Label = "b"

	assert.Equal(t, "a", s.Entries()[0].Label)
	assert.Equal(t, 1, s.Len())
}
