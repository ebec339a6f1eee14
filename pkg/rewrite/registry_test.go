package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slidefilter/pkg/config"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

// stubStage appends its suffix to the document.
type stubStage struct {
	rewrite.BaseStage
	suffix string
	err    error
}

func newStub(id, name string, enabled bool, suffix string) *stubStage {
	return &stubStage{
		BaseStage: rewrite.NewBaseStage(id, name, "stub "+name, enabled),
		suffix:    suffix,
	}
}

func (s *stubStage) Rewrite(sc *rewrite.StageContext, text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if sc.OptionBool("upper", false) {
		return text + "[" + s.suffix + "]", nil
	}
	return text + s.suffix, nil
}

func newTestRegistry() *rewrite.Registry {
	registry := rewrite.NewRegistry()
	// Registered out of order on purpose.
	registry.Register(newStub("T003", "third", false, "3"))
	registry.Register(newStub("T001", "first", true, "1"))
	registry.Register(newStub("T002", "second", true, "2"))
	return registry
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry()

	assert.Equal(t, []string{"T001", "T002", "T003"}, registry.IDs())

	stages := registry.Stages()
	require.Len(t, stages, 3)
	assert.Equal(t, "first", stages[0].Name())
	assert.Equal(t, "third", stages[2].Name())

	byName, ok := registry.Get("second")
	require.True(t, ok)
	assert.Equal(t, "T002", byName.ID())

	id, ok := registry.Resolve("third")
	assert.True(t, ok)
	assert.Equal(t, "T003", id)

	_, ok = registry.Resolve("missing")
	assert.False(t, ok)
}

func TestRegistry_ReplaceByID(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry()
	registry.Register(newStub("T001", "first", false, "x"))

	stage, ok := registry.Get("T001")
	require.True(t, ok)
	assert.False(t, stage.DefaultEnabled())
	assert.Len(t, registry.Stages(), 3)
}

func TestResolveStages(t *testing.T) {
	t.Parallel()

	ids := func(resolved []rewrite.ResolvedStage) []string {
		out := make([]string, 0, len(resolved))
		for _, rs := range resolved {
			out = append(out, rs.Stage.ID())
		}
		return out
	}

	tests := []struct {
		name string
		cfg  *config.Config
		want []string
	}{
		{name: "nil config uses defaults", cfg: nil, want: []string{"T001", "T002"}},
		{
			name: "config enables by name",
			cfg: &config.Config{Stages: map[string]config.StageConfig{
				"third": {Enabled: config.Bool(true)},
			}},
			want: []string{"T001", "T002", "T003"},
		},
		{
			name: "config disables by id",
			cfg: &config.Config{Stages: map[string]config.StageConfig{
				"T001": {Enabled: config.Bool(false)},
			}},
			want: []string{"T002"},
		},
		{
			name: "CLI enable beats config",
			cfg: &config.Config{
				Stages:       map[string]config.StageConfig{"T003": {Enabled: config.Bool(false)}},
				EnableStages: []string{"third"},
			},
			want: []string{"T001", "T002", "T003"},
		},
		{
			name: "CLI disable beats CLI enable",
			cfg: &config.Config{
				EnableStages:  []string{"T002"},
				DisableStages: []string{"second"},
			},
			want: []string{"T001"},
		},
		{
			name: "unknown config keys ignored",
			cfg: &config.Config{Stages: map[string]config.StageConfig{
				"nope": {Enabled: config.Bool(true)},
			}},
			want: []string{"T001", "T002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolved, err := rewrite.ResolveStages(newTestRegistry(), tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(resolved))
		})
	}
}

func TestResolveStages_UnknownCLIKey(t *testing.T) {
	t.Parallel()

	_, err := rewrite.ResolveStages(newTestRegistry(), &config.Config{EnableStages: []string{"bogus"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, rewrite.ErrUnknownStage)
	assert.Contains(t, err.Error(), "bogus")

	_, err = rewrite.ResolveStages(newTestRegistry(), &config.Config{DisableStages: []string{"bogus"}})
	assert.ErrorIs(t, err, rewrite.ErrUnknownStage)
}
