package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slidefilter/internal/ui/pretty"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.StageID.Render(text), "No-color StageID should not add formatting")
	assert.Equal(t, text, styles.DiffAdd.Render(text), "No-color DiffAdd should not add formatting")
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	// Even with a TTY, NO_COLOR should disable colors
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf), "empty mode with non-TTY should return false (auto behavior)")
	assert.False(t, pretty.IsColorEnabled("unknown", &buf), "unknown mode with non-TTY should return false (auto behavior)")
}

func TestStyles_AllFieldsInitialized(t *testing.T) {
	styles := pretty.NewStyles(true)

	for name, rendered := range map[string]string{
		"StageID":     styles.StageID.Render("x"),
		"StageName":   styles.StageName.Render("x"),
		"Enabled":     styles.Enabled.Render("x"),
		"Disabled":    styles.Disabled.Render("x"),
		"Glyph":       styles.Glyph.Render("x"),
		"DiffHeader":  styles.DiffHeader.Render("x"),
		"DiffHunk":    styles.DiffHunk.Render("x"),
		"DiffAdd":     styles.DiffAdd.Render("x"),
		"DiffRemove":  styles.DiffRemove.Render("x"),
		"DiffContext": styles.DiffContext.Render("x"),
		"Success":     styles.Success.Render("x"),
		"Failure":     styles.Failure.Render("x"),
		"Dim":         styles.Dim.Render("x"),
		"Bold":        styles.Bold.Render("x"),
	} {
		assert.Contains(t, rendered, "x", name)
	}
}
