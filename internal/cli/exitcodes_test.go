package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/slidefilter/internal/configloader"
	"github.com/yaklabco/slidefilter/pkg/fsutil"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
	"github.com/yaklabco/slidefilter/pkg/runner"
)

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", fmt.Errorf("%w: bad flag", ErrUsage), ExitInvalidUsage},
		{"unknown stage", fmt.Errorf("build pipeline: enable: %w", rewrite.ErrUnknownStage), ExitInvalidUsage},
		{"config", fmt.Errorf("load configuration: %w", configloader.ErrInvalidConfig), ExitConfigError},
		{"validation", &configloader.ValidationError{Field: "stages.x", Message: "bad"}, ExitConfigError},
		{"not found", fmt.Errorf("x: %w", fsutil.ErrNotFound), ExitIOError},
		{"permission", fsutil.ErrPermissionDenied, ExitIOError},
		{"directory", fsutil.ErrIsDirectory, ExitIOError},
		{"utf8", runner.ErrInvalidUTF8, ExitIOError},
		{"stage failure", &rewrite.StageError{ID: "SF005", Err: errors.New("boom")}, ExitFailure},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}
