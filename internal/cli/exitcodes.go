package cli

import (
	"errors"

	"github.com/yaklabco/slidefilter/internal/configloader"
	"github.com/yaklabco/slidefilter/pkg/fsutil"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
	"github.com/yaklabco/slidefilter/pkg/runner"
)

// Exit codes for slidefilter.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates the document could not be filtered.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates input or output errors.
	ExitIOError = 74
)

// ErrUsage marks errors caused by invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// ExitCodeFromError maps an error returned by a command to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage), errors.Is(err, rewrite.ErrUnknownStage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, runner.ErrInvalidUTF8):
		return ExitIOError
	default:
		return ExitFailure
	}
}
