package cli

import (
	"errors"

	"github.com/yaklabco/edittree/pkg/cssedit"
	"github.com/yaklabco/edittree/pkg/fsutil"
	"github.com/yaklabco/edittree/pkg/htmledit"
)

// Exit codes for edittree.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitNotFound indicates the target or element was not found.
	ExitNotFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitParseError indicates the target fragment could not be parsed.
	ExitParseError = 66

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ruleNotFound *cssedit.RuleNotFoundError
	var tagNotFound *htmledit.TagNotFoundError
	var cssParse *cssedit.ParseError
	var htmlParse *htmledit.ParseError

	switch {
	case errors.As(err, &ruleNotFound), errors.As(err, &tagNotFound),
		errors.Is(err, errElementNotFound):
		return ExitNotFound
	case errors.As(err, &cssParse), errors.As(err, &htmlParse):
		return ExitParseError
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory), errors.Is(err, fsutil.ErrModified):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
