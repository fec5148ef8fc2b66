package gitsync

import "errors"

// Every failure the pipeline can surface wraps exactly one of these
// sentinels, so callers can branch with errors.Is regardless of how much
// context was layered on top.
var (
	ErrNotARepository            = errors.New("not a git repository")
	ErrRepositoryAccess          = errors.New("repository access failed")
	ErrAuthentication            = errors.New("authentication failed")
	ErrGenerationTimeout         = errors.New("message generation timed out")
	ErrGenerationService         = errors.New("message generation failed")
	ErrInvalidMessage            = errors.New("no usable commit message")
	ErrRemoteCreationUnavailable = errors.New("remote creation unavailable")
	ErrNothingToCommit           = errors.New("nothing to commit")
	ErrCommit                    = errors.New("commit failed")
	ErrPushRejected              = errors.New("push rejected by remote")
	ErrNetwork                   = errors.New("network failure")
)

// Category groups failures by pipeline stage for exit-code mapping.
type Category int

const (
	CategoryNone Category = iota
	CategoryInspection
	CategoryGeneration
	CategoryPublish
)

// Categorize resolves the failure category of err by walking its wrap
// chain. Errors outside the taxonomy return CategoryNone.
func Categorize(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrNotARepository),
		errors.Is(err, ErrRepositoryAccess):
		return CategoryInspection
	case errors.Is(err, ErrAuthentication),
		errors.Is(err, ErrGenerationTimeout),
		errors.Is(err, ErrGenerationService),
		errors.Is(err, ErrInvalidMessage):
		return CategoryGeneration
	case errors.Is(err, ErrNothingToCommit),
		errors.Is(err, ErrCommit),
		errors.Is(err, ErrPushRejected),
		errors.Is(err, ErrNetwork):
		return CategoryPublish
	default:
		return CategoryNone
	}
}
