package gitsync

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	repoStateNormal        = "normal"
	repoStateMerging       = "merging"
	repoStateRebasing      = "rebasing"
	repoStateCherryPicking = "cherry-picking"
	repoStateReverting     = "reverting"
	repoStateBisecting     = "bisecting"
)

// State reports what multi-step operation the repository is in the middle
// of. Anything but normal refuses the run before any mutation happens.
func (r *repository) State() (string, error) {
	output, err := r.runGit("rev-parse", "--git-dir")
	if err != nil {
		return repoStateNormal, fmt.Errorf("%w: %w", ErrRepositoryAccess, err)
	}
	gitDir := strings.TrimSpace(output)
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(r.root, gitDir)
	}
	return detectRepoState(gitDir), nil
}

// detectRepoState checks the marker files git leaves behind while an
// operation is in progress.
func detectRepoState(gitDir string) string {
	switch {
	case markerExists(filepath.Join(gitDir, "rebase-merge")),
		markerExists(filepath.Join(gitDir, "rebase-apply")):
		return repoStateRebasing
	case markerExists(filepath.Join(gitDir, "MERGE_HEAD")):
		return repoStateMerging
	case markerExists(filepath.Join(gitDir, "CHERRY_PICK_HEAD")):
		return repoStateCherryPicking
	case markerExists(filepath.Join(gitDir, "REVERT_HEAD")):
		return repoStateReverting
	case markerExists(filepath.Join(gitDir, "BISECT_LOG")):
		return repoStateBisecting
	}
	return repoStateNormal
}

func markerExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
