package gitsync

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// repository wraps a single working tree. Pure object operations go through
// go-git, anything that must match the git binary's behavior exactly, like
// status ordering and diff rendering, shells out.
type repository struct {
	repo *git.Repository
	root string
}

// gitIdentity is the author configuration a commit needs.
type gitIdentity struct {
	Name       string
	Email      string
	GPGSign    bool
	SigningKey string
	GPGProgram string
}

func newRepository(path string) (*repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s is not inside a git work tree: %w", path, ErrNotARepository)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("repository has no working tree: %w", ErrRepositoryAccess)
	}

	return &repository{
		repo: repo,
		root: worktree.Filesystem.Root(),
	}, nil
}

// runGit executes the git binary against the repository's working tree and
// returns stdout.
func (r *repository) runGit(args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", r.root}, args...)...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %w: %s",
				args[0], err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(output), nil
}

func (r *repository) IsRepository() bool {
	return exec.Command("git", "-C", r.root, "rev-parse", "--git-dir").Run() == nil
}

// DiscoverChanges lists every pending change in the order git reports them,
// with per-file line counts merged in from both numstat projections.
func (r *repository) DiscoverChanges() (ChangeSet, error) {
	porcelain, err := r.runGit("status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoryAccess, err)
	}
	if strings.TrimSpace(porcelain) == "" {
		return ChangeSet{}, nil
	}

	worktreeOut, err := r.runGit("diff", "--numstat")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoryAccess, err)
	}
	indexOut, err := r.runGit("diff", "--cached", "--numstat")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoryAccess, err)
	}

	changes, err := parseChangeSet(porcelain, parseNumstat(worktreeOut), parseNumstat(indexOut))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoryAccess, err)
	}
	return changes, nil
}

// StageAll stages every pending change including untracked files. Staging
// an already staged set is a no-op.
func (r *repository) StageAll() error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRepositoryAccess, err)
	}
	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("%w: failed to stage changes: %w", ErrRepositoryAccess, err)
	}
	return nil
}

// CaptureDiff renders the full pending diff in labeled sections. Called
// after staging, so the staged section normally carries everything.
func (r *repository) CaptureDiff() (string, error) {
	staged, err := r.runGit("diff", "--cached", "--no-color", "--no-ext-diff")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRepositoryAccess, err)
	}
	unstaged, err := r.runGit("diff", "--no-color", "--no-ext-diff")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRepositoryAccess, err)
	}
	untracked, err := r.runGit("ls-files", "--others", "--exclude-standard")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRepositoryAccess, err)
	}

	var sections strings.Builder
	if staged != "" {
		fmt.Fprintf(&sections, "Staged changes:\n%s\n", staged)
	}
	if unstaged != "" {
		fmt.Fprintf(&sections, "Unstaged changes:\n%s\n", unstaged)
	}
	if untracked != "" {
		fmt.Fprintf(&sections, "New untracked files:\n%s\n", untracked)
	}
	return sections.String(), nil
}

func (r *repository) HeadBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return head.Name().Short(), nil
}

func (r *repository) TopLevel() string {
	return r.root
}

// RemoteURL returns the first URL of the named remote, or "" when the
// remote is not configured.
func (r *repository) RemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %w", ErrRepositoryAccess, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

// DefaultBranch resolves the remote's default branch, falling back to
// "master" when the remote HEAD is not known locally.
func (r *repository) DefaultBranch(remote string) string {
	output, err := r.runGit("symbolic-ref", "refs/remotes/"+remote+"/HEAD")
	if err == nil {
		ref := strings.TrimSpace(output)
		if name, ok := strings.CutPrefix(ref, "refs/remotes/"+remote+"/"); ok {
			return name
		}
	}
	return "master"
}

// Commit creates a commit from the staged set using the configured author
// identity, signing when the repository asks for it.
func (r *repository) Commit(message string) (string, error) {
	identity, err := r.identity()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCommit, err)
	}

	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCommit, err)
	}

	options := &git.CommitOptions{
		Author: &object.Signature{
			Name:  identity.Name,
			Email: identity.Email,
			When:  time.Now(),
		},
	}
	if identity.GPGSign {
		if err := r.attachSigner(options, identity); err != nil {
			return "", fmt.Errorf("%w: %w", ErrCommit, err)
		}
	}

	hash, err := worktree.Commit(message, options)
	if err != nil {
		if errors.Is(err, git.ErrEmptyCommit) {
			return "", fmt.Errorf("staged set is empty: %w", ErrNothingToCommit)
		}
		return "", fmt.Errorf("%w: %w", ErrCommit, err)
	}
	return hash.String(), nil
}

// identity reads the author configuration. Name and email are required,
// signing settings are optional.
func (r *repository) identity() (*gitIdentity, error) {
	identity := &gitIdentity{GPGProgram: "gpg"}

	identity.Name = r.configValue("user.name")
	if identity.Name == "" {
		return nil, fmt.Errorf("git user.name not configured. Run: git config user.name \"Your Name\"")
	}
	identity.Email = r.configValue("user.email")
	if identity.Email == "" {
		return nil, fmt.Errorf("git user.email not configured. Run: git config user.email \"you@example.com\"")
	}

	if gpgSign := r.configValue("commit.gpgsign"); gpgSign != "" {
		identity.GPGSign = strings.EqualFold(gpgSign, "true")
	}
	if signingKey := r.configValue("user.signingkey"); signingKey != "" {
		identity.SigningKey = signingKey
	}
	if program := r.configValue("gpg.program"); program != "" {
		identity.GPGProgram = program
	}

	return identity, nil
}

func (r *repository) configValue(key string) string {
	output, err := r.runGit("config", key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(output)
}

// Push pushes HEAD and sets the upstream, which also works on branches that
// never had one.
func (r *repository) Push(ctx context.Context, remote string) error {
	cmd := exec.CommandContext(ctx, "git", "-C", r.root, "push", "-u", remote, "HEAD")
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("push interrupted: %w", ctx.Err())
		}
		return classifyPushFailure(string(output), err)
	}
	return nil
}

var networkFailurePatterns = []string{
	"could not resolve host",
	"unable to access",
	"connection refused",
	"connection timed out",
	"operation timed out",
	"network is unreachable",
	"could not read from remote repository",
}

// classifyPushFailure splits push failures into connectivity problems and
// remote refusals. Anything the remote answered counts as a rejection.
func classifyPushFailure(output string, err error) error {
	detail := strings.TrimSpace(output)
	if detail == "" {
		detail = err.Error()
	}
	lowered := strings.ToLower(detail)
	for _, pattern := range networkFailurePatterns {
		if strings.Contains(lowered, pattern) {
			return fmt.Errorf("%w: %s", ErrNetwork, detail)
		}
	}
	return fmt.Errorf("%w: %s", ErrPushRejected, detail)
}
