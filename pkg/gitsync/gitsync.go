// Package gitsync inspects a working tree, generates a commit message for
// the pending changes and publishes the result as a commit and a push.
package gitsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hasansino/gitsync/pkg/gitsync/ui"
)

const defaultRepoPath = "."

// Service drives the inspect, summarize, generate, publish pipeline. One
// instance serves one invocation.
type Service struct {
	logger   *slog.Logger
	settings *Settings
	state    State

	repository repositoryAccessor
	generator  generatorAccessor
	hosting    hostingAccessor
	prompter   prompterAccessor
	presenter  presenterAccessor
}

func NewSyncService(settings *Settings, opts ...Option) (*Service, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	svc := &Service{
		settings: settings,
		state:    StateIdle,
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.logger == nil {
		svc.logger = slog.New(slog.DiscardHandler)
	}
	if svc.presenter == nil {
		svc.presenter = ui.NewPresenter(os.Stdout)
	}
	if svc.prompter == nil {
		svc.prompter = newConsentPrompter(settings.AssumeYes)
	}

	repo, err := newRepository(defaultRepoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}
	svc.repository = repo

	svc.generator = newMessageGenerator(svc.logger, GeneratorConfig{
		Endpoint: settings.Endpoint,
		APIKey:   settings.APIKey,
		Model:    settings.Model,
		Timeout:  settings.Timeout,
	})
	svc.hosting = newGitHubClient(svc.logger)

	return svc, nil
}

// State reports how far the last Execute call advanced.
func (s *Service) State() State {
	return s.state
}

// Execute runs the pipeline once. Any failure leaves the run aborted, the
// returned error carries the failure category.
func (s *Service) Execute(ctx context.Context) error {
	if err := s.run(ctx); err != nil {
		s.advance(ctx, StateAborted)
		return err
	}
	return nil
}

func (s *Service) run(ctx context.Context) error {
	s.presenter.Title("commit and push")

	if !s.repository.IsRepository() {
		return fmt.Errorf("current directory: %w", ErrNotARepository)
	}

	repoState, err := s.repository.State()
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get repository state", "error", err)
		return fmt.Errorf("failed to get repository state: %w", err)
	}
	if repoState != repoStateNormal {
		s.logger.ErrorContext(ctx, "Repository not in normal state", "state", repoState)
		return fmt.Errorf("repository is in %s state, finish or abort it first: %w",
			repoState, ErrRepositoryAccess)
	}

	s.presenter.StartStep("Checking for changes")

	changes, err := s.repository.DiscoverChanges()
	if err != nil {
		s.presenter.FailStep("Inspection failed")
		s.logger.ErrorContext(ctx, "Failed to discover changes", "error", err)
		return fmt.Errorf("failed to discover changes: %w", err)
	}
	s.advance(ctx, StateInspected)

	if len(changes) == 0 {
		s.presenter.CompleteStep("Working tree clean")
		s.presenter.Notice("nothing to sync")
		s.advance(ctx, StateNoChanges)
		return nil
	}

	s.presenter.CompleteStep(fmt.Sprintf("Found %d changed file(s)", len(changes)))

	if err := s.repository.StageAll(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to stage changes", "error", err)
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	s.advance(ctx, StateStaged)

	diff, err := s.repository.CaptureDiff()
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to capture diff", "error", err)
		return fmt.Errorf("failed to capture diff: %w", err)
	}

	summary, prompt := Summarize(changes, diff, s.settings.MaxDiffBytes)
	s.advance(ctx, StateSummarized)

	s.presenter.ShowChanges(displayRows(summary), summary.TotalAdditions, summary.TotalDeletions)

	message, err := s.resolveMessage(ctx, prompt)
	if err != nil {
		return err
	}
	s.advance(ctx, StateMessageGenerated)

	s.presenter.ShowMessage(message.String())

	if !message.IsConventional() {
		s.logger.DebugContext(ctx, "Message has no conventional commit prefix",
			"message", message.String())
	}

	if s.settings.DryRun {
		s.presenter.Notice("dry run, nothing committed")
		return nil
	}

	return s.publish(ctx, message)
}

// resolveMessage returns the override message when one was given and asks
// the generator otherwise. Both paths normalize.
func (s *Service) resolveMessage(ctx context.Context, prompt ModelPrompt) (CommitMessage, error) {
	if s.settings.Message != "" {
		message, err := NormalizeMessage(s.settings.Message)
		if err != nil {
			return "", fmt.Errorf("message override: %w", err)
		}
		s.logger.DebugContext(ctx, "Using message override", "message", message.String())
		return message, nil
	}

	s.presenter.StartStep("Generating commit message")

	message, err := s.generator.GenerateMessage(ctx, prompt)
	if err != nil {
		s.presenter.FailStep("Generation failed")
		s.presenter.Notice("changes remain staged, rerun to retry")
		s.logger.ErrorContext(ctx, "Failed to generate commit message", "error", err)
		return "", fmt.Errorf("failed to generate commit message: %w", err)
	}

	s.presenter.CompleteStep("Commit message generated")
	return message, nil
}

func (s *Service) publish(ctx context.Context, message CommitMessage) error {
	target, err := s.ensureRemote(ctx)
	if err != nil {
		if !errors.Is(err, ErrRemoteCreationUnavailable) {
			return err
		}
		s.logger.WarnContext(ctx, "Remote creation unavailable", "error", err)
		s.presenter.Notice("remote creation unavailable, committing without push")
		target = &RemoteTarget{}
	}

	hash, err := s.repository.Commit(message.String())
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create commit", "error", err)
		return fmt.Errorf("failed to create commit: %w", err)
	}
	s.advance(ctx, StateCommitted)
	s.logger.InfoContext(ctx, "Commit created", "hash", hash, "message", message.String())

	if s.settings.NoPush {
		s.presenter.Success(fmt.Sprintf("committed %.8s, push skipped", hash))
		return nil
	}
	if !target.Exists {
		s.presenter.Success(fmt.Sprintf("committed %.8s, not pushed (no remote)", hash))
		return nil
	}

	s.presenter.StartStep("Pushing to " + s.settings.Remote)

	if err := s.repository.Push(ctx, s.settings.Remote); err != nil {
		s.presenter.FailStep("Push failed")
		s.presenter.Notice(fmt.Sprintf("commit %.8s remains local, push again once resolved", hash))
		s.logger.ErrorContext(ctx, "Failed to push", "error", err)
		return fmt.Errorf("failed to push: %w", err)
	}
	s.advance(ctx, StatePushed)
	s.presenter.CompleteStep("Pushed to " + s.settings.Remote)

	if !target.Created {
		if link := s.compareLink(target); link != "" {
			s.presenter.Notice("open a merge request: " + link)
		}
	}

	s.presenter.Success(fmt.Sprintf("synced %.8s", hash))
	return nil
}

// ensureRemote resolves the publish destination. A missing remote is not an
// error, the user may decline creation and the hosting CLI may be
// unavailable, both of which downgrade the run to commit-only.
func (s *Service) ensureRemote(ctx context.Context) (*RemoteTarget, error) {
	remoteURL, err := s.repository.RemoteURL(s.settings.Remote)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect remote %s: %w", s.settings.Remote, err)
	}
	if remoteURL != "" {
		return &RemoteTarget{Exists: true, URL: remoteURL}, nil
	}
	if s.settings.NoPush {
		return &RemoteTarget{}, nil
	}

	consent, err := s.prompter.Confirm(fmt.Sprintf(
		"No remote %q configured. Create a repository on GitHub with gh?", s.settings.Remote))
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !consent {
		s.logger.DebugContext(ctx, "Remote creation declined")
		return &RemoteTarget{}, nil
	}

	if !s.hosting.IsAvailable() {
		return nil, fmt.Errorf("gh is not installed or not authenticated: %w",
			ErrRemoteCreationUnavailable)
	}

	name := filepath.Base(s.repository.TopLevel())
	createdURL, err := s.hosting.CreateRepository(ctx, name, s.settings.Remote, !s.settings.Public)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteCreationUnavailable, err)
	}

	s.logger.InfoContext(ctx, "Remote repository created", "name", name, "url", createdURL)
	s.presenter.Notice("created remote repository " + name)

	return &RemoteTarget{Exists: true, URL: createdURL, Created: true}, nil
}

// compareLink is best effort, any resolution failure just drops the link.
func (s *Service) compareLink(target *RemoteTarget) string {
	info, err := parseRemoteURL(target.URL)
	if err != nil {
		return ""
	}
	branch, err := s.repository.HeadBranch()
	if err != nil {
		return ""
	}
	return compareURL(info, branch, s.repository.DefaultBranch(s.settings.Remote))
}

func (s *Service) advance(ctx context.Context, next State) {
	s.logger.DebugContext(ctx, "Pipeline state change",
		"from", string(s.state),
		"to", string(next),
	)
	s.state = next
}

func displayRows(summary DisplaySummary) []ui.Row {
	rows := make([]ui.Row, 0, summary.TotalFiles)
	for _, group := range summary.Groups {
		for _, record := range group.Records {
			rows = append(rows, ui.Row{
				Path:      record.Path,
				Status:    string(record.Status),
				Additions: record.Additions,
				Deletions: record.Deletions,
			})
		}
	}
	return rows
}
