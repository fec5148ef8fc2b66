package gitsync

import (
	"context"

	"github.com/hasansino/gitsync/pkg/gitsync/ui"
)

//go:generate mockgen -source $GOFILE -package gitsync -destination mocks_test.go

type repositoryAccessor interface {
	IsRepository() bool
	State() (string, error)
	DiscoverChanges() (ChangeSet, error)
	StageAll() error
	CaptureDiff() (string, error)
	HeadBranch() (string, error)
	TopLevel() string
	RemoteURL(name string) (string, error)
	DefaultBranch(remote string) string
	Commit(message string) (string, error)
	Push(ctx context.Context, remote string) error
}

type generatorAccessor interface {
	GenerateMessage(ctx context.Context, prompt ModelPrompt) (CommitMessage, error)
}

type hostingAccessor interface {
	IsAvailable() bool
	CreateRepository(ctx context.Context, name string, remote string, private bool) (string, error)
}

type prompterAccessor interface {
	Confirm(question string) (bool, error)
}

type presenterAccessor interface {
	Title(subtitle string)
	StartStep(message string)
	CompleteStep(message string)
	FailStep(message string)
	ShowChanges(rows []ui.Row, totalAdditions int, totalDeletions int)
	ShowMessage(message string)
	Notice(message string)
	Success(message string)
}
