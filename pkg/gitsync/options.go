package gitsync

import "log/slog"

type Option func(*Service)

// WithLogger attaches a logger. Without it the service logs nowhere.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithPresenter replaces terminal output, mostly for tests and scripting.
func WithPresenter(presenter presenterAccessor) Option {
	return func(s *Service) {
		s.presenter = presenter
	}
}

// WithPrompter replaces the interactive consent prompt.
func WithPrompter(prompter prompterAccessor) Option {
	return func(s *Service) {
		s.prompter = prompter
	}
}
