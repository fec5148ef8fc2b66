package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Spinner animates long steps on stderr and degrades to a no-op when
// stderr is not a terminal.
type Spinner struct {
	inner   *spinner.Spinner
	enabled bool
}

func NewSpinner() *Spinner {
	return &Spinner{
		inner: spinner.New(
			spinner.CharSets[14],
			100*time.Millisecond,
			spinner.WithWriter(os.Stderr),
		),
		enabled: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
}

func (s *Spinner) Start(message string) {
	if !s.enabled {
		return
	}
	s.inner.Suffix = " " + message
	s.inner.Start()
}

func (s *Spinner) Stop() {
	if !s.enabled {
		return
	}
	s.inner.Stop()
}
