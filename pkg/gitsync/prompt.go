package gitsync

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// consentPrompter asks yes/no questions on the terminal. Outside a terminal
// it declines instead of blocking, so unattended runs never hang on input.
type consentPrompter struct {
	in        io.Reader
	out       io.Writer
	assumeYes bool
}

func newConsentPrompter(assumeYes bool) *consentPrompter {
	return &consentPrompter{
		in:        os.Stdin,
		out:       os.Stderr,
		assumeYes: assumeYes,
	}
}

func (p *consentPrompter) Confirm(question string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}
	if !p.interactive() {
		fmt.Fprintln(p.out, "stdin is not a terminal, declining (use --yes to confirm automatically)")
		return false, nil
	}

	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	answer, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && answer == "" {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// interactive treats anything that is not a real file descriptor as
// scripted input.
func (p *consentPrompter) interactive() bool {
	file, ok := p.in.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
