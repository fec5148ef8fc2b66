package gitsync

import (
	"fmt"
	"regexp"
	"strings"
)

// CommitMessage is a single non-empty line of text.
type CommitMessage string

func (m CommitMessage) String() string {
	return string(m)
}

// conventionalPrefixPattern matches "type", "type(scope)" and
// "type(scope)!" before the colon.
var conventionalPrefixPattern = regexp.MustCompile(`^[a-z]+(\([a-zA-Z0-9\-_]+\))?!?$`)

var conventionalTypes = map[string]bool{
	"feat":     true,
	"fix":      true,
	"docs":     true,
	"style":    true,
	"refactor": true,
	"perf":     true,
	"test":     true,
	"build":    true,
	"ci":       true,
	"chore":    true,
	"revert":   true,
}

// NormalizeMessage reduces a raw model response to a usable one-line commit
// message. Code fences and surrounding quotes are stripped and the first
// non-empty line wins. A response with no usable line is an error.
func NormalizeMessage(raw string) (CommitMessage, error) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.Trim(line, "`")
		line = strings.Trim(line, `"`)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return CommitMessage(line), nil
	}
	return "", fmt.Errorf("response contained no usable line: %w", ErrInvalidMessage)
}

// IsConventional reports whether the message starts with a known
// conventional commit prefix like "feat:" or "fix(parser)!:".
func (m CommitMessage) IsConventional() bool {
	idx := strings.Index(string(m), ":")
	if idx <= 0 || idx >= 50 {
		return false
	}
	prefix := string(m)[:idx]
	if !conventionalPrefixPattern.MatchString(prefix) {
		return false
	}
	typeEnd := strings.IndexByte(prefix, '(')
	if typeEnd == -1 {
		typeEnd = len(prefix)
		if strings.HasSuffix(prefix, "!") {
			typeEnd--
		}
	}
	return conventionalTypes[prefix[:typeEnd]]
}
