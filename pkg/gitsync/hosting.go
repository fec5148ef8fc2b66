package gitsync

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// githubClient shells out to the gh CLI. Repository creation is the only
// hosting operation the workflow needs, so there is no API client.
type githubClient struct {
	logger *slog.Logger
}

func newGitHubClient(logger *slog.Logger) *githubClient {
	return &githubClient{logger: logger}
}

// IsAvailable reports whether gh is installed and authenticated.
func (c *githubClient) IsAvailable() bool {
	if _, err := exec.LookPath("gh"); err != nil {
		return false
	}
	return exec.Command("gh", "auth", "status").Run() == nil
}

// CreateRepository creates a remote repository and wires it up as a remote
// of the local one. Returns the URL of the created repository.
func (c *githubClient) CreateRepository(ctx context.Context, name string, remote string, private bool) (string, error) {
	c.logger.DebugContext(ctx, "Creating remote repository",
		"name", name,
		"private", private,
	)

	args := createRepositoryArgs(name, remote, private)
	output, err := exec.CommandContext(ctx, "gh", args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("gh repo create failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return repositoryURLFromOutput(string(output)), nil
}

func createRepositoryArgs(name, remote string, private bool) []string {
	args := []string{"repo", "create", name, "--source=.", "--remote=" + remote}
	if private {
		args = append(args, "--private")
	} else {
		args = append(args, "--public")
	}
	return args
}

// repositoryURLFromOutput picks the repository URL out of the human
// readable text gh prints on success.
func repositoryURLFromOutput(output string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "https://") {
			return line
		}
	}
	return ""
}
