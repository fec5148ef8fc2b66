package gitsync

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// RemoteTarget is the publish destination resolved, or created, for a run.
// A zero target means the run stops after committing.
type RemoteTarget struct {
	Exists  bool
	URL     string
	Created bool
}

type hostingPlatform string

const (
	platformGitHub  hostingPlatform = "github"
	platformGitLab  hostingPlatform = "gitlab"
	platformUnknown hostingPlatform = "unknown"
)

type remoteInfo struct {
	Platform hostingPlatform
	Host     string
	Owner    string
	Repo     string
}

var sshRemotePattern = regexp.MustCompile(`^(?:ssh://)?(?:git@)?([^:/]+)[:/](.+?)(?:\.git)?$`)

// parseRemoteURL extracts host, owner and repository name from HTTPS and
// SSH remote URLs. Nested GitLab groups fold into the owner segment.
func parseRemoteURL(remoteURL string) (*remoteInfo, error) {
	if remoteURL == "" {
		return nil, fmt.Errorf("empty remote URL")
	}

	var host, path string
	if strings.HasPrefix(remoteURL, "http://") || strings.HasPrefix(remoteURL, "https://") {
		parsed, err := url.Parse(remoteURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse remote URL: %w", err)
		}
		host = parsed.Host
		path = strings.Trim(parsed.Path, "/")
	} else {
		matches := sshRemotePattern.FindStringSubmatch(remoteURL)
		if len(matches) != 3 {
			return nil, fmt.Errorf("unsupported remote URL format: %s", remoteURL)
		}
		host = matches[1]
		path = matches[2]
	}

	segments := strings.Split(strings.TrimSuffix(path, ".git"), "/")
	if len(segments) < 2 {
		return nil, fmt.Errorf("remote URL %s has no owner/repository path", remoteURL)
	}

	return &remoteInfo{
		Platform: detectPlatform(host),
		Host:     host,
		Owner:    strings.Join(segments[:len(segments)-1], "/"),
		Repo:     segments[len(segments)-1],
	}, nil
}

func detectPlatform(host string) hostingPlatform {
	lowered := strings.ToLower(host)
	switch {
	case strings.Contains(lowered, "github"):
		return platformGitHub
	case strings.Contains(lowered, "gitlab"):
		return platformGitLab
	}
	return platformUnknown
}

// compareURL builds the link that opens a pull or merge request for a just
// pushed branch. Pushes to the default branch have nothing to compare.
func compareURL(info *remoteInfo, branch, targetBranch string) string {
	if info == nil || branch == "" || branch == targetBranch {
		return ""
	}
	switch info.Platform {
	case platformGitHub:
		return fmt.Sprintf("https://%s/%s/%s/compare/%s...%s?expand=1",
			info.Host, info.Owner, info.Repo,
			url.QueryEscape(targetBranch), url.QueryEscape(branch))
	case platformGitLab:
		params := url.Values{}
		params.Set("merge_request[source_branch]", branch)
		if targetBranch != "" {
			params.Set("merge_request[target_branch]", targetBranch)
		}
		return fmt.Sprintf("https://%s/%s/%s/-/merge_requests/new?%s",
			info.Host, info.Owner, info.Repo, params.Encode())
	}
	return ""
}
