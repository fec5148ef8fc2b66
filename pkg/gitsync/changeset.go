package gitsync

import (
	"fmt"
	"strconv"
	"strings"
)

// ChangeStatus classifies a pending change relative to HEAD.
type ChangeStatus string

const (
	StatusAdded     ChangeStatus = "added"
	StatusModified  ChangeStatus = "modified"
	StatusDeleted   ChangeStatus = "deleted"
	StatusRenamed   ChangeStatus = "renamed"
	StatusUntracked ChangeStatus = "untracked"
)

// ChangeRecord is a single pending change, captured fresh on every run.
type ChangeRecord struct {
	Path      string
	Status    ChangeStatus
	Additions int
	Deletions int
}

// ChangeSet preserves the order git reported the entries in.
type ChangeSet []ChangeRecord

// Totals sums additions and deletions across the whole set.
func (c ChangeSet) Totals() (additions, deletions int) {
	for _, record := range c {
		additions += record.Additions
		deletions += record.Deletions
	}
	return additions, deletions
}

type numstatEntry struct {
	additions int
	deletions int
}

// parseChangeSet merges porcelain status output with numstat projections of
// the worktree and the index. Lines with unresolved conflict markers abort
// the whole parse.
func parseChangeSet(porcelain string, worktreeStats, indexStats map[string]numstatEntry) (ChangeSet, error) {
	var changes ChangeSet
	for _, line := range strings.Split(porcelain, "\n") {
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		path := line[3:]

		if isConflictCode(code) {
			return nil, fmt.Errorf("unresolved conflict in %s", path)
		}

		status := statusForCode(code)
		if status == StatusRenamed {
			// porcelain reports "orig -> dest", the record keeps the destination
			if idx := strings.Index(path, " -> "); idx >= 0 {
				path = path[idx+4:]
			}
		}
		path = unquotePath(path)

		record := ChangeRecord{Path: path, Status: status}
		if stat, ok := worktreeStats[path]; ok {
			record.Additions += stat.additions
			record.Deletions += stat.deletions
		}
		if stat, ok := indexStats[path]; ok {
			record.Additions += stat.additions
			record.Deletions += stat.deletions
		}
		changes = append(changes, record)
	}
	return changes, nil
}

// statusForCode folds the two porcelain XY columns into a single status.
// Rename and delete outrank add, anything else is a modification.
func statusForCode(code string) ChangeStatus {
	if code == "??" {
		return StatusUntracked
	}
	index, worktree := code[0], code[1]
	switch {
	case index == 'R' || worktree == 'R':
		return StatusRenamed
	case index == 'D' || worktree == 'D':
		return StatusDeleted
	case index == 'A' || index == 'C' || worktree == 'A' || worktree == 'C':
		return StatusAdded
	default:
		return StatusModified
	}
}

// isConflictCode reports whether a porcelain XY code marks an unresolved
// merge conflict.
func isConflictCode(code string) bool {
	switch code {
	case "UU", "AA", "DD", "AU", "UA", "DU", "UD":
		return true
	}
	return false
}

// parseNumstat reads "added<TAB>deleted<TAB>path" lines. Binary entries
// report "-" and count as zero. Rename spellings are stored under both the
// old and the new path.
func parseNumstat(output string) map[string]numstatEntry {
	stats := make(map[string]numstatEntry)
	for _, line := range strings.Split(output, "\n") {
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			continue
		}
		var entry numstatEntry
		if parts[0] != "-" {
			entry.additions, _ = strconv.Atoi(parts[0])
		}
		if parts[1] != "-" {
			entry.deletions, _ = strconv.Atoi(parts[1])
		}
		pathPart := strings.TrimSpace(parts[2])
		if oldPath, newPath, ok := splitRenamePath(pathPart); ok {
			stats[oldPath] = entry
			stats[newPath] = entry
			continue
		}
		stats[unquotePath(pathPart)] = entry
	}
	return stats
}

// splitRenamePath resolves the numstat rename spellings "old => new" and
// the in-place braced form "dir/{old => new}/file".
func splitRenamePath(path string) (oldPath, newPath string, ok bool) {
	if !strings.Contains(path, "=>") {
		return "", "", false
	}
	if start := strings.Index(path, "{"); start >= 0 {
		end := strings.Index(path, "}")
		if end > start {
			halves := strings.SplitN(path[start+1:end], "=>", 2)
			if len(halves) == 2 {
				oldPath = path[:start] + strings.TrimSpace(halves[0]) + path[end+1:]
				newPath = path[:start] + strings.TrimSpace(halves[1]) + path[end+1:]
				return cleanRenameHalf(oldPath), cleanRenameHalf(newPath), true
			}
		}
	}
	halves := strings.SplitN(path, "=>", 2)
	if len(halves) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(halves[0]), strings.TrimSpace(halves[1]), true
}

// cleanRenameHalf collapses the empty segment an expanded brace can leave
// behind, e.g. "dir/{ => sub}/f" becoming "dir//f".
func cleanRenameHalf(path string) string {
	path = strings.ReplaceAll(path, "//", "/")
	return strings.TrimPrefix(path, "/")
}

// unquotePath undoes the C-style quoting git applies to paths with special
// characters.
func unquotePath(path string) string {
	if len(path) >= 2 && strings.HasPrefix(path, `"`) && strings.HasSuffix(path, `"`) {
		if unquoted, err := strconv.Unquote(path); err == nil {
			return unquoted
		}
	}
	return path
}
