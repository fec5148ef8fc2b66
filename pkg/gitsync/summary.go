package gitsync

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ModelPrompt is the text body handed to the message generator.
type ModelPrompt string

// DisplaySummary is the terminal projection of a ChangeSet: records grouped
// by status in canonical order, original order preserved within each group.
type DisplaySummary struct {
	Groups         []StatusGroup
	TotalFiles     int
	TotalAdditions int
	TotalDeletions int
}

// StatusGroup holds all records sharing one status.
type StatusGroup struct {
	Status  ChangeStatus
	Records []ChangeRecord
}

var statusOrder = []ChangeStatus{
	StatusAdded,
	StatusModified,
	StatusDeleted,
	StatusRenamed,
	StatusUntracked,
}

const truncationMarker = "\n... (diff truncated)"

// Summarize produces both projections of a ChangeSet. It is a pure
// function, identical inputs always yield identical outputs. The diff
// portion of the prompt is capped at maxDiffBytes without splitting a rune.
func Summarize(changes ChangeSet, diff string, maxDiffBytes int) (DisplaySummary, ModelPrompt) {
	summary := DisplaySummary{TotalFiles: len(changes)}
	summary.TotalAdditions, summary.TotalDeletions = changes.Totals()

	for _, status := range statusOrder {
		var group StatusGroup
		for _, record := range changes {
			if record.Status == status {
				group.Records = append(group.Records, record)
			}
		}
		if len(group.Records) > 0 {
			group.Status = status
			summary.Groups = append(summary.Groups, group)
		}
	}

	var prompt strings.Builder
	prompt.WriteString("Files changed:\n")
	for _, record := range changes {
		fmt.Fprintf(&prompt, "%s %s (+%d/-%d)\n",
			record.Status, record.Path, record.Additions, record.Deletions)
	}
	if trimmed := strings.TrimSpace(diff); trimmed != "" {
		prompt.WriteString("\n")
		if len(trimmed) > maxDiffBytes {
			prompt.WriteString(truncateValidUTF8(trimmed, maxDiffBytes))
			prompt.WriteString(truncationMarker)
		} else {
			prompt.WriteString(trimmed)
		}
		prompt.WriteString("\n")
	}

	return summary, ModelPrompt(prompt.String())
}

// truncateValidUTF8 cuts s to at most limit bytes, backing off until the
// result is valid UTF-8.
func truncateValidUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 0 {
		return ""
	}
	cut := s[:limit]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
