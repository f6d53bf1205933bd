package notes

import (
	"fmt"
	"strings"

	"github.com/exitflynn/relnotes/internal/model"
)

// BuildPrompt assembles the fixed instruction template plus the serialized
// commit and merge-request data into a single model prompt. The template is
// always emitted in full, even for empty input.
func BuildPrompt(commits []model.Commit, pulls []model.PullRequest) string {
	var b strings.Builder

	b.WriteString("Analyze these Git commits and merge requests to generate professional release notes.\n")
	b.WriteString("Focus on:\n")
	b.WriteString("- Code changes in diffs\n")
	b.WriteString("- File modifications (added/modified/deleted)\n")
	b.WriteString("- Commit message patterns\n")
	b.WriteString("- Impact analysis of changes\n")
	b.WriteString("\n")
	b.WriteString("Structure (follow exactly these sections):\n")
	b.WriteString("1. Overview of changes\n")
	b.WriteString("2. Technical breakdown by category\n")
	b.WriteString("3. Notable code modifications\n")
	b.WriteString("4. Files Changed Summary (in a markdown table like below):\n")
	b.WriteString("   | File | Changes | Status | Additions | Deletions |\n")
	b.WriteString("   |------|---------|--------|-----------|-----------|\n")
	b.WriteString("\n")

	b.WriteString("Commits to analyze:\n")
	for _, c := range commits {
		fmt.Fprintf(&b, "Commit %s by %s on %s\n", c.SHA, c.Author, c.Date)
		fmt.Fprintf(&b, "Message: %s\n", c.Message)
		if len(c.Files) > 0 {
			fmt.Fprintf(&b, "Files: %s\n", strings.Join(c.Files, ", "))
		}
		writeDiff(&b, c.Diff)
		b.WriteString("\n")
	}

	b.WriteString("Merge requests to analyze:\n")
	for _, pr := range pulls {
		fmt.Fprintf(&b, "Merge request !%d: %s by %s, merged on %s\n", pr.Number, pr.Title, pr.Author, pr.MergedAt)
		if len(pr.Files) > 0 {
			fmt.Fprintf(&b, "Files: %s\n", strings.Join(pr.Files, ", "))
		}
		writeDiff(&b, pr.Diff)
		b.WriteString("\n")
	}

	b.WriteString("Output in markdown with technical depth. Highlight significant code changes.\n")
	b.WriteString("Avoid mentioning AI generation in any form.\n")

	return b.String()
}

func writeDiff(b *strings.Builder, diff string) {
	if diff == "" {
		return
	}

	b.WriteString("Diff:\n")
	b.WriteString(diff)
	if !strings.HasSuffix(diff, "\n") {
		b.WriteString("\n")
	}
}
