package notes

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/exitflynn/relnotes/internal/model"
)

// diffStrings renders a readable diff between two long strings for failure
// messages.
func diffStrings(want, got string) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(want, got, false))
}

var templateSections = []string{
	"1. Overview of changes",
	"2. Technical breakdown by category",
	"3. Notable code modifications",
	"4. Files Changed Summary",
	"| File | Changes | Status | Additions | Deletions |",
}

func TestBuildPromptEmptyInput(t *testing.T) {
	prompt := BuildPrompt(nil, nil)

	for _, section := range templateSections {
		if !strings.Contains(prompt, section) {
			t.Errorf("Prompt missing template section %q", section)
		}
	}

	if !strings.Contains(prompt, "Commits to analyze:") {
		t.Error("Prompt missing commits section")
	}
	if !strings.Contains(prompt, "Merge requests to analyze:") {
		t.Error("Prompt missing merge requests section")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	commits := []model.Commit{{SHA: "aaa1111111", Message: "Add parser"}}

	first := BuildPrompt(commits, nil)
	second := BuildPrompt(commits, nil)

	if first != second {
		t.Errorf("Prompt not deterministic:\n%s", diffStrings(first, second))
	}
}

func TestBuildPromptSerializesInput(t *testing.T) {
	commits := []model.Commit{
		{
			SHA:     "aaa1111111",
			Message: "Add parser",
			Author:  "Jane Doe",
			Date:    "2024-05-01T10:00:00Z",
			Files:   []string{"parser.go (3 changes)"},
			Diff:    "@@ -1 +1,2 @@\n+added line",
		},
		{
			SHA:     "bbb2222222",
			Message: "Fix off-by-one",
			Author:  "Sam Roe",
			Date:    "2024-04-30T08:30:00Z",
		},
	}
	pulls := []model.PullRequest{
		{
			Number:   7,
			Title:    "Add parser",
			Author:   "jane",
			MergedAt: "2024-05-02T09:00:00Z",
			Files:    []string{"parser.go (3 changes)"},
			Diff:     "@@ -1 +1,2 @@\n+added line",
		},
	}

	prompt := BuildPrompt(commits, pulls)

	wantCommitBlock := "Commit aaa1111111 by Jane Doe on 2024-05-01T10:00:00Z\n" +
		"Message: Add parser\n" +
		"Files: parser.go (3 changes)\n" +
		"Diff:\n@@ -1 +1,2 @@\n+added line\n"
	if !strings.Contains(prompt, wantCommitBlock) {
		t.Errorf("Commit block not serialized as expected; prompt diff:\n%s",
			diffStrings(wantCommitBlock, prompt))
	}

	for _, sha := range []string{"aaa1111111", "bbb2222222"} {
		if !strings.Contains(prompt, sha) {
			t.Errorf("Prompt missing commit SHA %s", sha)
		}
	}

	wantPRLine := "Merge request !7: Add parser by jane, merged on 2024-05-02T09:00:00Z"
	if !strings.Contains(prompt, wantPRLine) {
		t.Errorf("Prompt missing PR line %q", wantPRLine)
	}

	// Data always comes after the instruction template.
	if strings.Index(prompt, "Commits to analyze:") < strings.Index(prompt, "4. Files Changed Summary") {
		t.Error("Commit data appears before the instruction template")
	}
}
