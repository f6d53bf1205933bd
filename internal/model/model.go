package model

// RepoRef identifies a GitHub repository, parsed once from the repository URL.
type RepoRef struct {
	Owner string
	Name  string
}

// Commit is a single commit enriched with its detail and diff responses.
type Commit struct {
	SHA     string
	Message string
	Author  string
	Date    string
	Files   []string // formatted as "<filename> (<changes> changes)"
	Diff    string   // raw unified diff
}

// PullRequest is a merged pull request with its changed files and combined patch.
type PullRequest struct {
	Number   int
	Title    string
	Author   string
	MergedAt string
	Files    []string
	Diff     string
}
