package github

//go:generate mockgen -source=interface.go -destination=../../mocks/repo_source.go -package=mocks

import "github.com/exitflynn/relnotes/internal/model"

// RepoSource is the read-only view of a repository branch consumed by the
// app layer. *Client implements it against the GitHub REST API.
type RepoSource interface {
	Repo() model.RepoRef
	CommitHistory(max int) ([]model.Commit, error)
	MergedPullRequests(max int) ([]model.PullRequest, error)
}
