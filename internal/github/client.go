package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v52/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/exitflynn/relnotes/internal/model"
)

// Client wraps the GitHub API client, scoped to a single repository branch
type Client struct {
	client *github.Client
	ctx    context.Context
	repo   model.RepoRef
	branch string
	log    *logrus.Logger
}

// CommitDetail represents the detail response for a single commit
type CommitDetail struct {
	Message string
	Author  string
	Date    string
	Files   []string
}

// ParseRepoURL extracts the owner and repository name from a repository URL.
// The first two non-empty path segments become owner and name; a trailing
// ".git" on the name is stripped.
func ParseRepoURL(raw string) (model.RepoRef, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return model.RepoRef{}, fmt.Errorf("error parsing repository URL: %w", err)
	}

	var parts []string
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}

	if len(parts) < 2 {
		return model.RepoRef{}, fmt.Errorf("repository URL %q does not contain an owner and name", raw)
	}

	return model.RepoRef{
		Owner: parts[0],
		Name:  strings.TrimSuffix(parts[1], ".git"),
	}, nil
}

// NewClient creates a new GitHub API client for one repository branch
func NewClient(token, repoURL, branch string, log *logrus.Logger) (*Client, error) {
	repo, err := ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	return &Client{
		client: client,
		ctx:    ctx,
		repo:   repo,
		branch: branch,
		log:    log,
	}, nil
}

// Repo returns the owner/name reference parsed from the repository URL
func (c *Client) Repo() model.RepoRef {
	return c.repo
}

// ListCommits returns the SHAs of the most recent commits on the branch,
// newest first, at most max entries from a single page.
func (c *Client) ListCommits(max int) ([]string, error) {
	commits, _, err := c.client.Repositories.ListCommits(c.ctx, c.repo.Owner, c.repo.Name,
		&github.CommitsListOptions{
			SHA: c.branch,
			ListOptions: github.ListOptions{
				PerPage: max,
			},
		})
	if err != nil {
		return nil, fmt.Errorf("error listing commits: %w", err)
	}

	shas := make([]string, 0, len(commits))
	for _, commit := range commits {
		shas = append(shas, commit.GetSHA())
	}

	return shas, nil
}

// CommitDetails fetches the full detail for one commit, including the
// changed files formatted as "<filename> (<changes> changes)".
func (c *Client) CommitDetails(sha string) (*CommitDetail, error) {
	commit, _, err := c.client.Repositories.GetCommit(c.ctx, c.repo.Owner, c.repo.Name, sha, nil)
	if err != nil {
		return nil, fmt.Errorf("error getting commit %s: %w", sha, err)
	}

	detail := &CommitDetail{
		Message: commit.GetCommit().GetMessage(),
		Author:  commit.GetCommit().GetAuthor().GetName(),
	}

	if date := commit.GetCommit().GetAuthor().GetDate(); !date.IsZero() {
		detail.Date = date.Format(time.RFC3339)
	}

	for _, f := range commit.Files {
		detail.Files = append(detail.Files, fmt.Sprintf("%s (%d changes)", f.GetFilename(), f.GetChanges()))
	}

	return detail, nil
}

// CommitDiff fetches the raw unified diff for one commit
func (c *Client) CommitDiff(sha string) (string, error) {
	diff, _, err := c.client.Repositories.GetCommitRaw(c.ctx, c.repo.Owner, c.repo.Name, sha,
		github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("error getting diff for commit %s: %w", sha, err)
	}

	return diff, nil
}

// CommitHistory fetches the most recent commits on the branch and enriches
// each with its detail and diff. Calls are sequential and any failure aborts
// the whole fetch with no partial result.
func (c *Client) CommitHistory(max int) ([]model.Commit, error) {
	shas, err := c.ListCommits(max)
	if err != nil {
		return nil, err
	}

	commits := make([]model.Commit, 0, len(shas))
	for _, sha := range shas {
		c.log.WithField("sha", sha).Debug("fetching commit detail and diff")

		detail, err := c.CommitDetails(sha)
		if err != nil {
			return nil, err
		}

		diff, err := c.CommitDiff(sha)
		if err != nil {
			return nil, err
		}

		commits = append(commits, model.Commit{
			SHA:     sha,
			Message: detail.Message,
			Author:  detail.Author,
			Date:    detail.Date,
			Files:   detail.Files,
			Diff:    diff,
		})
	}

	return commits, nil
}

// MergedPullRequests returns recently merged pull requests with their changed
// files and the concatenation of the per-file patches. The list call asks for
// max closed PRs targeting the analyzed branch; unmerged ones are filtered out.
func (c *Client) MergedPullRequests(max int) ([]model.PullRequest, error) {
	if max == 0 {
		return nil, nil
	}

	prs, _, err := c.client.PullRequests.List(c.ctx, c.repo.Owner, c.repo.Name,
		&github.PullRequestListOptions{
			State: "closed",
			Base:  c.branch,
			ListOptions: github.ListOptions{
				PerPage: max,
			},
		})
	if err != nil {
		return nil, fmt.Errorf("error listing pull requests: %w", err)
	}

	var result []model.PullRequest
	for _, pr := range prs {
		if pr.MergedAt == nil {
			continue
		}

		c.log.WithField("number", pr.GetNumber()).Debug("fetching pull request files")

		files, diff, err := c.pullRequestFiles(pr.GetNumber())
		if err != nil {
			return nil, err
		}

		result = append(result, model.PullRequest{
			Number:   pr.GetNumber(),
			Title:    pr.GetTitle(),
			Author:   pr.GetUser().GetLogin(),
			MergedAt: pr.GetMergedAt().Format(time.RFC3339),
			Files:    files,
			Diff:     diff,
		})
	}

	return result, nil
}

func (c *Client) pullRequestFiles(number int) ([]string, string, error) {
	files, _, err := c.client.PullRequests.ListFiles(c.ctx, c.repo.Owner, c.repo.Name, number, nil)
	if err != nil {
		return nil, "", fmt.Errorf("error listing files for pull request %d: %w", number, err)
	}

	names := make([]string, 0, len(files))
	var patches []string
	for _, f := range files {
		names = append(names, fmt.Sprintf("%s (%d changes)", f.GetFilename(), f.GetChanges()))
		if f.GetPatch() != "" {
			// Binary files carry no patch; skip them in the combined diff.
			patches = append(patches, f.GetPatch())
		}
	}

	return names, strings.Join(patches, "\n"), nil
}
