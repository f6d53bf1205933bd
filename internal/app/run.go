package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/exitflynn/relnotes/internal/config"
	"github.com/exitflynn/relnotes/internal/diff"
	"github.com/exitflynn/relnotes/internal/github"
	"github.com/exitflynn/relnotes/internal/model"
	"github.com/exitflynn/relnotes/internal/notes"
)

// Run orchestrates the full workflow: commit history -> merged PRs -> console
// summary -> model call -> markdown output. Every step is sequential and any
// failure aborts the run with no partial output file.
func Run(cfg *config.Config, source github.RepoSource, generator *notes.Generator, out io.Writer, log *logrus.Logger) error {
	repo := source.Repo()
	log.WithFields(logrus.Fields{
		"owner":  repo.Owner,
		"repo":   repo.Name,
		"branch": cfg.Branch,
	}).Info("analyzing repository")

	commits, err := source.CommitHistory(cfg.MaxCommits)
	if err != nil {
		return fmt.Errorf("error fetching commit history: %w", err)
	}

	pulls, err := source.MergedPullRequests(cfg.MaxMergeRequests)
	if err != nil {
		return fmt.Errorf("error fetching merge requests: %w", err)
	}

	printCommits(out, commits)
	printPullRequests(out, pulls)

	markdown, err := generator.Generate(commits, pulls)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nGenerated Release Notes for %s (Branch: %s)\n", cfg.RepoURL, cfg.Branch)
	fmt.Fprintln(out, markdown)

	if err := os.WriteFile(cfg.OutputPath, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("error writing release notes: %w", err)
	}

	log.WithField("path", cfg.OutputPath).Info("release notes written")
	return nil
}

func printCommits(out io.Writer, commits []model.Commit) {
	fmt.Fprintln(out, "\nCommits Analyzed:")
	for _, c := range commits {
		fmt.Fprintf(out, "- [%s] %s (%s)\n", shortSHA(c.SHA), firstLine(c.Message), diff.ParseStats(c.Diff))
		fmt.Fprintf(out, "  By %s on %s\n", c.Author, c.Date)
		fmt.Fprintf(out, "  Files: %s\n\n", strings.Join(c.Files, ", "))
	}
}

func printPullRequests(out io.Writer, pulls []model.PullRequest) {
	fmt.Fprintln(out, "\nMerge Requests Analyzed:")
	for _, pr := range pulls {
		fmt.Fprintf(out, "- [!%d] %s (%s)\n", pr.Number, pr.Title, diff.ParseStats(pr.Diff))
		fmt.Fprintf(out, "  By %s on %s\n", pr.Author, pr.MergedAt)
		fmt.Fprintf(out, "  Files: %s\n\n", strings.Join(pr.Files, ", "))
	}
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}
