package notes

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/exitflynn/relnotes/internal/gemini"
	"github.com/exitflynn/relnotes/internal/model"
)

// Generator turns commit history into markdown release notes via a text model
type Generator struct {
	llm gemini.TextGenerator
	log *logrus.Logger
}

// NewGenerator creates a new release-notes generator
func NewGenerator(llm gemini.TextGenerator, log *logrus.Logger) *Generator {
	return &Generator{
		llm: llm,
		log: log,
	}
}

// Generate builds the prompt and issues exactly one model call, returning the
// generated markdown unmodified. Oversize prompts are not truncated; they fail
// through the model client's error.
func (g *Generator) Generate(commits []model.Commit, pulls []model.PullRequest) (string, error) {
	prompt := BuildPrompt(commits, pulls)

	g.log.WithFields(logrus.Fields{
		"commits":       len(commits),
		"mergeRequests": len(pulls),
		"promptBytes":   len(prompt),
	}).Info("requesting release notes from model")

	markdown, err := g.llm.Generate(prompt)
	if err != nil {
		return "", fmt.Errorf("error generating release notes: %w", err)
	}

	return markdown, nil
}
