package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/exitflynn/relnotes/internal/app"
	"github.com/exitflynn/relnotes/internal/config"
	"github.com/exitflynn/relnotes/internal/gemini"
	"github.com/exitflynn/relnotes/internal/github"
	"github.com/exitflynn/relnotes/internal/notes"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file (optional, env vars used as fallback)")
	flag.Parse()

	log := logrus.New()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	source, err := github.NewClient(cfg.GitHubToken, cfg.RepoURL, cfg.Branch, log)
	if err != nil {
		log.Fatalf("Failed to create GitHub client: %v", err)
	}

	llm, err := gemini.NewClient(cfg.GoogleAPIKey, cfg.Model, cfg.Temperature)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer llm.Close()

	generator := notes.NewGenerator(llm, log)

	if err := app.Run(cfg, source, generator, os.Stdout, log); err != nil {
		log.Fatalf("Release notes generation failed: %v", err)
	}
}
