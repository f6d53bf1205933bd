package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no -config flag is given.
const DefaultPath = "relnotes.yaml"

// Config is the main configuration structure
type Config struct {
	GitHubToken      string  `yaml:"githubToken"`      // GitHub API token (or use env var)
	GoogleAPIKey     string  `yaml:"googleApiKey"`     // Gemini API key (or use env var)
	RepoURL          string  `yaml:"repoUrl"`          // Repository URL to analyze
	Branch           string  `yaml:"branch"`           // Branch whose history is analyzed
	MaxCommits       int     `yaml:"maxCommits"`       // Number of recent commits to fetch (default: 2)
	MaxMergeRequests int     `yaml:"maxMergeRequests"` // Number of merged PRs to fetch (default: 5)
	Model            string  `yaml:"model"`            // Text-generation model name
	Temperature      float32 `yaml:"temperature"`      // Sampling temperature for generation
	OutputPath       string  `yaml:"outputPath"`       // Where the markdown notes are written
	LogLevel         string  `yaml:"logLevel"`         // logrus level name (default: info)
}

// LoadConfig loads the configuration from a YAML file, overlays environment
// variables for values the file omits, and applies defaults.
func LoadConfig(path string) (*Config, error) {
	var config Config

	// The default config file is optional; an explicitly given one is not.
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	case os.IsNotExist(err) && !explicit:
		// Environment-only run.
	default:
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Use environment variables for values not set in the config
	if config.GitHubToken == "" {
		config.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
	if config.GoogleAPIKey == "" {
		config.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if config.RepoURL == "" {
		config.RepoURL = os.Getenv("REPO_URL")
	}
	if config.Branch == "" {
		config.Branch = os.Getenv("BRANCH_NAME")
	}
	if config.MaxCommits == 0 {
		config.MaxCommits = intFromEnv("MAX_COMMITS")
	}
	if config.MaxMergeRequests == 0 {
		config.MaxMergeRequests = intFromEnv("MAX_MERGE_REQUESTS")
	}

	// Set default values
	if config.MaxCommits == 0 {
		config.MaxCommits = 2
	}
	if config.MaxMergeRequests == 0 {
		config.MaxMergeRequests = 5
	}
	if config.Model == "" {
		config.Model = "gemini-1.5-flash-latest"
	}
	// Zero means unset here, so an explicit temperature of 0 cannot be
	// configured; the lowest expressible value is just above 0.
	if config.Temperature == 0 {
		config.Temperature = 0.2
	}
	if config.OutputPath == "" {
		config.OutputPath = "release_notes.md"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.RepoURL == "" {
		return fmt.Errorf("repository URL is required (set repoUrl or REPO_URL)")
	}

	if c.Branch == "" {
		return fmt.Errorf("branch name is required (set branch or BRANCH_NAME)")
	}

	if c.MaxCommits < 1 {
		return fmt.Errorf("maxCommits must be at least 1, got %d", c.MaxCommits)
	}

	if c.MaxMergeRequests < 0 {
		return fmt.Errorf("maxMergeRequests must not be negative, got %d", c.MaxMergeRequests)
	}

	return nil
}

func intFromEnv(key string) int {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return n
}
