// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-compass/internal/engine"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Catalog string `json:"catalog,omitempty"` // Path to the career catalog JSON file

	// External collaborators
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL catalog connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for LLM-delegated refine

	// Engine knobs
	PrefilterLimit     int  `json:"prefilter_limit,omitempty"`      // Candidate cap after pre-filtering
	MaxPromptSize      int  `json:"max_prompt_size,omitempty"`      // Payload budget in bytes
	MaxCandidates      int  `json:"max_candidates,omitempty"`       // Candidate cap after the guard
	MaxRecommendations int  `json:"max_recommendations,omitempty"`  // Result size ceiling
	MinRecommendations int  `json:"min_recommendations,omitempty"`  // Result size floor (topped up)
	ExplorationLevel   int  `json:"exploration_level,omitempty"`    // 1 (conservative) .. 5 (exploratory)
	ClassicPrefilter   bool `json:"classic_prefilter,omitempty"`    // Disable the classifier-aware pre-filter path
	TraditionalFilter  bool `json:"traditional_filter,omitempty"`   // Re-apply plain skill/interest filter post-guard

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Catalog != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'catalog' and 'database_url' are mutually exclusive")
	}

	if c.PrefilterLimit < 0 {
		return fmt.Errorf("config error: 'prefilter_limit' must be non-negative")
	}
	if c.MaxPromptSize < 0 {
		return fmt.Errorf("config error: 'max_prompt_size' must be non-negative")
	}
	if c.MaxRecommendations < 0 || c.MinRecommendations < 0 {
		return fmt.Errorf("config error: recommendation limits must be non-negative")
	}
	if c.ExplorationLevel != 0 && (c.ExplorationLevel < 1 || c.ExplorationLevel > 5) {
		return fmt.Errorf("config error: 'exploration_level' must be in 1..5")
	}

	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	if result.PrefilterLimit == 0 {
		result.PrefilterLimit = defaults.PrefilterLimit
	}
	if result.MaxPromptSize == 0 {
		result.MaxPromptSize = defaults.MaxPromptSize
	}
	if result.MaxCandidates == 0 {
		result.MaxCandidates = defaults.MaxCandidates
	}
	if result.MaxRecommendations == 0 {
		result.MaxRecommendations = defaults.MaxRecommendations
	}
	if result.MinRecommendations == 0 {
		result.MinRecommendations = defaults.MinRecommendations
	}
	if result.ExplorationLevel == 0 {
		result.ExplorationLevel = defaults.ExplorationLevel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// EngineConfig maps the file configuration onto an engine configuration,
// starting from the engine defaults.
func (c *Config) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig()

	if c.PrefilterLimit > 0 {
		cfg.Prefilter.Limit = c.PrefilterLimit
	}
	cfg.Prefilter.UseEnhanced = !c.ClassicPrefilter
	cfg.UseTraditionalFilter = c.TraditionalFilter

	if c.MaxPromptSize > 0 {
		cfg.Guard.MaxPromptSize = c.MaxPromptSize
	}
	if c.MaxCandidates > 0 {
		cfg.Guard.MaxCandidates = c.MaxCandidates
	}
	if c.MaxRecommendations > 0 {
		cfg.MaxRecommendations = c.MaxRecommendations
	}
	if c.MinRecommendations > 0 {
		cfg.MinRecommendations = c.MinRecommendations
	}
	if c.ExplorationLevel >= 1 && c.ExplorationLevel <= 5 {
		cfg.ExplorationLevel = c.ExplorationLevel
	}

	return cfg
}
