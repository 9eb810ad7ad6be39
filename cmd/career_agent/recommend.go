package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/classify"
	appconfig "github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/engine"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/profile"
	"github.com/jonathan/career-compass/internal/taxonomy"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate ranked career recommendations for a user profile",
	Long:  "Runs the full recommendation pipeline for a user profile against a career catalog, producing a ranked recommendation list partitioned into Safe, Stretch, and Adventure zones.",
	RunE:  runRecommend,
}

var (
	recommendProfile     string
	recommendCatalog     string
	recommendDatabaseURL string
	recommendConfig      string
	recommendOutput      string
	recommendLimit       int
	recommendExploration int
	recommendVerbose     bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to input UserProfile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendCatalog, "catalog", "c", "", "Path to career catalog JSON file")
	recommendCmd.Flags().StringVar(&recommendDatabaseURL, "database-url", "", "PostgreSQL catalog connection URL")
	recommendCmd.Flags().StringVar(&recommendConfig, "config", "", "Path to config JSON file")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output recommendations JSON file (required)")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "l", 0, "Maximum number of recommendations (0 = engine default)")
	recommendCmd.Flags().IntVarP(&recommendExploration, "exploration", "e", 0, "Exploration level 1..5 (0 = engine default)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print detailed pipeline information")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// 1. Resolve configuration
	fileConfig := &appconfig.Config{
		Catalog:          recommendCatalog,
		DatabaseURL:      recommendDatabaseURL,
		ExplorationLevel: recommendExploration,
	}
	if recommendConfig != "" {
		loaded, err := appconfig.LoadConfig(recommendConfig)
		if err != nil {
			return err
		}
		merged := fileConfig.MergeWithDefaults(*loaded)
		fileConfig = &merged
	}
	if err := fileConfig.Validate(); err != nil {
		return err
	}

	// 2. Load profile and catalog
	userProfile, err := loadProfile(recommendProfile)
	if err != nil {
		return err
	}

	registry := taxonomy.Default()
	provider, closeCatalog, err := openCatalog(ctx, fileConfig.Catalog, fileConfig.DatabaseURL, registry)
	if err != nil {
		return err
	}
	defer closeCatalog()

	// 3. Build the engine and run
	recommendationEngine, err := engine.New(fileConfig.EngineConfig(), classify.New(registry))
	if err != nil {
		return err
	}

	if recommendVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintProfileSummary(profile.Summarize(userProfile))
	}

	recommendations, err := recommendationEngine.GetRecommendations(ctx, userProfile, provider, engine.Options{
		Limit:            recommendLimit,
		ExplorationLevel: recommendExploration,
	})
	if err != nil {
		return fmt.Errorf("failed to generate recommendations: %w", err)
	}

	if recommendVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintRecommendations(recommendations)
	}

	// 4. Write and validate output
	if err := writeJSONArtifact(recommendOutput, recommendations); err != nil {
		return err
	}
	validateOutput("schemas/recommendations.schema.json", recommendOutput)

	return nil
}
