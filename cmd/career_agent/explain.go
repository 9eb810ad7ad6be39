package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/classify"
	"github.com/jonathan/career-compass/internal/engine"
	"github.com/jonathan/career-compass/internal/taxonomy"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain how a single career scores for a user profile",
	Long:  "Scores one catalog career against a user profile and emits the full structured explanation: score breakdown, field analysis, zone, reasons, and confidence.",
	RunE:  runExplain,
}

var (
	explainProfile     string
	explainCatalog     string
	explainDatabaseURL string
	explainCareerID    string
	explainExploration int
	explainOutput      string
)

func init() {
	explainCmd.Flags().StringVarP(&explainProfile, "profile", "p", "", "Path to input UserProfile JSON file (required)")
	explainCmd.Flags().StringVarP(&explainCatalog, "catalog", "c", "", "Path to career catalog JSON file")
	explainCmd.Flags().StringVar(&explainDatabaseURL, "database-url", "", "PostgreSQL catalog connection URL")
	explainCmd.Flags().StringVar(&explainCareerID, "career-id", "", "ID of the career to explain (required)")
	explainCmd.Flags().IntVarP(&explainExploration, "exploration", "e", 0, "Exploration level 1..5 (0 = engine default)")
	explainCmd.Flags().StringVarP(&explainOutput, "out", "o", "", "Path to output explanation JSON file (required)")

	if err := explainCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := explainCmd.MarkFlagRequired("career-id"); err != nil {
		panic(fmt.Sprintf("failed to mark career-id flag as required: %v", err))
	}
	if err := explainCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	userProfile, err := loadProfile(explainProfile)
	if err != nil {
		return err
	}

	registry := taxonomy.Default()
	provider, closeCatalog, err := openCatalog(ctx, explainCatalog, explainDatabaseURL, registry)
	if err != nil {
		return err
	}
	defer closeCatalog()

	career, err := provider.Get(ctx, explainCareerID)
	if err != nil {
		return fmt.Errorf("failed to load career: %w", err)
	}

	recommendationEngine, err := engine.New(engine.DefaultConfig(), classify.New(registry))
	if err != nil {
		return err
	}

	explanation, err := recommendationEngine.Explain(ctx, userProfile, career, explainExploration)
	if err != nil {
		return fmt.Errorf("failed to explain career: %w", err)
	}

	return writeJSONArtifact(explainOutput, explanation)
}
