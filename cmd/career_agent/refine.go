package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/classify"
	"github.com/jonathan/career-compass/internal/engine"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Reorder recommendations according to a free-form prompt",
	Long:  "Reorders an existing recommendation list according to a free-form instruction. With an API key the reordering is delegated to the LLM; without one, local keyword boosting applies. Failures leave the list unchanged.",
	RunE:  runRefine,
}

var (
	refineRecommendations string
	refinePrompt          string
	refineAPIKey          string
	refineOutput          string
)

func init() {
	refineCmd.Flags().StringVarP(&refineRecommendations, "recommendations", "r", "", "Path to input recommendations JSON file (required)")
	refineCmd.Flags().StringVar(&refinePrompt, "prompt", "", "Free-form refinement instruction (required)")
	refineCmd.Flags().StringVar(&refineAPIKey, "api-key", "", "Gemini API key for LLM-delegated refinement (optional, falls back to GEMINI_API_KEY)")
	refineCmd.Flags().StringVarP(&refineOutput, "out", "o", "", "Path to output recommendations JSON file (required)")

	if err := refineCmd.MarkFlagRequired("recommendations"); err != nil {
		panic(fmt.Sprintf("failed to mark recommendations flag as required: %v", err))
	}
	if err := refineCmd.MarkFlagRequired("prompt"); err != nil {
		panic(fmt.Sprintf("failed to mark prompt flag as required: %v", err))
	}
	if err := refineCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	content, err := os.ReadFile(refineRecommendations)
	if err != nil {
		return fmt.Errorf("failed to read recommendations file %s: %w", refineRecommendations, err)
	}

	var recommendations []types.Recommendation
	if err := json.Unmarshal(content, &recommendations); err != nil {
		return fmt.Errorf("failed to unmarshal recommendations JSON: %w", err)
	}

	recommendationEngine, err := engine.New(engine.DefaultConfig(), classify.New(taxonomy.Default()))
	if err != nil {
		return err
	}

	apiKey := refineAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		recommendationEngine = recommendationEngine.WithRefiner(llm.NewRefiner(client))
	}

	result := recommendationEngine.Refine(ctx, recommendations, refinePrompt, nil)
	if result.RefineFailed {
		_, _ = fmt.Fprintln(os.Stderr, "Warning: external refinement failed; returning the original order")
	}

	if err := writeJSONArtifact(refineOutput, result.Recommendations); err != nil {
		return err
	}
	validateOutput("schemas/recommendations.schema.json", refineOutput)

	return nil
}
