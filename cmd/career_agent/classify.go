package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/classify"
	"github.com/jonathan/career-compass/internal/taxonomy"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Infer the field and seniority of a career title",
	RunE:  runClassify,
}

var (
	classifyTitle       string
	classifyDescription string
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyTitle, "title", "t", "", "Career title to classify (required)")
	classifyCmd.Flags().StringVarP(&classifyDescription, "description", "d", "", "Optional career description")

	if err := classifyCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, _ []string) error {
	classifier := classify.New(taxonomy.Default())
	field := classifier.ClassifyText(classifyTitle, classifyDescription)

	result := struct {
		Field      string  `json:"field"`
		Confidence float64 `json:"confidence"`
		Seniority  string  `json:"seniority"`
	}{
		Field:      field.Value,
		Confidence: field.Confidence,
		Seniority:  classify.Seniority(classifyTitle),
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal classification: %w", err)
	}

	cmd.Println(string(output))
	return nil
}
