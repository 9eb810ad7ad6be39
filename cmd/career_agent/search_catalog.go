package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/taxonomy"
)

var searchCatalogCmd = &cobra.Command{
	Use:   "search-catalog",
	Short: "Search the career catalog by field, seniority, salary, or title",
	RunE:  runSearchCatalog,
}

var (
	searchCatalogPath   string
	searchDatabaseURL   string
	searchField         string
	searchSeniority     string
	searchSalaryMin     float64
	searchSalaryMax     float64
	searchTitle         string
	searchLimit         int
	searchCatalogOutput string
)

func init() {
	searchCatalogCmd.Flags().StringVarP(&searchCatalogPath, "catalog", "c", "", "Path to career catalog JSON file")
	searchCatalogCmd.Flags().StringVar(&searchDatabaseURL, "database-url", "", "PostgreSQL catalog connection URL")
	searchCatalogCmd.Flags().StringVar(&searchField, "field", "", "Filter by taxonomy field tag")
	searchCatalogCmd.Flags().StringVar(&searchSeniority, "seniority", "", "Filter by seniority tag")
	searchCatalogCmd.Flags().Float64Var(&searchSalaryMin, "salary-min", 0, "Minimum acceptable salary")
	searchCatalogCmd.Flags().Float64Var(&searchSalaryMax, "salary-max", 0, "Maximum acceptable salary")
	searchCatalogCmd.Flags().StringVarP(&searchTitle, "title", "t", "", "Title substring to match")
	searchCatalogCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "Maximum number of results (0 = unlimited)")
	searchCatalogCmd.Flags().StringVarP(&searchCatalogOutput, "out", "o", "", "Path to output JSON file (required)")

	if err := searchCatalogCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(searchCatalogCmd)
}

func runSearchCatalog(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	provider, closeCatalog, err := openCatalog(ctx, searchCatalogPath, searchDatabaseURL, taxonomy.Default())
	if err != nil {
		return err
	}
	defer closeCatalog()

	careers, err := provider.Search(ctx, catalog.Query{
		Field:      searchField,
		Seniority:  searchSeniority,
		SalaryMin:  searchSalaryMin,
		SalaryMax:  searchSalaryMax,
		TitleQuery: searchTitle,
		Limit:      searchLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to search catalog: %w", err)
	}

	return writeJSONArtifact(searchCatalogOutput, careers)
}
