package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

// loadProfile reads and unmarshals a user profile JSON file.
func loadProfile(path string) (*types.UserProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var userProfile types.UserProfile
	if err := json.Unmarshal(content, &userProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	return &userProfile, nil
}

// openCatalog builds a catalog provider from either a JSON file or a
// database URL. The returned closer releases any held resources.
func openCatalog(ctx context.Context, catalogPath, databaseURL string, registry *taxonomy.Registry) (catalog.Provider, func(), error) {
	switch {
	case catalogPath != "" && databaseURL != "":
		return nil, nil, fmt.Errorf("catalog file and database URL are mutually exclusive")
	case catalogPath != "":
		memoryCatalog, err := catalog.Load(catalogPath, registry)
		if err != nil {
			return nil, nil, err
		}
		return memoryCatalog, func() {}, nil
	case databaseURL != "":
		postgresCatalog, err := catalog.Connect(ctx, databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return postgresCatalog, postgresCatalog.Close, nil
	default:
		return nil, nil, fmt.Errorf("either a catalog file or a database URL is required")
	}
}

// writeJSONArtifact marshals content with indentation and writes it to path,
// creating the output directory when needed.
func writeJSONArtifact(path string, content any) error {
	jsonOutput, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// validateOutput checks an output artifact against a schema when one can be
// resolved. Output validation is a safety check, not a requirement; failures
// only warn.
func validateOutput(schemaRelPath, jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
	}
}
