// Package catalog provides read-only access to career records. The catalog is
// bulk-loaded once and treated as an immutable shared resource; in-flight
// requests must never observe a mutated record.
package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Query restricts a catalog search. Zero-valued fields are ignored.
type Query struct {
	Field      string
	Seniority  string
	SalaryMin  float64
	SalaryMax  float64
	TitleQuery string
	Limit      int
}

// Provider is the catalog contract the engine consumes. Implementations must
// return records satisfying the career invariants.
type Provider interface {
	// ListAll returns every career record in the catalog.
	ListAll(ctx context.Context) ([]*types.Career, error)
	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*types.Career, error)
	// Search returns records matching the query, at most Limit when set.
	Search(ctx context.Context, query Query) ([]*types.Career, error)
}

// MemoryCatalog is an in-memory Provider backed by a record slice. Records
// are shared, not copied; callers must not mutate them.
type MemoryCatalog struct {
	careers []*types.Career
	byID    map[string]*types.Career
}

// NewMemoryCatalog builds an in-memory catalog over the given records,
// ordered by ID for deterministic listing.
func NewMemoryCatalog(careers []*types.Career) *MemoryCatalog {
	sorted := append([]*types.Career(nil), careers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[string]*types.Career, len(sorted))
	for _, career := range sorted {
		byID[career.ID] = career
	}

	return &MemoryCatalog{careers: sorted, byID: byID}
}

// Len returns the number of records in the catalog.
func (c *MemoryCatalog) Len() int {
	return len(c.careers)
}

// ListAll returns every record in ID order.
func (c *MemoryCatalog) ListAll(_ context.Context) ([]*types.Career, error) {
	return append([]*types.Career(nil), c.careers...), nil
}

// Get returns the record with the given ID.
func (c *MemoryCatalog) Get(_ context.Context, id string) (*types.Career, error) {
	career, ok := c.byID[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return career, nil
}

// Search filters records by the query fields, preserving ID order.
func (c *MemoryCatalog) Search(_ context.Context, query Query) ([]*types.Career, error) {
	titleQuery := strings.ToLower(query.TitleQuery)

	results := make([]*types.Career, 0)
	for _, career := range c.careers {
		if query.Field != "" && career.Field != query.Field {
			continue
		}
		if query.Seniority != "" && career.Seniority != query.Seniority {
			continue
		}
		if query.SalaryMin > 0 && career.Salary.Max < query.SalaryMin {
			continue
		}
		if query.SalaryMax > 0 && career.Salary.Min > query.SalaryMax {
			continue
		}
		if titleQuery != "" && !strings.Contains(strings.ToLower(career.Title), titleQuery) {
			continue
		}

		results = append(results, career)
		if query.Limit > 0 && len(results) >= query.Limit {
			break
		}
	}

	return results, nil
}
