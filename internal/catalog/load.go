package catalog

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

// catalogFile is the on-disk shape of a bulk-load file.
type catalogFile struct {
	Careers []*types.Career `json:"careers"`
}

// Load bulk-loads a catalog from a JSON file. The file is validated against
// the catalog schema when one can be resolved, and every record is checked
// against the career invariants. Records without an ID are assigned one.
func Load(path string, registry *taxonomy.Registry) (*MemoryCatalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/career_catalog.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
		}
	}

	var file catalogFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}

	for _, career := range file.Careers {
		if career.ID == "" {
			career.ID = uuid.NewString()
		}
		if err := ValidateRecord(career, registry); err != nil {
			return nil, err
		}
	}

	return NewMemoryCatalog(file.Careers), nil
}

// ValidateRecord checks a single career record against the catalog invariants.
func ValidateRecord(career *types.Career, registry *taxonomy.Registry) error {
	if career.Title == "" {
		return &RecordError{ID: career.ID, Message: "title is empty"}
	}
	if career.Salary.Max > 0 && career.Salary.Min > career.Salary.Max {
		return &RecordError{ID: career.ID, Message: "salary min exceeds max"}
	}
	if career.MaxYears > 0 && career.MinYears > career.MaxYears {
		return &RecordError{ID: career.ID, Message: "min years exceeds max years"}
	}

	if career.Field != "" && career.Field != types.FieldOther {
		if _, ok := registry.Lookup(career.Field); !ok {
			return &RecordError{ID: career.ID, Message: "unknown field " + career.Field}
		}
	}

	switch career.Seniority {
	case "", types.SeniorityJunior, types.SeniorityMid, types.SenioritySenior, types.SeniorityExecutive:
	default:
		return &RecordError{ID: career.ID, Message: "unknown seniority " + career.Seniority}
	}

	for _, weight := range []int{
		career.Preferences.DataOriented, career.Preferences.PeopleOriented,
		career.Preferences.Creative, career.Preferences.ProblemSolving,
		career.Preferences.Leadership, career.Preferences.HandsOn,
		career.Preferences.Physical, career.Preferences.Outdoor,
		career.Preferences.MechanicalAptitude,
	} {
		if weight < 1 || weight > 5 {
			return &RecordError{ID: career.ID, Message: "preference weight out of range"}
		}
	}

	return nil
}
