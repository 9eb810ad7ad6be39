package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/career-compass/internal/types"
)

// PostgresCatalog is a Provider backed by a PostgreSQL connection pool, for
// deployments where the outer service keeps the catalog in SQL rather than a
// bulk-load file.
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the catalog database.
func Connect(ctx context.Context, databaseURL string) (*PostgresCatalog, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresCatalog{pool: pool}, nil
}

// Close closes the connection pool.
func (c *PostgresCatalog) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

const careerColumns = `id, title, description, field, seniority,
       salary_min, salary_max, salary_currency,
       required_skills, required_soft_skills, preferred_skills,
       education, min_years, max_years, preferences,
       industries, companies, work_environments, remote_options,
       learning_path, demand_level, growth_potential, day_in_life`

// ListAll returns every career record ordered by ID.
func (c *PostgresCatalog) ListAll(ctx context.Context) ([]*types.Career, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT `+careerColumns+` FROM careers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	defer rows.Close()

	return scanCareers(rows)
}

// Get returns the career with the given ID, or a NotFoundError.
func (c *PostgresCatalog) Get(ctx context.Context, id string) (*types.Career, error) {
	row := c.pool.QueryRow(ctx,
		`SELECT `+careerColumns+` FROM careers WHERE id = $1`, id)

	career, err := scanCareer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get career: %w", err)
	}
	return career, nil
}

// Search returns careers matching the query, ordered by ID.
func (c *PostgresCatalog) Search(ctx context.Context, query Query) ([]*types.Career, error) {
	sql := `SELECT ` + careerColumns + ` FROM careers WHERE 1=1`
	args := make([]any, 0, 5)

	if query.Field != "" {
		args = append(args, query.Field)
		sql += fmt.Sprintf(" AND field = $%d", len(args))
	}
	if query.Seniority != "" {
		args = append(args, query.Seniority)
		sql += fmt.Sprintf(" AND seniority = $%d", len(args))
	}
	if query.SalaryMin > 0 {
		args = append(args, query.SalaryMin)
		sql += fmt.Sprintf(" AND salary_max >= $%d", len(args))
	}
	if query.SalaryMax > 0 {
		args = append(args, query.SalaryMax)
		sql += fmt.Sprintf(" AND salary_min <= $%d", len(args))
	}
	if query.TitleQuery != "" {
		args = append(args, "%"+query.TitleQuery+"%")
		sql += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}

	sql += " ORDER BY id"
	if query.Limit > 0 {
		args = append(args, query.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := c.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search careers: %w", err)
	}
	defer rows.Close()

	return scanCareers(rows)
}

// Insert stores a career record, assigning an ID when the record has none.
// Used by catalog import tooling, never by the recommendation path.
func (c *PostgresCatalog) Insert(ctx context.Context, career *types.Career) error {
	if career.ID == "" {
		career.ID = uuid.NewString()
	}

	skillsJSON, err := json.Marshal(career.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}
	preferencesJSON, err := json.Marshal(career.Preferences)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	_, err = c.pool.Exec(ctx,
		`INSERT INTO careers (`+careerColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		         $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		 ON CONFLICT (id) DO NOTHING`,
		career.ID, career.Title, career.Description, career.Field, career.Seniority,
		career.Salary.Min, career.Salary.Max, career.Salary.Currency,
		skillsJSON, career.RequiredSoftSkills, career.PreferredSkills,
		career.Education, career.MinYears, career.MaxYears, preferencesJSON,
		career.Industries, career.Companies, career.WorkEnvironments, career.RemoteOptions,
		career.LearningPath, career.DemandLevel, career.GrowthPotential, career.DayInLife,
	)
	if err != nil {
		return fmt.Errorf("failed to insert career %s: %w", career.ID, err)
	}
	return nil
}

// scanCareers collects all rows into career records.
func scanCareers(rows pgx.Rows) ([]*types.Career, error) {
	careers := make([]*types.Career, 0)
	for rows.Next() {
		career, err := scanCareer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan career: %w", err)
		}
		careers = append(careers, career)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read careers: %w", err)
	}
	return careers, nil
}

// scanCareer scans one row into a career record, decoding JSONB columns.
func scanCareer(row pgx.Row) (*types.Career, error) {
	var career types.Career
	var skillsJSON, preferencesJSON []byte

	err := row.Scan(&career.ID, &career.Title, &career.Description,
		&career.Field, &career.Seniority,
		&career.Salary.Min, &career.Salary.Max, &career.Salary.Currency,
		&skillsJSON, &career.RequiredSoftSkills, &career.PreferredSkills,
		&career.Education, &career.MinYears, &career.MaxYears, &preferencesJSON,
		&career.Industries, &career.Companies, &career.WorkEnvironments, &career.RemoteOptions,
		&career.LearningPath, &career.DemandLevel, &career.GrowthPotential, &career.DayInLife)
	if err != nil {
		return nil, err
	}

	if skillsJSON != nil {
		if err := json.Unmarshal(skillsJSON, &career.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to decode required skills for career %s: %w", career.ID, err)
		}
	}
	if preferencesJSON != nil {
		if err := json.Unmarshal(preferencesJSON, &career.Preferences); err != nil {
			return nil, fmt.Errorf("failed to decode preferences for career %s: %w", career.ID, err)
		}
	}

	return &career, nil
}
