// Package problemrepository stores authored problems in PostgreSQL.
package problemrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/ports/secondary"
	"gitlab.com/dsa-judge.net/internal/domain"
	querybuilder "gitlab.com/dsa-judge.net/internal/utils"
)

var _ secondary.ProblemRepository = (*ProblemRepository)(nil)

// ProblemRepository implements the ProblemRepository interface with PostgreSQL
type ProblemRepository struct {
	db     *sqlx.DB
	schema string
	logger primary.Logger
}

// NewProblemRepository creates a new PostgreSQL problem repository
func NewProblemRepository(db *sqlx.DB, schema string, logger primary.Logger) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		schema: schema,
		logger: logger,
	}
}

// problemRow is the column layout of the problems table. Maps and testcases
// are JSONB, tags a text array.
type problemRow struct {
	ID                 uuid.UUID      `db:"id"`
	Title              string         `db:"title"`
	Description        string         `db:"description"`
	Difficulty         string         `db:"difficulty"`
	Tags               pq.StringArray `db:"tags"`
	Examples           []byte         `db:"examples"`
	Constraints        string         `db:"constraints"`
	Hints              sql.NullString `db:"hints"`
	TestCases          []byte         `db:"testcases"`
	CodeSnippets       []byte         `db:"code_snippets"`
	ReferenceSolutions []byte         `db:"reference_solutions"`
	UserID             string         `db:"user_id"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func columns() []string {
	tbl := domain.GetProblemTable()
	return []string{
		tbl.ID,
		tbl.Title,
		tbl.Description,
		tbl.Difficulty,
		tbl.Tags,
		tbl.Examples,
		tbl.Constraints,
		tbl.Hints,
		tbl.TestCases,
		tbl.CodeSnippets,
		tbl.ReferenceSolutions,
		tbl.UserID,
		tbl.CreatedAt,
		tbl.UpdatedAt,
	}
}

// CreateProblem inserts a problem
func (r *ProblemRepository) CreateProblem(ctx context.Context, problem *domain.Problem) error {
	row, err := toRow(problem)
	if err != nil {
		r.logger.Error("Failed to encode problem", "problemId", problem.ID, "error", err)
		return err
	}

	tbl := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(columns()...).
		Into(tbl.TableName()).
		Values(
			row.ID,
			row.Title,
			row.Description,
			row.Difficulty,
			row.Tags,
			row.Examples,
			row.Constraints,
			row.Hints,
			row.TestCases,
			row.CodeSnippets,
			row.ReferenceSolutions,
			row.UserID,
			row.CreatedAt,
			row.UpdatedAt,
		).Build()

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to insert problem", "problemId", problem.ID, "error", err)
		return fmt.Errorf("failed to insert problem: %w", err)
	}

	return nil
}

// UpdateProblem overwrites every mutable column of a problem
func (r *ProblemRepository) UpdateProblem(ctx context.Context, problem *domain.Problem) error {
	row, err := toRow(problem)
	if err != nil {
		r.logger.Error("Failed to encode problem", "problemId", problem.ID, "error", err)
		return err
	}

	tbl := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Update(tbl.TableName(), querybuilder.UpdateData{
			tbl.Title:              row.Title,
			tbl.Description:        row.Description,
			tbl.Difficulty:         row.Difficulty,
			tbl.Tags:               row.Tags,
			tbl.Examples:           row.Examples,
			tbl.Constraints:        row.Constraints,
			tbl.Hints:              row.Hints,
			tbl.TestCases:          row.TestCases,
			tbl.CodeSnippets:       row.CodeSnippets,
			tbl.ReferenceSolutions: row.ReferenceSolutions,
			tbl.UpdatedAt:          row.UpdatedAt,
		}).
		Where(tbl.ID+" = ?", row.ID).
		Build()

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to update problem", "problemId", problem.ID, "error", err)
		return fmt.Errorf("failed to update problem: %w", err)
	}

	return nil
}

// GetProblem retrieves a problem by ID, returning nil when it does not exist
func (r *ProblemRepository) GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	tbl := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns()...).
		From(tbl.TableName()).
		Where(tbl.ID+" = ?", id).
		Build()

	var row problemRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get problem", "problemId", id, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	return fromRow(&row)
}

// ListProblems lists problems, newest first
func (r *ProblemRepository) ListProblems(ctx context.Context, limit, offset int) ([]*domain.Problem, error) {
	tbl := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns()...).
		From(tbl.TableName()).
		OrderBy(tbl.CreatedAt, false).
		Limit(limit).
		Offset(offset).
		Build()

	var rows []problemRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	problems := make([]*domain.Problem, 0, len(rows))
	for i := range rows {
		problem, err := fromRow(&rows[i])
		if err != nil {
			r.logger.Error("Failed to decode problem", "problemId", rows[i].ID, "error", err)
			return nil, err
		}
		problems = append(problems, problem)
	}

	return problems, nil
}

// DeleteProblem removes a problem
func (r *ProblemRepository) DeleteProblem(ctx context.Context, id uuid.UUID) error {
	tbl := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Delete(tbl.TableName()).
		Where(tbl.ID+" = ?", id).
		Build()

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to delete problem", "problemId", id, "error", err)
		return fmt.Errorf("failed to delete problem: %w", err)
	}

	return nil
}

func toRow(problem *domain.Problem) (*problemRow, error) {
	row := &problemRow{
		ID:          problem.ID,
		Title:       problem.Title,
		Description: problem.Description,
		Difficulty:  string(problem.Difficulty),
		Tags:        pq.StringArray(problem.Tags),
		Constraints: problem.Constraints,
		UserID:      problem.UserID,
		CreatedAt:   problem.CreatedAt,
		UpdatedAt:   problem.UpdatedAt,
	}
	if row.Tags == nil {
		row.Tags = pq.StringArray{}
	}
	if problem.Hints != nil {
		row.Hints = sql.NullString{String: *problem.Hints, Valid: true}
	}

	var err error
	if row.Examples, err = marshal("examples", problem.Examples); err != nil {
		return nil, err
	}
	if row.TestCases, err = marshal("testcases", problem.TestCases); err != nil {
		return nil, err
	}
	if row.CodeSnippets, err = marshal("code snippets", problem.CodeSnippets); err != nil {
		return nil, err
	}
	if row.ReferenceSolutions, err = marshal("reference solutions", problem.ReferenceSolutions); err != nil {
		return nil, err
	}
	return row, nil
}

func fromRow(row *problemRow) (*domain.Problem, error) {
	problem := &domain.Problem{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Difficulty:  domain.Difficulty(row.Difficulty),
		Tags:        []string(row.Tags),
		Constraints: row.Constraints,
		UserID:      row.UserID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Hints.Valid {
		hints := row.Hints.String
		problem.Hints = &hints
	}

	if err := unmarshal("examples", row.Examples, &problem.Examples); err != nil {
		return nil, err
	}
	if err := unmarshal("testcases", row.TestCases, &problem.TestCases); err != nil {
		return nil, err
	}
	if err := unmarshal("code snippets", row.CodeSnippets, &problem.CodeSnippets); err != nil {
		return nil, err
	}
	if err := unmarshal("reference solutions", row.ReferenceSolutions, &problem.ReferenceSolutions); err != nil {
		return nil, err
	}
	return problem, nil
}

func marshal(field string, v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal problem %s: %w", field, err)
	}
	return data, nil
}

func unmarshal(field string, data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal problem %s: %w", field, err)
	}
	return nil
}
