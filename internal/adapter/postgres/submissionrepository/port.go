// Package submissionrepository stores learner submissions in PostgreSQL.
package submissionrepository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/ports/secondary"
	"gitlab.com/dsa-judge.net/internal/domain"
	querybuilder "gitlab.com/dsa-judge.net/internal/utils"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements the SubmissionRepository interface with PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	schema string
	logger primary.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, schema string, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		schema: schema,
		logger: logger,
	}
}

// SaveSubmission inserts a submission
func (r *SubmissionRepository) SaveSubmission(ctx context.Context, s *domain.Submission) error {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(tbl.Columns()...).
		Into(tbl.TableName()).
		Values(
			s.ID,
			s.UserID,
			s.ProblemID,
			s.SourceCode,
			s.Language,
			s.Stdin,
			s.Stdout,
			s.Stderr,
			s.CompileOutput,
			s.Status,
			s.Time,
			s.Memory,
			s.PassedCount,
			s.TotalCount,
			s.CreatedAt,
		).Build()

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to save submission", "submissionId", s.ID, "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// ListByUser lists a user's submissions, newest first
func (r *SubmissionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	qb := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.Columns()...).
		From(tbl.TableName()).
		Where(tbl.UserID+" = ?", userID).
		OrderBy(tbl.CreatedAt, false)

	return r.list(ctx, qb)
}

// ListByUserAndProblem lists a user's submissions for one problem, newest first
func (r *SubmissionRepository) ListByUserAndProblem(ctx context.Context, userID string, problemID uuid.UUID) ([]*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	qb := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.Columns()...).
		From(tbl.TableName()).
		Where(tbl.UserID+" = ?", userID).
		And(tbl.ProblemID+" = ?", problemID).
		OrderBy(tbl.CreatedAt, false)

	return r.list(ctx, qb)
}

// CountByProblem counts the submissions made against a problem
func (r *SubmissionRepository) CountByProblem(ctx context.Context, problemID uuid.UUID) (int, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select("COUNT(*)").
		From(tbl.TableName()).
		Where(tbl.ProblemID+" = ?", problemID).
		Build()

	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to count submissions", "problemId", problemID, "error", err)
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	return count, nil
}

func (r *SubmissionRepository) list(ctx context.Context, qb querybuilder.QueryBuilder) ([]*domain.Submission, error) {
	query, args := qb.Build()

	var submissions []*domain.Submission
	if err := r.db.SelectContext(ctx, &submissions, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to list submissions", "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return submissions, nil
}
