package problemrepository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap/zaptest"

	"gitlab.com/dsa-judge.net/internal/adapter/logging"
	"gitlab.com/dsa-judge.net/internal/domain"
)

func newTestRepo(t *testing.T) (*ProblemRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewProblemRepository(sqlx.NewDb(db, "postgres"), "public", logging.NewZapLoggerFrom(zaptest.NewLogger(t))), mock
}

func TestCreateProblem(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()
	p := &domain.Problem{
		ID:                 uuid.New(),
		Title:              "Two Sum",
		Difficulty:         domain.DifficultyEasy,
		Tags:               []string{"array"},
		TestCases:          []domain.TestCase{{Input: "1 2", Output: "3"}},
		ReferenceSolutions: map[domain.LanguageTrack]string{domain.LanguageGo: "package main"},
		UserID:             "admin-1",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO public.problems (id, title, description, difficulty, tags, examples, constraints, hints, testcases, code_snippets, reference_solutions, user_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)")).
		WithArgs(p.ID, "Two Sum", "", "EASY", sqlmock.AnyArg(), sqlmock.AnyArg(), "", nil,
			[]byte(`[{"input":"1 2","output":"3"}]`), sqlmock.AnyArg(), []byte(`{"GO":"package main"}`), "admin-1", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateProblem(context.Background(), p); err != nil {
		t.Fatalf("CreateProblem returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetProblem(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(columns()).AddRow(
		id.String(), "Two Sum", "desc", "EASY", "{array,hash}", []byte(`{"GO":{"input":"1 2","output":"3"}}`),
		"n < 10", nil, []byte(`[{"input":"1 2","output":"3"}]`), []byte(`{"GO":"func"}`), []byte(`{"GO":"package main"}`),
		"admin-1", now, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title")).
		WithArgs(id).
		WillReturnRows(rows)

	p, err := repo.GetProblem(context.Background(), id)
	if err != nil {
		t.Fatalf("GetProblem returned error: %v", err)
	}
	if p.ID != id || p.Title != "Two Sum" || p.Hints != nil {
		t.Fatalf("problem = %+v", p)
	}
	if len(p.Tags) != 2 || p.Tags[1] != "hash" {
		t.Fatalf("tags = %v", p.Tags)
	}
	if p.ReferenceSolutions[domain.LanguageGo] != "package main" || p.TestCases[0].Output != "3" {
		t.Fatalf("judging fields = %v %v", p.ReferenceSolutions, p.TestCases)
	}
	if p.Examples[domain.LanguageGo].Input != "1 2" {
		t.Fatalf("examples = %v", p.Examples)
	}
}

func TestGetProblemNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(columns()))

	p, err := repo.GetProblem(context.Background(), uuid.New())
	if err != nil || p != nil {
		t.Fatalf("GetProblem = %v, %v; want nil, nil", p, err)
	}
}

func TestListProblemsPaging(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM public.problems ORDER BY created_at DESC LIMIT $1 OFFSET $2")).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows(columns()))

	problems, err := repo.ListProblems(context.Background(), 10, 20)
	if err != nil {
		t.Fatalf("ListProblems returned error: %v", err)
	}
	if len(problems) != 0 {
		t.Fatalf("problems = %d, want 0", len(problems))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateAndDeleteProblem(t *testing.T) {
	repo, mock := newTestRepo(t)
	p := &domain.Problem{ID: uuid.New(), Title: "t", UpdatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE public.problems SET code_snippets = $1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM public.problems WHERE id = $1")).
		WithArgs(p.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateProblem(context.Background(), p); err != nil {
		t.Fatalf("UpdateProblem returned error: %v", err)
	}
	if err := repo.DeleteProblem(context.Background(), p.ID); err != nil {
		t.Fatalf("DeleteProblem returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
