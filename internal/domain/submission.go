package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission records a learner run against a problem's testcases.
type Submission struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	UserID        string        `json:"userId" db:"user_id"`
	ProblemID     uuid.UUID     `json:"problemId" db:"problem_id"`
	SourceCode    string        `json:"sourceCode" db:"source_code"`
	Language      LanguageTrack `json:"language" db:"language"`
	Stdin         string        `json:"stdin" db:"stdin"`   // JSON array, one entry per testcase
	Stdout        string        `json:"stdout" db:"stdout"` // JSON array
	Stderr        *string       `json:"stderr" db:"stderr"`
	CompileOutput *string       `json:"compileOutput" db:"compile_output"`
	Status        OverallStatus `json:"status" db:"status"`
	Time          string        `json:"time" db:"time"`     // JSON array of seconds
	Memory        string        `json:"memory" db:"memory"` // JSON array of KB
	PassedCount   int           `json:"passedCount" db:"passed_count"`
	TotalCount    int           `json:"totalCount" db:"total_count"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// NewSubmission creates a new submission
func NewSubmission(userID string, problemID uuid.UUID, language LanguageTrack, source string) *Submission {
	return &Submission{
		ID:         uuid.New(),
		UserID:     userID,
		ProblemID:  problemID,
		SourceCode: source,
		Language:   language,
		CreatedAt:  time.Now(),
	}
}

type SubmissionTable struct {
	ID            string
	UserID        string
	ProblemID     string
	SourceCode    string
	Language      string
	Stdin         string
	Stdout        string
	Stderr        string
	CompileOutput string
	Status        string
	Time          string
	Memory        string
	PassedCount   string
	TotalCount    string
	CreatedAt     string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:            "id",
		UserID:        "user_id",
		ProblemID:     "problem_id",
		SourceCode:    "source_code",
		Language:      "language",
		Stdin:         "stdin",
		Stdout:        "stdout",
		Stderr:        "stderr",
		CompileOutput: "compile_output",
		Status:        "status",
		Time:          "time",
		Memory:        "memory",
		PassedCount:   "passed_count",
		TotalCount:    "total_count",
		CreatedAt:     "created_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}

func (t SubmissionTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.ProblemID, t.SourceCode, t.Language,
		t.Stdin, t.Stdout, t.Stderr, t.CompileOutput, t.Status,
		t.Time, t.Memory, t.PassedCount, t.TotalCount, t.CreatedAt,
	}
}
