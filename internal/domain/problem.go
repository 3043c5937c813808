package domain

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty of a problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Problem is an authored coding problem. ReferenceSolutions must pass every
// testcase in every language before the problem is stored.
type Problem struct {
	ID                 uuid.UUID                 `json:"id"`
	Title              string                    `json:"title"`
	Description        string                    `json:"description"`
	Difficulty         Difficulty                `json:"difficulty"`
	Tags               []string                  `json:"tags"`
	Examples           map[LanguageTrack]Example `json:"examples"`
	Constraints        string                    `json:"constraints"`
	Hints              *string                   `json:"hints,omitempty"`
	TestCases          []TestCase                `json:"testcases"`
	CodeSnippets       map[LanguageTrack]string  `json:"codeSnippets"`
	ReferenceSolutions map[LanguageTrack]string  `json:"referenceSolutions"`
	UserID             string                    `json:"userId"`
	CreatedAt          time.Time                 `json:"createdAt"`
	UpdatedAt          time.Time                 `json:"updatedAt"`
}

// ProblemPatch carries the optional fields of an update request.
type ProblemPatch struct {
	Title              *string
	Description        *string
	Difficulty         *Difficulty
	Tags               []string
	Examples           map[LanguageTrack]Example
	Constraints        *string
	Hints              *string
	TestCases          []TestCase
	CodeSnippets       map[LanguageTrack]string
	ReferenceSolutions map[LanguageTrack]string
}

// TouchesJudging reports whether the patch changes anything the reference
// solutions are verified against.
func (p ProblemPatch) TouchesJudging() bool {
	return p.TestCases != nil || p.ReferenceSolutions != nil
}

// Apply copies the set fields of the patch onto the problem.
func (p ProblemPatch) Apply(problem *Problem) {
	if p.Title != nil {
		problem.Title = *p.Title
	}
	if p.Description != nil {
		problem.Description = *p.Description
	}
	if p.Difficulty != nil {
		problem.Difficulty = *p.Difficulty
	}
	if p.Tags != nil {
		problem.Tags = p.Tags
	}
	if p.Examples != nil {
		problem.Examples = p.Examples
	}
	if p.Constraints != nil {
		problem.Constraints = *p.Constraints
	}
	if p.Hints != nil {
		problem.Hints = p.Hints
	}
	if p.TestCases != nil {
		problem.TestCases = p.TestCases
	}
	if p.CodeSnippets != nil {
		problem.CodeSnippets = p.CodeSnippets
	}
	if p.ReferenceSolutions != nil {
		problem.ReferenceSolutions = p.ReferenceSolutions
	}
}

type ProblemTable struct {
	ID                 string
	Title              string
	Description        string
	Difficulty         string
	Tags               string
	Examples           string
	Constraints        string
	Hints              string
	TestCases          string
	CodeSnippets       string
	ReferenceSolutions string
	UserID             string
	CreatedAt          string
	UpdatedAt          string
}

func GetProblemTable() ProblemTable {
	return ProblemTable{
		ID:                 "id",
		Title:              "title",
		Description:        "description",
		Difficulty:         "difficulty",
		Tags:               "tags",
		Examples:           "examples",
		Constraints:        "constraints",
		Hints:              "hints",
		TestCases:          "testcases",
		CodeSnippets:       "code_snippets",
		ReferenceSolutions: "reference_solutions",
		UserID:             "user_id",
		CreatedAt:          "created_at",
		UpdatedAt:          "updated_at",
	}
}

func (ProblemTable) TableName() string {
	return "problems"
}
