package problems

import "gitlab.com/dsa-judge.net/internal/domain"

// CreateProblemRequest is the body of POST /api/problems
type CreateProblemRequest struct {
	Title              string                    `json:"title"`
	Description        string                    `json:"description"`
	Difficulty         domain.Difficulty         `json:"difficulty"`
	Tags               []string                  `json:"tags"`
	Examples           map[string]domain.Example `json:"examples"`
	Constraints        string                    `json:"constraints"`
	Hints              *string                   `json:"hints"`
	TestCases          []domain.TestCase         `json:"testcases"`
	CodeSnippets       map[string]string         `json:"codeSnippets"`
	ReferenceSolutions map[string]string         `json:"referenceSolutions"`
}

func (r CreateProblemRequest) toDomain() *domain.Problem {
	return &domain.Problem{
		Title:              r.Title,
		Description:        r.Description,
		Difficulty:         r.Difficulty,
		Tags:               r.Tags,
		Examples:           examplesByTrack(r.Examples),
		Constraints:        r.Constraints,
		Hints:              r.Hints,
		TestCases:          r.TestCases,
		CodeSnippets:       byTrack(r.CodeSnippets),
		ReferenceSolutions: byTrack(r.ReferenceSolutions),
	}
}

// UpdateProblemRequest is the body of PUT /api/problems/{problemId}. Omitted
// fields keep their stored value.
type UpdateProblemRequest struct {
	Title              *string                   `json:"title"`
	Description        *string                   `json:"description"`
	Difficulty         *domain.Difficulty        `json:"difficulty"`
	Tags               []string                  `json:"tags"`
	Examples           map[string]domain.Example `json:"examples"`
	Constraints        *string                   `json:"constraints"`
	Hints              *string                   `json:"hints"`
	TestCases          []domain.TestCase         `json:"testcases"`
	CodeSnippets       map[string]string         `json:"codeSnippets"`
	ReferenceSolutions map[string]string         `json:"referenceSolutions"`
}

func (r UpdateProblemRequest) toPatch() domain.ProblemPatch {
	return domain.ProblemPatch{
		Title:              r.Title,
		Description:        r.Description,
		Difficulty:         r.Difficulty,
		Tags:               r.Tags,
		Examples:           examplesByTrack(r.Examples),
		Constraints:        r.Constraints,
		Hints:              r.Hints,
		TestCases:          r.TestCases,
		CodeSnippets:       byTrack(r.CodeSnippets),
		ReferenceSolutions: byTrack(r.ReferenceSolutions),
	}
}

type ListProblemsResponse struct {
	Problems []*domain.Problem `json:"problems"`
}

func byTrack(in map[string]string) map[domain.LanguageTrack]string {
	if in == nil {
		return nil
	}
	out := make(map[domain.LanguageTrack]string, len(in))
	for k, v := range in {
		out[domain.LanguageTrack(k)] = v
	}
	return out
}

func examplesByTrack(in map[string]domain.Example) map[domain.LanguageTrack]domain.Example {
	if in == nil {
		return nil
	}
	out := make(map[domain.LanguageTrack]domain.Example, len(in))
	for k, v := range in {
		out[domain.LanguageTrack(k)] = v
	}
	return out
}
