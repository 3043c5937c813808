package querybuilder

import (
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		build     func() QueryBuilder
		wantQuery string
		wantArgs  []interface{}
	}{
		{
			name: "select with conditions and paging",
			build: func() QueryBuilder {
				return NewQueryBuilder("public").
					Select("id", "title").
					From("problems").
					Where("user_id = ?", "u1").
					And("difficulty = ?", "EASY").
					OrderBy("created_at", false).
					Limit(10).
					Offset(20)
			},
			wantQuery: "SELECT id, title FROM public.problems WHERE user_id = ? AND difficulty = ? ORDER BY created_at DESC LIMIT ? OFFSET ?",
			wantArgs:  []interface{}{"u1", "EASY", 10, 20},
		},
		{
			name: "select without schema",
			build: func() QueryBuilder {
				return NewQueryBuilder("").Select("COUNT(*)").From("submissions")
			},
			wantQuery: "SELECT COUNT(*) FROM submissions",
		},
		{
			name: "multi row insert",
			build: func() QueryBuilder {
				return NewQueryBuilder("public").Into("submissions").Insert("id", "status").
					Values("a", "ACCEPTED").
					Values("b", "FAILED")
			},
			wantQuery: "INSERT INTO public.submissions (id, status) VALUES (?, ?), (?, ?)",
			wantArgs:  []interface{}{"a", "ACCEPTED", "b", "FAILED"},
		},
		{
			name: "update in sorted column order",
			build: func() QueryBuilder {
				return NewQueryBuilder("public").
					Update("problems", UpdateData{"title": "t", "description": "d"}).
					Where("id = ?", "a")
			},
			wantQuery: "UPDATE public.problems SET description = ?, title = ? WHERE id = ?",
			wantArgs:  []interface{}{"d", "t", "a"},
		},
		{
			name: "delete",
			build: func() QueryBuilder {
				return NewQueryBuilder("public").Delete("problems").Where("id = ?", "a")
			},
			wantQuery: "DELETE FROM public.problems WHERE id = ?",
			wantArgs:  []interface{}{"a"},
		},
		{
			name: "delete without condition is refused",
			build: func() QueryBuilder {
				return NewQueryBuilder("public").Delete("problems")
			},
		},
		{
			name: "insert with a short row is refused",
			build: func() QueryBuilder {
				return NewQueryBuilder("public").Into("problems").Insert("id", "title").Values("a")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := tt.build().Build()
			if query != tt.wantQuery {
				t.Fatalf("query = %q, want %q", query, tt.wantQuery)
			}
			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}
