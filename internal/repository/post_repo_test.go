package repository

import (
	"errors"
	"testing"

	"github.com/blog-api/internal/models"
	"github.com/lib/pq"
)

func TestBuildPostWhere(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.PostFilter
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "no filter",
			filter:    models.PostFilter{},
			wantWhere: "",
		},
		{
			name:      "published only",
			filter:    models.PostFilter{PublishedOnly: true},
			wantWhere: " WHERE p.is_published = TRUE",
		},
		{
			name:      "author and category",
			filter:    models.PostFilter{AuthorID: "a", Category: "go", PublishedOnly: true},
			wantWhere: " WHERE p.is_published = TRUE AND p.author_id = $1 AND $2 = ANY(p.categories)",
			wantArgs:  2,
		},
		{
			name:      "search",
			filter:    models.PostFilter{Search: "gin router"},
			wantWhere: " WHERE to_tsvector('english', p.title || ' ' || p.content) @@ plainto_tsquery('english', $1)",
			wantArgs:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildPostWhere(tt.filter)
			if where != tt.wantWhere {
				t.Errorf("where = %q, want %q", where, tt.wantWhere)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("got %d args, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Error("23505 should be a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Error("23503 is a foreign key violation")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Error("plain errors are not unique violations")
	}
}

func TestNonNilStrings(t *testing.T) {
	if got := nonNilStrings(nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %#v", got)
	}
}
