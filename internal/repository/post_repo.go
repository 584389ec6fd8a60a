package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blog-api/internal/database"
	"github.com/blog-api/internal/models"
	"github.com/lib/pq"
)

const postSelect = `
	SELECT p.id, p.title, p.content, p.author_id, p.categories, p.tags, p.is_published,
	       p.created_at, p.updated_at, u.name AS author_name, u.email AS author_email
	FROM posts p
	LEFT JOIN users u ON u.id = p.author_id`

// postRow is the joined shape of a post and its author
type postRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Content     string         `db:"content"`
	AuthorID    string         `db:"author_id"`
	Categories  pq.StringArray `db:"categories"`
	Tags        pq.StringArray `db:"tags"`
	IsPublished bool           `db:"is_published"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	AuthorName  sql.NullString `db:"author_name"`
	AuthorEmail sql.NullString `db:"author_email"`
}

func (row *postRow) toModel() *models.Post {
	post := &models.Post{
		ID:          row.ID,
		Title:       row.Title,
		Content:     row.Content,
		AuthorID:    row.AuthorID,
		Categories:  nonNilStrings(row.Categories),
		Tags:        nonNilStrings(row.Tags),
		IsPublished: row.IsPublished,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.AuthorName.Valid {
		post.Author = &models.OwnerSummary{
			ID:    row.AuthorID,
			Name:  row.AuthorName.String,
			Email: row.AuthorEmail.String,
		}
	}
	return post
}

// postRepo is the PostgreSQL implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

// Create inserts a new post
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, title, content, author_id, categories, tags, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, post.AuthorID,
		pq.Array(nonNilStrings(post.Categories)), pq.Array(nonNilStrings(post.Tags)),
		post.IsPublished, post.CreatedAt, post.UpdatedAt,
	)
	return err
}

// GetByID retrieves a post by ID with its author populated
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var row postRow
	err := r.db.GetContext(ctx, &row, postSelect+` WHERE p.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// Update writes the mutable fields of a post. The author is never changed.
func (r *postRepo) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, categories = $4, tags = $5, is_published = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content,
		pq.Array(nonNilStrings(post.Categories)), pq.Array(nonNilStrings(post.Tags)),
		post.IsPublished, post.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes a post by ID and reports whether it existed
func (r *postRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List returns one page of posts matching filter, newest first, and the total match count
func (r *postRepo) List(ctx context.Context, filter models.PostFilter, page models.Page) ([]*models.Post, int, error) {
	where, args := buildPostWhere(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM posts p"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d",
		postSelect, where, len(args)+1, len(args)+2)

	var rows []postRow
	if err := r.db.SelectContext(ctx, &rows, query, append(args, page.Limit, page.Offset())...); err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*models.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].toModel())
	}
	return posts, total, nil
}

// Count returns the total number of posts
func (r *postRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM posts")
	return count, err
}

func buildPostWhere(filter models.PostFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.PublishedOnly {
		conds = append(conds, "p.is_published = TRUE")
	}
	if filter.AuthorID != "" {
		add("p.author_id = $%d", filter.AuthorID)
	}
	if filter.Category != "" {
		add("$%d = ANY(p.categories)", filter.Category)
	}
	if filter.Search != "" {
		add("to_tsvector('english', p.title || ' ' || p.content) @@ plainto_tsquery('english', $%d)", filter.Search)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
