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
)

const commentSelect = `
	SELECT c.id, c.content, c.author_id, c.post_id, c.is_approved, c.created_at, c.updated_at,
	       u.name AS author_name, u.email AS author_email
	FROM comments c
	LEFT JOIN users u ON u.id = c.author_id`

// commentRow is the joined shape of a comment and its author
type commentRow struct {
	ID          string         `db:"id"`
	Content     string         `db:"content"`
	AuthorID    string         `db:"author_id"`
	PostID      string         `db:"post_id"`
	IsApproved  bool           `db:"is_approved"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	AuthorName  sql.NullString `db:"author_name"`
	AuthorEmail sql.NullString `db:"author_email"`
}

func (row *commentRow) toModel() *models.Comment {
	comment := &models.Comment{
		ID:         row.ID,
		Content:    row.Content,
		AuthorID:   row.AuthorID,
		PostID:     row.PostID,
		IsApproved: row.IsApproved,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.AuthorName.Valid {
		comment.Author = &models.OwnerSummary{
			ID:    row.AuthorID,
			Name:  row.AuthorName.String,
			Email: row.AuthorEmail.String,
		}
	}
	return comment
}

// commentRepo is the PostgreSQL implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, content, author_id, post_id, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.Content, comment.AuthorID, comment.PostID,
		comment.IsApproved, comment.CreatedAt, comment.UpdatedAt,
	)
	return err
}

// GetByID retrieves a comment by ID with its author populated
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var row commentRow
	err := r.db.GetContext(ctx, &row, commentSelect+` WHERE c.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// Update writes the content of a comment
func (r *commentRepo) Update(ctx context.Context, comment *models.Comment) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE comments SET content = $2, updated_at = $3 WHERE id = $1",
		comment.ID, comment.Content, comment.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes a comment by its own ID and reports whether it existed
func (r *commentRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List returns one page of comments matching filter, newest first, and the total match count
func (r *commentRepo) List(ctx context.Context, filter models.CommentFilter, page models.Page) ([]*models.Comment, int, error) {
	var conds []string
	var args []interface{}
	if filter.PostID != "" {
		args = append(args, filter.PostID)
		conds = append(conds, fmt.Sprintf("c.post_id = $%d", len(args)))
	}
	if filter.ApprovedOnly {
		conds = append(conds, "c.is_approved = TRUE")
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM comments c"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d",
		commentSelect, where, len(args)+1, len(args)+2)

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, append(args, page.Limit, page.Offset())...); err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*models.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, rows[i].toModel())
	}
	return comments, total, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM comments")
	return count, err
}
