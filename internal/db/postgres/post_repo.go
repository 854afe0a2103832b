package postgres

import (
	"Banter/internal/core/posts"
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post. The ID is assigned here, never by the caller.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	post.ID = uuid.NewString()

	query := `
		INSERT INTO posts (
			id, author, subforum, title, body, media, tags,
			likes, dislikes, locked, created_at, modified_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(
		ctx, query,
		post.ID, post.Author, post.Subforum, post.Title, post.Body,
		pq.Array(post.Media), pq.Array(post.Tags),
		post.Likes, post.Dislikes, post.Locked, post.CreatedAt, post.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by its ID.
// A malformed ID reads as not-found rather than a database error.
func (r *postgresPostRepo) GetByID(ctx context.Context, postID string) (*posts.Post, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, posts.ErrPostNotFound
	}

	query := `
		SELECT id, author, subforum, title, body, media, tags,
		       likes, dislikes, locked, created_at, modified_at
		FROM posts
		WHERE id = $1
	`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, postID))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}

	return post, nil
}

// Update persists a post's content fields, timestamps, and counters.
// Author and subforum columns are never rewritten.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, body = $3, media = $4, tags = $5,
		    likes = $6, dislikes = $7, modified_at = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx, query,
		post.ID, post.Title, post.Body, pq.Array(post.Media), pq.Array(post.Tags),
		post.Likes, post.Dislikes, post.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return requireRow(result, posts.ErrPostNotFound)
}

// SetLocked flips the locked flag on a post
func (r *postgresPostRepo) SetLocked(ctx context.Context, postID string, locked bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE posts SET locked = $2 WHERE id = $1`, postID, locked)
	if err != nil {
		return fmt.Errorf("failed to set post lock state: %w", err)
	}

	return requireRow(result, posts.ErrPostNotFound)
}

// Delete removes a post by ID
func (r *postgresPostRepo) Delete(ctx context.Context, postID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return requireRow(result, posts.ErrPostNotFound)
}

// List returns up to limit posts skipping offset, oldest first,
// filtered to a board when subforum is non-empty
func (r *postgresPostRepo) List(ctx context.Context, subforum string, limit, offset int64) ([]*posts.Post, error) {
	query := `
		SELECT id, author, subforum, title, body, media, tags,
		       likes, dislikes, locked, created_at, modified_at
		FROM posts
		WHERE ($1 = '' OR subforum = $1)
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, subforum, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var results []*posts.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		results = append(results, post)
	}

	return results, rows.Err()
}

// Count returns the number of posts, filtered like List
func (r *postgresPostRepo) Count(ctx context.Context, subforum string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE ($1 = '' OR subforum = $1)`, subforum,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var post posts.Post
	var media, tags pq.StringArray

	err := row.Scan(
		&post.ID, &post.Author, &post.Subforum, &post.Title, &post.Body,
		&media, &tags,
		&post.Likes, &post.Dislikes, &post.Locked, &post.CreatedAt, &post.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}

	post.Media = media
	post.Tags = tags
	return &post, nil
}

// requireRow maps a zero-row mutation onto the entity's not-found error
func requireRow(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
