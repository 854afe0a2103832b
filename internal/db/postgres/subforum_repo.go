package postgres

import (
	"Banter/internal/core/subforums"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type postgresSubforumRepo struct {
	db *sql.DB
}

// NewSubforumRepository creates a new PostgreSQL subforum repository
func NewSubforumRepository(db *sql.DB) subforums.Repository {
	return &postgresSubforumRepo{db: db}
}

// Create inserts a new board
func (r *postgresSubforumRepo) Create(ctx context.Context, subforum *subforums.Subforum) error {
	query := `
		INSERT INTO subforums (title, creator, description, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		subforum.Title, subforum.Creator, subforum.Description, subforum.CreatedAt)
	if err != nil {
		// The service pre-checks, but two concurrent creates can still race
		// into the primary key.
		if strings.Contains(err.Error(), "duplicate key") {
			return subforums.ErrTitleExists
		}
		return fmt.Errorf("failed to insert subforum: %w", err)
	}

	return nil
}

// GetByTitle retrieves a board by its unique title
func (r *postgresSubforumRepo) GetByTitle(ctx context.Context, title string) (*subforums.Subforum, error) {
	query := `
		SELECT title, creator, description, created_at
		FROM subforums
		WHERE title = $1
	`

	var subforum subforums.Subforum
	err := r.db.QueryRowContext(ctx, query, title).Scan(
		&subforum.Title, &subforum.Creator, &subforum.Description, &subforum.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, subforums.ErrSubforumNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subforum by title: %w", err)
	}

	return &subforum, nil
}

// UpdateDescription replaces the description of an existing board
func (r *postgresSubforumRepo) UpdateDescription(ctx context.Context, title, description string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE subforums SET description = $2 WHERE title = $1`, title, description)
	if err != nil {
		return fmt.Errorf("failed to update subforum description: %w", err)
	}

	return requireRow(result, subforums.ErrSubforumNotFound)
}

// Delete removes a board by title
func (r *postgresSubforumRepo) Delete(ctx context.Context, title string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM subforums WHERE title = $1`, title)
	if err != nil {
		return fmt.Errorf("failed to delete subforum: %w", err)
	}

	return requireRow(result, subforums.ErrSubforumNotFound)
}
