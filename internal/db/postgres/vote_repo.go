package postgres

import (
	"Banter/internal/core/votes"
	"context"
	"database/sql"
	"fmt"
)

type postgresVoteRepo struct {
	db *sql.DB
}

// NewVoteRepository creates a new PostgreSQL vote repository
func NewVoteRepository(db *sql.DB) votes.Repository {
	return &postgresVoteRepo{db: db}
}

// Create inserts a new vote row
func (r *postgresVoteRepo) Create(ctx context.Context, vote *votes.Vote) error {
	query := `
		INSERT INTO votes (username, content_id, content_kind, is_like, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		vote.Username, vote.ContentID, string(vote.Kind), vote.IsLike, vote.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

// Get retrieves a vote by its composite key, kind returned exactly as stored
func (r *postgresVoteRepo) Get(ctx context.Context, username, contentID, kind string) (*votes.Vote, error) {
	query := `
		SELECT username, content_id, content_kind, is_like, created_at
		FROM votes
		WHERE username = $1 AND content_id = $2 AND content_kind = $3
	`

	var vote votes.Vote
	var storedKind string
	err := r.db.QueryRowContext(ctx, query, username, contentID, kind).Scan(
		&vote.Username, &vote.ContentID, &storedKind, &vote.IsLike, &vote.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, votes.ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	vote.Kind = votes.ContentKind(storedKind)
	return &vote, nil
}

// Update rewrites an existing vote's polarity and timestamp
func (r *postgresVoteRepo) Update(ctx context.Context, vote *votes.Vote) error {
	query := `
		UPDATE votes
		SET is_like = $4, created_at = $5
		WHERE username = $1 AND content_id = $2 AND content_kind = $3
	`

	result, err := r.db.ExecContext(ctx, query,
		vote.Username, vote.ContentID, string(vote.Kind), vote.IsLike, vote.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to update vote: %w", err)
	}

	return requireRow(result, votes.ErrVoteNotFound)
}

// Delete removes a vote by its composite key
func (r *postgresVoteRepo) Delete(ctx context.Context, username, contentID, kind string) error {
	query := `
		DELETE FROM votes
		WHERE username = $1 AND content_id = $2 AND content_kind = $3
	`

	result, err := r.db.ExecContext(ctx, query, username, contentID, kind)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}

	return requireRow(result, votes.ErrVoteNotFound)
}

// DeleteByContentID removes every vote referencing the content ID,
// regardless of kind
func (r *postgresVoteRepo) DeleteByContentID(ctx context.Context, contentID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM votes WHERE content_id = $1`, contentID)
	if err != nil {
		return fmt.Errorf("failed to clear votes for content %s: %w", contentID, err)
	}

	return nil
}
