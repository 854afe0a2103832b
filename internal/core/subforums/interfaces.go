package subforums

import "context"

// Service defines the business logic interface for subforums.
// Owns board lifecycle and aggregate paging metadata.
type Service interface {
	// GetSubforum retrieves a board by title
	// Returns ErrSubforumNotFound when absent
	GetSubforum(ctx context.Context, title string) (*Subforum, error)

	// SubforumExists verifies a board exists; returns ErrSubforumNotFound when
	// absent. Used by the post service as its delegated existence check, so the
	// not-found error reaches post callers unchanged.
	SubforumExists(ctx context.Context, title string) error

	// CreateSubforum validates and persists a new board.
	// Check order: description, title uniqueness, title pattern.
	CreateSubforum(ctx context.Context, creator, title, description string) error

	// DeleteSubforum removes a board. Creator only; posts referencing the
	// board are left in place (no cascade).
	DeleteSubforum(ctx context.Context, username, title string) error

	// EditSubforum replaces a board's description. Creator only.
	EditSubforum(ctx context.Context, username, title, description string) error

	// GetSubforumInfo returns paging metadata for one board (title given) or
	// across all boards (title empty). pageLimit <= 0 selects the shared
	// default page size.
	GetSubforumInfo(ctx context.Context, title string, currentPage, pageLimit int64) (*SubforumInfo, error)

	// SetPostCounter wires in the post service after construction.
	// The subforum and post services reference each other, so one side is
	// attached late; main is responsible for calling this exactly once.
	SetPostCounter(counter PostCounter)
}

// Repository defines the data access interface for subforums
type Repository interface {
	// Create inserts a new board
	Create(ctx context.Context, subforum *Subforum) error

	// GetByTitle retrieves a board by its unique title
	// Returns ErrSubforumNotFound if no row exists
	GetByTitle(ctx context.Context, title string) (*Subforum, error)

	// UpdateDescription replaces the description of an existing board
	UpdateDescription(ctx context.Context, title, description string) error

	// Delete removes a board by title
	Delete(ctx context.Context, title string) error
}

// PostCounter is the slice of the post service this package needs for page
// math: a count of posts per board ("" = all boards).
type PostCounter interface {
	CountPosts(ctx context.Context, subforum string) (int64, error)
}
