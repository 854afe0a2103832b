package votes

import "context"

// Service defines the business logic interface for votes.
// Owns the one-vote-per-user invariant and counter synchronization: it is
// the only caller of the post service's counter primitive on behalf of votes.
type Service interface {
	// GetVote retrieves a user's vote on a piece of content.
	// Returns ErrVoteNotFound when absent, ErrInvalidContentKind when the
	// stored kind doesn't parse.
	GetVote(ctx context.Context, username, contentID string, kind ContentKind) (*Vote, error)

	// AddVote creates a vote, or updates it in place when one exists.
	// No existing vote: +1 on the chosen counter, vote row created.
	// Existing vote, same polarity: tally untouched, row rewritten.
	// Existing vote, flipped polarity: +1 new counter, -1 old counter
	// (floored at zero), row rewritten.
	AddVote(ctx context.Context, username, contentID string, kind ContentKind, isLike bool) error

	// RemoveVote retracts a user's vote, decrementing the vote's counter
	// before deleting the row
	RemoveVote(ctx context.Context, username, contentID string, kind ContentKind) error

	// ClearVotes deletes every vote referencing the content ID, regardless of
	// kind. Cascade hook invoked by the post service ahead of post deletion.
	ClearVotes(ctx context.Context, contentID string) error
}

// Repository defines the data access interface for votes
type Repository interface {
	// Create inserts a new vote row
	Create(ctx context.Context, vote *Vote) error

	// Get retrieves a vote by its composite key. The kind comes back exactly
	// as stored; the service re-parses it.
	// Returns ErrVoteNotFound if no row exists.
	Get(ctx context.Context, username, contentID, kind string) (*Vote, error)

	// Update rewrites an existing vote's polarity and timestamp
	Update(ctx context.Context, vote *Vote) error

	// Delete removes a vote by its composite key
	Delete(ctx context.Context, username, contentID, kind string) error

	// DeleteByContentID removes every vote referencing the content ID
	DeleteByContentID(ctx context.Context, contentID string) error
}

// PostDirectory is the slice of the post service the vote service needs:
// a non-raising existence probe and the counter-mutation primitive.
type PostDirectory interface {
	PostExists(ctx context.Context, postID string) (bool, error)
	AddLike(ctx context.Context, postID string, isLike, positive bool) error
}
