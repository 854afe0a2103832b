package posts

import "context"

// Service defines the business logic interface for posts.
// Owns post lifecycle, the counter-mutation primitive, and paginated listing.
type Service interface {
	// GetPost retrieves a post by ID
	// Returns ErrPostNotFound when absent
	GetPost(ctx context.Context, postID string) (*Post, error)

	// CreatePost validates and persists a new post. The target board is
	// resolved through the subforum service first; its not-found error
	// propagates unchanged.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// EditPost replaces a post's content on behalf of its author.
	// Like/dislike counters are carried through unchanged.
	EditPost(ctx context.Context, username, postID string, req EditPostRequest) error

	// DeletePost removes a post on behalf of its author, clearing the post's
	// votes before the post row itself goes away.
	DeletePost(ctx context.Context, username, postID string) error

	// LockPost marks a post as locked; fails with ErrPostAlreadyLocked if it
	// already is. The state check runs before the authorship check.
	LockPost(ctx context.Context, username, postID string) error

	// UnlockPost marks a post as unlocked; fails with ErrPostNotLocked if it
	// already is. Same check ordering as LockPost.
	UnlockPost(ctx context.Context, username, postID string) error

	// AddLike applies a single increment (positive=true) or decrement
	// (positive=false) to the like counter (isLike=true) or dislike counter
	// (isLike=false), floored at zero. This is the only path through which
	// counters change.
	AddLike(ctx context.Context, postID string, isLike, positive bool) error

	// PostExists reports whether a post with the given ID exists,
	// without raising a not-found error
	PostExists(ctx context.Context, postID string) (bool, error)

	// ListPosts returns one page of posts, filtered to a board when subforum
	// is non-empty. limit <= 0 selects DefaultPageSize. A negative page, or
	// one whose offset is not representable, fails with ErrInvalidPage.
	ListPosts(ctx context.Context, subforum string, page, limit int64) ([]*Post, error)

	// CountPosts returns the total number of posts, filtered to a board when
	// subforum is non-empty
	CountPosts(ctx context.Context, subforum string) (int64, error)

	// SetVoteClearer wires in the vote service after construction.
	// The post and vote services reference each other, so one side is
	// attached late; main is responsible for calling this exactly once.
	SetVoteClearer(clearer VoteClearer)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and assigns its ID
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post by its ID
	// Returns ErrPostNotFound if no row exists
	GetByID(ctx context.Context, postID string) (*Post, error)

	// Update persists a post's content fields, timestamps, and counters.
	// Author and subforum are immutable and never rewritten.
	Update(ctx context.Context, post *Post) error

	// SetLocked flips the locked flag on a post
	SetLocked(ctx context.Context, postID string, locked bool) error

	// Delete removes a post by ID
	Delete(ctx context.Context, postID string) error

	// List returns up to limit posts skipping offset, oldest first,
	// filtered to a board when subforum is non-empty
	List(ctx context.Context, subforum string, limit, offset int64) ([]*Post, error)

	// Count returns the number of posts, filtered like List
	Count(ctx context.Context, subforum string) (int64, error)
}

// SubforumDirectory verifies that the board a post targets exists.
// Implemented by the subforum service; its not-found error is returned to
// post callers unchanged.
type SubforumDirectory interface {
	SubforumExists(ctx context.Context, title string) error
}

// VoteClearer removes every vote referencing a piece of content.
// Implemented by the vote service; invoked on post deletion before the post
// row is removed, so a failure in between never orphans votes.
type VoteClearer interface {
	ClearVotes(ctx context.Context, contentID string) error
}
