package posts

import "time"

// Validation bounds for post fields
const (
	TitleMin  = 3
	TitleMax  = 40
	BodyMin   = 5
	BodyMax   = 40000
	TagMax    = 15
	TagsLimit = 10
)

// DefaultPageSize is the page size used when a listing call doesn't supply
// one. Shared with the subforum service's page-count math.
const DefaultPageSize = 20

// Post represents one thread in a board.
// Likes and Dislikes are derived state: outside of a full edit (which carries
// the current values through), they only change via AddLike.
type Post struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	ModifiedAt time.Time `json:"modifiedAt" db:"modified_at"`
	ID         string    `json:"id" db:"id"`
	Author     string    `json:"author" db:"author"`
	Subforum   string    `json:"subforum" db:"subforum"`
	Title      string    `json:"title" db:"title"`
	Body       string    `json:"body" db:"body"`
	Media      []string  `json:"media,omitempty" db:"media"`
	Tags       []string  `json:"tags,omitempty" db:"tags"`
	Likes      int64     `json:"likes" db:"likes"`
	Dislikes   int64     `json:"dislikes" db:"dislikes"`
	Locked     bool      `json:"locked" db:"locked"`
}

// CreatePostRequest carries the caller-supplied fields for a new post.
// Author comes from the session, never from the request body.
type CreatePostRequest struct {
	Author   string   `json:"-"`
	Subforum string   `json:"subforum"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Media    []string `json:"media,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// EditPostRequest carries the replacement content for an existing post
type EditPostRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Media []string `json:"media,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}
