package subforums

import "time"

// Validation bounds for subforum fields
const (
	TitleMin       = 3
	TitleMax       = 40
	DescriptionMax = 650
)

// Subforum represents one topic board. The title is the primary lookup key
// and is globally unique.
type Subforum struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Creator     string    `json:"creator" db:"creator"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
}

// SubforumInfo carries paging metadata for a board's post listing.
// Subforum is nil when the info was requested across all boards.
type SubforumInfo struct {
	Subforum    *Subforum `json:"subforum,omitempty"`
	PostCount   int64     `json:"postCount"`
	PageCount   int64     `json:"pageCount"`
	CurrentPage int64     `json:"currentPage"`
}
