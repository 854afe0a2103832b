package votes

import "time"

// ContentKind distinguishes what a vote targets. Closed enumeration:
// comments exist in the type system but have no backing entity yet, so
// votes on them carry no tally (see service.go).
type ContentKind string

const (
	ContentKindPost    ContentKind = "post"
	ContentKindComment ContentKind = "comment"
)

// Valid reports whether k is a member of the enumeration
func (k ContentKind) Valid() bool {
	return k == ContentKindPost || k == ContentKindComment
}

// ParseContentKind maps a stored kind string back onto the enumeration.
// Returns ErrInvalidContentKind for anything unrecognized, guarding against
// corrupted rows.
func ParseContentKind(s string) (ContentKind, error) {
	kind := ContentKind(s)
	if !kind.Valid() {
		return "", ErrInvalidContentKind
	}
	return kind, nil
}

// Vote represents one user's like/dislike opinion on one piece of content.
// At most one vote exists per (Username, ContentID, Kind).
type Vote struct {
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	Username  string      `json:"username" db:"username"`
	ContentID string      `json:"contentId" db:"content_id"`
	Kind      ContentKind `json:"contentKind" db:"content_kind"`
	IsLike    bool        `json:"isLike" db:"is_like"`
}
