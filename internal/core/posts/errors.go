package posts

import "errors"

var (
	// ErrPostNotFound indicates no post exists with the given ID
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidTitle indicates the trimmed title is outside [TitleMin, TitleMax]
	ErrInvalidTitle = errors.New("post title must be between 3 and 40 characters")

	// ErrInvalidBody indicates the trimmed body is outside [BodyMin, BodyMax]
	ErrInvalidBody = errors.New("post body must be between 5 and 40000 characters")

	// ErrInvalidTag indicates a tag is empty after trimming or exceeds TagMax
	ErrInvalidTag = errors.New("tag must be non-empty and at most 15 characters")

	// ErrTagLimitExceeded indicates more than TagsLimit tags were supplied
	ErrTagLimitExceeded = errors.New("a post may carry at most 10 tags")

	// ErrNotAuthorized indicates the user is not the post's author
	ErrNotAuthorized = errors.New("not authorized")

	// ErrPostAlreadyLocked indicates a lock request on an already-locked post
	ErrPostAlreadyLocked = errors.New("post already marked as locked")

	// ErrPostNotLocked indicates an unlock request on an unlocked post
	ErrPostNotLocked = errors.New("post already marked as unlocked")

	// ErrInvalidPage indicates the page/limit combination overflows the
	// listing offset arithmetic
	ErrInvalidPage = errors.New("invalid page")
)
