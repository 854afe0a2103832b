package subforums

import "errors"

var (
	// ErrSubforumNotFound indicates the requested board doesn't exist
	ErrSubforumNotFound = errors.New("subforum not found")

	// ErrTitleExists indicates a board with that title already exists
	ErrTitleExists = errors.New("a subforum with that title already exists")

	// ErrInvalidTitle indicates the title fails the length bound or the
	// alphanumeric/underscore pattern
	ErrInvalidTitle = errors.New("invalid subforum title: letters, numbers, and non-leading/trailing underscores only")

	// ErrInvalidDescription indicates the description is empty or too long
	ErrInvalidDescription = errors.New("invalid subforum description")

	// ErrNotAuthorized indicates the user is not the board's creator
	ErrNotAuthorized = errors.New("not authorized")
)
