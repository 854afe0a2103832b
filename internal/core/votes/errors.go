package votes

import "errors"

var (
	// ErrVoteNotFound indicates no vote exists for that user/content/kind
	ErrVoteNotFound = errors.New("vote not found")

	// ErrInvalidContent indicates the referenced content doesn't exist
	ErrInvalidContent = errors.New("voted content does not exist")

	// ErrInvalidContentKind indicates a kind outside the enumeration,
	// whether supplied by a caller or read back from storage
	ErrInvalidContentKind = errors.New("unknown content kind")
)
