package votes

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type voteService struct {
	repo  Repository
	posts PostDirectory
}

// NewVoteService creates a new vote service
func NewVoteService(repo Repository, posts PostDirectory) Service {
	return &voteService{
		repo:  repo,
		posts: posts,
	}
}

// GetVote retrieves a user's vote on a piece of content.
// The stored kind string is parsed back onto the enumeration so a corrupted
// row surfaces as ErrInvalidContentKind instead of leaking through.
func (s *voteService) GetVote(ctx context.Context, username, contentID string, kind ContentKind) (*Vote, error) {
	vote, err := s.repo.Get(ctx, username, contentID, string(kind))
	if err != nil {
		return nil, err
	}

	parsed, err := ParseContentKind(string(vote.Kind))
	if err != nil {
		return nil, err
	}
	vote.Kind = parsed

	return vote, nil
}

// AddVote creates a user's vote for some content, or updates it in place
// when one already exists
func (s *voteService) AddVote(ctx context.Context, username, contentID string, kind ContentKind, isLike bool) error {
	if err := s.checkContent(ctx, contentID, kind); err != nil {
		return err
	}

	existing, err := s.GetVote(ctx, username, contentID, kind)
	if errors.Is(err, ErrVoteNotFound) {
		// First vote on this content: bump the counter, then create the row.
		if kind == ContentKindPost {
			if err := s.posts.AddLike(ctx, contentID, isLike, true); err != nil {
				return err
			}
		}
		return s.repo.Create(ctx, &Vote{
			Username:  username,
			ContentID: contentID,
			Kind:      kind,
			IsLike:    isLike,
			CreatedAt: time.Now(),
		})
	}
	if err != nil {
		return err
	}

	if existing.IsLike != isLike && kind == ContentKindPost {
		// Polarity flip: bump the new counter, release the old one.
		if err := s.posts.AddLike(ctx, contentID, isLike, true); err != nil {
			return err
		}
		if err := s.posts.AddLike(ctx, contentID, existing.IsLike, false); err != nil {
			return err
		}
	}

	// Same polarity leaves the tally alone; the row is rewritten either way.
	return s.repo.Update(ctx, &Vote{
		Username:  username,
		ContentID: contentID,
		Kind:      kind,
		IsLike:    isLike,
		CreatedAt: time.Now(),
	})
}

// RemoveVote retracts a user's vote for some content
func (s *voteService) RemoveVote(ctx context.Context, username, contentID string, kind ContentKind) error {
	vote, err := s.GetVote(ctx, username, contentID, kind)
	if err != nil {
		return err
	}

	switch kind {
	case ContentKindPost:
		exists, err := s.posts.PostExists(ctx, contentID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrInvalidContent
		}
		if err := s.posts.AddLike(ctx, contentID, vote.IsLike, false); err != nil {
			return err
		}
	case ContentKindComment:
		// Comments carry no tally yet; nothing to release.
	default:
		// Unreachable in practice: GetVote already round-trips the kind.
		return ErrInvalidContentKind
	}

	return s.repo.Delete(ctx, username, contentID, string(kind))
}

// ClearVotes deletes every vote referencing the content ID
func (s *voteService) ClearVotes(ctx context.Context, contentID string) error {
	return s.repo.DeleteByContentID(ctx, contentID)
}

// checkContent verifies the vote's target exists for its kind
func (s *voteService) checkContent(ctx context.Context, contentID string, kind ContentKind) error {
	switch kind {
	case ContentKindPost:
		exists, err := s.posts.PostExists(ctx, contentID)
		if err != nil {
			return fmt.Errorf("failed to check post %s: %w", contentID, err)
		}
		if !exists {
			return ErrInvalidContent
		}
	case ContentKindComment:
		// TODO: check comment existence once comments get a backing entity
	default:
		return ErrInvalidContentKind
	}
	return nil
}
