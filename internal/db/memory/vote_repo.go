package memory

import (
	"Banter/internal/core/votes"
	"context"
	"sync"
)

type voteKey struct {
	username  string
	contentID string
	kind      string
}

type memoryVoteRepo struct {
	mu    sync.RWMutex
	votes map[voteKey]*votes.Vote
}

// NewVoteRepository creates an in-memory vote repository
func NewVoteRepository() votes.Repository {
	return &memoryVoteRepo{votes: make(map[voteKey]*votes.Vote)}
}

func (r *memoryVoteRepo) Create(ctx context.Context, vote *votes.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cloned := *vote
	r.votes[voteKey{vote.Username, vote.ContentID, string(vote.Kind)}] = &cloned
	return nil
}

func (r *memoryVoteRepo) Get(ctx context.Context, username, contentID, kind string) (*votes.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vote, ok := r.votes[voteKey{username, contentID, kind}]
	if !ok {
		return nil, votes.ErrVoteNotFound
	}

	cloned := *vote
	return &cloned, nil
}

func (r *memoryVoteRepo) Update(ctx context.Context, vote *votes.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.votes[voteKey{vote.Username, vote.ContentID, string(vote.Kind)}]
	if !ok {
		return votes.ErrVoteNotFound
	}
	stored.IsLike = vote.IsLike
	stored.CreatedAt = vote.CreatedAt
	return nil
}

func (r *memoryVoteRepo) Delete(ctx context.Context, username, contentID, kind string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := voteKey{username, contentID, kind}
	if _, ok := r.votes[key]; !ok {
		return votes.ErrVoteNotFound
	}
	delete(r.votes, key)
	return nil
}

func (r *memoryVoteRepo) DeleteByContentID(ctx context.Context, contentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.votes {
		if key.contentID == contentID {
			delete(r.votes, key)
		}
	}
	return nil
}
