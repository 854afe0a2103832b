package memory

import (
	"Banter/internal/core/subforums"
	"context"
	"sync"
)

type memorySubforumRepo struct {
	mu        sync.RWMutex
	subforums map[string]*subforums.Subforum
}

// NewSubforumRepository creates an in-memory subforum repository
func NewSubforumRepository() subforums.Repository {
	return &memorySubforumRepo{subforums: make(map[string]*subforums.Subforum)}
}

func (r *memorySubforumRepo) Create(ctx context.Context, subforum *subforums.Subforum) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subforums[subforum.Title]; ok {
		return subforums.ErrTitleExists
	}

	cloned := *subforum
	r.subforums[subforum.Title] = &cloned
	return nil
}

func (r *memorySubforumRepo) GetByTitle(ctx context.Context, title string) (*subforums.Subforum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subforum, ok := r.subforums[title]
	if !ok {
		return nil, subforums.ErrSubforumNotFound
	}

	cloned := *subforum
	return &cloned, nil
}

func (r *memorySubforumRepo) UpdateDescription(ctx context.Context, title, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subforum, ok := r.subforums[title]
	if !ok {
		return subforums.ErrSubforumNotFound
	}
	subforum.Description = description
	return nil
}

func (r *memorySubforumRepo) Delete(ctx context.Context, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subforums[title]; !ok {
		return subforums.ErrSubforumNotFound
	}
	delete(r.subforums, title)
	return nil
}
