package memory

import (
	"Banter/internal/core/posts"
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type memoryPostRepo struct {
	mu    sync.RWMutex
	posts map[string]*posts.Post
}

// NewPostRepository creates an in-memory post repository.
// Safe for concurrent independent-key access, like the other backends.
func NewPostRepository() posts.Repository {
	return &memoryPostRepo{posts: make(map[string]*posts.Post)}
}

func (r *memoryPostRepo) Create(ctx context.Context, post *posts.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = uuid.NewString()
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *memoryPostRepo) GetByID(ctx context.Context, postID string) (*posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[postID]
	if !ok {
		return nil, posts.ErrPostNotFound
	}
	return clonePost(post), nil
}

func (r *memoryPostRepo) Update(ctx context.Context, post *posts.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.posts[post.ID]
	if !ok {
		return posts.ErrPostNotFound
	}

	// Author and subforum are immutable; everything else is rewritten.
	stored.Title = post.Title
	stored.Body = post.Body
	stored.Media = append([]string(nil), post.Media...)
	stored.Tags = append([]string(nil), post.Tags...)
	stored.Likes = post.Likes
	stored.Dislikes = post.Dislikes
	stored.ModifiedAt = post.ModifiedAt
	return nil
}

func (r *memoryPostRepo) SetLocked(ctx context.Context, postID string, locked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.posts[postID]
	if !ok {
		return posts.ErrPostNotFound
	}
	stored.Locked = locked
	return nil
}

func (r *memoryPostRepo) Delete(ctx context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[postID]; !ok {
		return posts.ErrPostNotFound
	}
	delete(r.posts, postID)
	return nil
}

func (r *memoryPostRepo) List(ctx context.Context, subforum string, limit, offset int64) ([]*posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*posts.Post
	for _, post := range r.posts {
		if subforum == "" || post.Subforum == subforum {
			matched = append(matched, post)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	if offset >= int64(len(matched)) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < int64(len(matched)) {
		matched = matched[:limit]
	}

	page := make([]*posts.Post, len(matched))
	for i, post := range matched {
		page[i] = clonePost(post)
	}
	return page, nil
}

func (r *memoryPostRepo) Count(ctx context.Context, subforum string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, post := range r.posts {
		if subforum == "" || post.Subforum == subforum {
			count++
		}
	}
	return count, nil
}

func clonePost(post *posts.Post) *posts.Post {
	cloned := *post
	cloned.Media = append([]string(nil), post.Media...)
	cloned.Tags = append([]string(nil), post.Tags...)
	return &cloned
}
