package posts

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

type postService struct {
	repo        Repository
	subforums   SubforumDirectory
	voteClearer VoteClearer
}

// NewPostService creates a new post service.
// The vote clearer is attached afterwards via SetVoteClearer.
func NewPostService(repo Repository, subforums SubforumDirectory) Service {
	return &postService{
		repo:      repo,
		subforums: subforums,
	}
}

// SetVoteClearer wires in the vote service after construction
func (s *postService) SetVoteClearer(clearer VoteClearer) {
	s.voteClearer = clearer
}

// GetPost retrieves a post by ID
func (s *postService) GetPost(ctx context.Context, postID string) (*Post, error) {
	return s.repo.GetByID(ctx, postID)
}

// CreatePost validates and persists a new post on behalf of a user
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	// Board existence is delegated, not duplicated: the subforum service's
	// not-found error passes through as-is.
	if err := s.subforums.SubforumExists(ctx, req.Subforum); err != nil {
		return nil, err
	}

	title, err := processTitle(req.Title)
	if err != nil {
		return nil, err
	}

	body, err := processBody(req.Body)
	if err != nil {
		return nil, err
	}

	tags, err := processTags(req.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &Post{
		Author:     req.Author,
		Subforum:   req.Subforum,
		Title:      title,
		Body:       body,
		Media:      req.Media,
		Tags:       tags,
		Likes:      0,
		Dislikes:   0,
		Locked:     false,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// EditPost replaces a post's content on behalf of its author.
// Counters are never touched by an edit.
func (s *postService) EditPost(ctx context.Context, username, postID string, req EditPostRequest) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.Author != username {
		// TODO: allow moderators to bypass
		return ErrNotAuthorized
	}

	title, err := processTitle(req.Title)
	if err != nil {
		return err
	}

	body, err := processBody(req.Body)
	if err != nil {
		return err
	}

	tags, err := processTags(req.Tags)
	if err != nil {
		return err
	}

	post.Title = title
	post.Body = body
	post.Media = req.Media
	post.Tags = tags
	post.ModifiedAt = time.Now()
	// Likes/Dislikes ride along unchanged.

	return s.repo.Update(ctx, post)
}

// DeletePost removes a post on behalf of its author.
// Associated votes are cleared first: a failure between the two steps leaves
// a post without votes, never votes without a post.
func (s *postService) DeletePost(ctx context.Context, username, postID string) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.Author != username {
		// TODO: allow moderators to bypass
		return ErrNotAuthorized
	}

	if s.voteClearer == nil {
		return fmt.Errorf("posts: vote clearer not configured")
	}
	if err := s.voteClearer.ClearVotes(ctx, postID); err != nil {
		return fmt.Errorf("failed to clear votes for post %s: %w", postID, err)
	}

	return s.repo.Delete(ctx, postID)
}

// LockPost marks a post as locked on behalf of its author
func (s *postService) LockPost(ctx context.Context, username, postID string) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	// Locked-state precondition runs before the authorship check.
	if post.Locked {
		return ErrPostAlreadyLocked
	}

	if post.Author != username {
		// TODO: allow moderators to bypass
		return ErrNotAuthorized
	}

	return s.repo.SetLocked(ctx, postID, true)
}

// UnlockPost marks a post as unlocked on behalf of its author
func (s *postService) UnlockPost(ctx context.Context, username, postID string) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !post.Locked {
		return ErrPostNotLocked
	}

	if post.Author != username {
		// TODO: allow moderators to bypass
		return ErrNotAuthorized
	}

	return s.repo.SetLocked(ctx, postID, false)
}

// AddLike is the counter-mutation primitive: one increment or decrement of a
// single counter, floored at zero. Every tally change outside of a full edit
// routes through here.
func (s *postService) AddLike(ctx context.Context, postID string, isLike, positive bool) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	delta := int64(1)
	if !positive {
		delta = -1
	}

	if isLike {
		post.Likes += delta
		if post.Likes < 0 {
			post.Likes = 0
		}
	} else {
		post.Dislikes += delta
		if post.Dislikes < 0 {
			post.Dislikes = 0
		}
	}

	return s.repo.Update(ctx, post)
}

// PostExists reports whether a post exists without raising a not-found error
func (s *postService) PostExists(ctx context.Context, postID string) (bool, error) {
	_, err := s.repo.GetByID(ctx, postID)
	if errors.Is(err, ErrPostNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check post %s: %w", postID, err)
	}
	return true, nil
}

// ListPosts returns one page of posts, oldest first
func (s *postService) ListPosts(ctx context.Context, subforum string, page, limit int64) ([]*Post, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 0 || page > math.MaxInt64/limit {
		return nil, ErrInvalidPage
	}

	results, err := s.repo.List(ctx, subforum, limit, page*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return results, nil
}

// CountPosts returns the total post count, filtered to a board when given
func (s *postService) CountPosts(ctx context.Context, subforum string) (int64, error) {
	return s.repo.Count(ctx, subforum)
}

func processTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if length := utf8.RuneCountInString(title); length < TitleMin || length > TitleMax {
		return "", ErrInvalidTitle
	}
	return title, nil
}

func processBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if length := utf8.RuneCountInString(body); length < BodyMin || length > BodyMax {
		return "", ErrInvalidBody
	}
	return body, nil
}

// processTags trims and validates tags in list order; the first violation
// wins and nothing is partially applied. An empty list normalizes to nil.
func processTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	if len(tags) > TagsLimit {
		return nil, ErrTagLimitExceeded
	}

	processed := make([]string, len(tags))
	for i, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return nil, ErrInvalidTag
		}
		if utf8.RuneCountInString(tag) > TagMax {
			return nil, ErrInvalidTag
		}
		processed[i] = tag
	}
	return processed, nil
}
