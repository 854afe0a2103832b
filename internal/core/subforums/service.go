package subforums

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"Banter/internal/core/posts"
)

// Board title pattern: alphanumeric segments optionally joined by single
// underscores, no leading or trailing underscore.
var titleRegex = regexp.MustCompile(`^[a-zA-Z0-9]+(_[a-zA-Z0-9]+)*$`)

type subforumService struct {
	repo        Repository
	postCounter PostCounter
}

// NewSubforumService creates a new subforum service.
// The post counter is attached afterwards via SetPostCounter.
func NewSubforumService(repo Repository) Service {
	return &subforumService{repo: repo}
}

// SetPostCounter wires in the post service after construction
func (s *subforumService) SetPostCounter(counter PostCounter) {
	s.postCounter = counter
}

// GetSubforum retrieves a board by title
func (s *subforumService) GetSubforum(ctx context.Context, title string) (*Subforum, error) {
	return s.repo.GetByTitle(ctx, title)
}

// SubforumExists verifies a board exists
func (s *subforumService) SubforumExists(ctx context.Context, title string) error {
	_, err := s.repo.GetByTitle(ctx, title)
	return err
}

// CreateSubforum validates and persists a new board
func (s *subforumService) CreateSubforum(ctx context.Context, creator, title, description string) error {
	if !validDescription(description) {
		return ErrInvalidDescription
	}

	// Uniqueness is checked before the title pattern; a taken title reports
	// as taken even when it is also malformed.
	_, err := s.repo.GetByTitle(ctx, title)
	if err == nil {
		return ErrTitleExists
	}
	if !errors.Is(err, ErrSubforumNotFound) {
		return fmt.Errorf("failed to check subforum title: %w", err)
	}

	if !validTitle(title) {
		return ErrInvalidTitle
	}

	return s.repo.Create(ctx, &Subforum{
		Creator:     creator,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	})
}

// DeleteSubforum removes a board on behalf of its creator.
// Posts referencing the board are not touched.
func (s *subforumService) DeleteSubforum(ctx context.Context, username, title string) error {
	subforum, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		return err
	}

	if subforum.Creator != username {
		// TODO: allow moderators to bypass
		return ErrNotAuthorized
	}

	return s.repo.Delete(ctx, title)
}

// EditSubforum replaces a board's description on behalf of its creator
func (s *subforumService) EditSubforum(ctx context.Context, username, title, description string) error {
	subforum, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		return err
	}

	if !validDescription(description) {
		return ErrInvalidDescription
	}

	if subforum.Creator != username {
		// TODO: allow moderators to bypass
		return ErrNotAuthorized
	}

	return s.repo.UpdateDescription(ctx, title, description)
}

// GetSubforumInfo returns paging metadata, merged with the board's fields
// when a title is given
func (s *subforumService) GetSubforumInfo(ctx context.Context, title string, currentPage, pageLimit int64) (*SubforumInfo, error) {
	if pageLimit <= 0 {
		pageLimit = posts.DefaultPageSize
	}

	info := &SubforumInfo{CurrentPage: currentPage}

	if title != "" {
		subforum, err := s.repo.GetByTitle(ctx, title)
		if err != nil {
			return nil, err
		}
		info.Subforum = subforum
	}

	count, err := s.postCounter.CountPosts(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	info.PostCount = count
	info.PageCount = (count + pageLimit - 1) / pageLimit

	return info, nil
}

func validTitle(title string) bool {
	length := utf8.RuneCountInString(title)
	if length < TitleMin || length > TitleMax {
		return false
	}
	return titleRegex.MatchString(title)
}

func validDescription(description string) bool {
	if description == "" {
		return false
	}
	return utf8.RuneCountInString(description) <= DescriptionMax
}
