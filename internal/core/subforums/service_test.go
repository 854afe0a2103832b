package subforums

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing

// mockSubforumRepo is a map-backed mock of the subforum Repository interface
type mockSubforumRepo struct {
	subforums map[string]*Subforum
}

func newMockSubforumRepo() *mockSubforumRepo {
	return &mockSubforumRepo{subforums: make(map[string]*Subforum)}
}

func (m *mockSubforumRepo) Create(ctx context.Context, subforum *Subforum) error {
	clone := *subforum
	m.subforums[subforum.Title] = &clone
	return nil
}

func (m *mockSubforumRepo) GetByTitle(ctx context.Context, title string) (*Subforum, error) {
	sf, ok := m.subforums[title]
	if !ok {
		return nil, ErrSubforumNotFound
	}
	clone := *sf
	return &clone, nil
}

func (m *mockSubforumRepo) UpdateDescription(ctx context.Context, title, description string) error {
	sf, ok := m.subforums[title]
	if !ok {
		return ErrSubforumNotFound
	}
	sf.Description = description
	return nil
}

func (m *mockSubforumRepo) Delete(ctx context.Context, title string) error {
	if _, ok := m.subforums[title]; !ok {
		return ErrSubforumNotFound
	}
	delete(m.subforums, title)
	return nil
}

// mockPostCounter returns fixed per-board counts
type mockPostCounter struct {
	counts map[string]int64
	total  int64
}

func (m *mockPostCounter) CountPosts(ctx context.Context, subforum string) (int64, error) {
	if subforum == "" {
		return m.total, nil
	}
	return m.counts[subforum], nil
}

func newTestService(repo *mockSubforumRepo, counter *mockPostCounter) Service {
	service := NewSubforumService(repo)
	if counter == nil {
		counter = &mockPostCounter{counts: map[string]int64{}}
	}
	service.SetPostCounter(counter)
	return service
}

func TestSubforumService_CreateSubforum_Valid(t *testing.T) {
	repo := newMockSubforumRepo()
	service := newTestService(repo, nil)

	err := service.CreateSubforum(context.Background(), "alice", "golang", "All things Go")

	require.NoError(t, err)
	sf, err := service.GetSubforum(context.Background(), "golang")
	require.NoError(t, err)
	assert.Equal(t, "alice", sf.Creator)
	assert.Equal(t, "All things Go", sf.Description)
}

func TestSubforumService_CreateSubforum_TitlePattern(t *testing.T) {
	cases := []struct {
		title string
		valid bool
	}{
		{"golang", true},
		{"Test_Sub_forum", true},
		{"abc123", true},
		{"A1_b2_c3", true},
		{"_leading", false},
		{"trailing_", false},
		{"double__underscore", false},
		{"has space", false},
		{"has-dash", false},
		{"ab", false},
		{strings.Repeat("a", TitleMax), true},
		{strings.Repeat("a", TitleMax+1), false},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			repo := newMockSubforumRepo()
			service := newTestService(repo, nil)

			err := service.CreateSubforum(context.Background(), "alice", tc.title, "A description")
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTitle)
			}
		})
	}
}

func TestSubforumService_CreateSubforum_DuplicateTitle(t *testing.T) {
	repo := newMockSubforumRepo()
	service := newTestService(repo, nil)

	require.NoError(t, service.CreateSubforum(context.Background(), "alice", "golang", "First"))

	err := service.CreateSubforum(context.Background(), "bob", "golang", "Second")
	assert.ErrorIs(t, err, ErrTitleExists)

	// Original is untouched.
	sf, err := service.GetSubforum(context.Background(), "golang")
	require.NoError(t, err)
	assert.Equal(t, "alice", sf.Creator)
	assert.Equal(t, "First", sf.Description)
}

func TestSubforumService_CreateSubforum_TakenBeatsMalformed(t *testing.T) {
	repo := newMockSubforumRepo()
	service := newTestService(repo, nil)

	// Seed a row whose title would fail today's pattern.
	repo.subforums["bad__title"] = &Subforum{
		Creator:   "alice",
		Title:     "bad__title",
		CreatedAt: time.Now(),
	}

	// Uniqueness is checked before the pattern.
	err := service.CreateSubforum(context.Background(), "bob", "bad__title", "A description")
	assert.ErrorIs(t, err, ErrTitleExists)
}

func TestSubforumService_CreateSubforum_Description(t *testing.T) {
	repo := newMockSubforumRepo()
	service := newTestService(repo, nil)

	err := service.CreateSubforum(context.Background(), "alice", "golang", "")
	assert.ErrorIs(t, err, ErrInvalidDescription)

	err = service.CreateSubforum(context.Background(), "alice", "golang", strings.Repeat("d", DescriptionMax+1))
	assert.ErrorIs(t, err, ErrInvalidDescription)

	err = service.CreateSubforum(context.Background(), "alice", "golang", strings.Repeat("d", DescriptionMax))
	assert.NoError(t, err)
}

func TestSubforumService_EditSubforum(t *testing.T) {
	repo := newMockSubforumRepo()
	service := newTestService(repo, nil)

	require.NoError(t, service.CreateSubforum(context.Background(), "alice", "golang", "Old"))

	require.NoError(t, service.EditSubforum(context.Background(), "alice", "golang", "New description"))

	sf, err := service.GetSubforum(context.Background(), "golang")
	require.NoError(t, err)
	assert.Equal(t, "New description", sf.Description)
}

func TestSubforumService_EditSubforum_NotCreator(t *testing.T) {
	repo := newMockSubforumRepo()
	service := newTestService(repo, nil)

	require.NoError(t, service.CreateSubforum(context.Background(), "alice", "golang", "Old"))

	err := service.EditSubforum(context.Background(), "bob", "golang", "Hijacked")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	sf, err := service.GetSubforum(context.Background(), "golang")
	require.NoError(t, err)
	assert.Equal(t, "Old", sf.Description)
}

func TestSubforumService_DeleteSubforum(t *testing.T) {
	repo := newMockSubforumRepo()
	service := newTestService(repo, nil)

	require.NoError(t, service.CreateSubforum(context.Background(), "alice", "golang", "A description"))

	err := service.DeleteSubforum(context.Background(), "bob", "golang")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	require.NoError(t, service.DeleteSubforum(context.Background(), "alice", "golang"))

	err = service.SubforumExists(context.Background(), "golang")
	assert.ErrorIs(t, err, ErrSubforumNotFound)
}

func TestSubforumService_GetSubforumInfo_PageMath(t *testing.T) {
	repo := newMockSubforumRepo()
	counter := &mockPostCounter{counts: map[string]int64{"golang": 100}}
	service := newTestService(repo, counter)

	require.NoError(t, service.CreateSubforum(context.Background(), "alice", "golang", "A description"))

	cases := []struct {
		name      string
		pageLimit int64
		wantPages int64
	}{
		{"even split", 10, 10},
		{"remainder rounds up", 9, 12},
		{"single page", 100, 1},
		{"oversized page", 150, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info, err := service.GetSubforumInfo(context.Background(), "golang", 3, tc.pageLimit)
			require.NoError(t, err)
			assert.Equal(t, int64(100), info.PostCount)
			assert.Equal(t, tc.wantPages, info.PageCount)
			assert.Equal(t, int64(3), info.CurrentPage)
			require.NotNil(t, info.Subforum)
			assert.Equal(t, "golang", info.Subforum.Title)
		})
	}
}

func TestSubforumService_GetSubforumInfo_Global(t *testing.T) {
	repo := newMockSubforumRepo()
	counter := &mockPostCounter{total: 45}
	service := newTestService(repo, counter)

	info, err := service.GetSubforumInfo(context.Background(), "", 0, 20)
	require.NoError(t, err)
	assert.Nil(t, info.Subforum)
	assert.Equal(t, int64(45), info.PostCount)
	assert.Equal(t, int64(3), info.PageCount)
}

func TestSubforumService_GetSubforumInfo_UnknownBoard(t *testing.T) {
	repo := newMockSubforumRepo()
	service := newTestService(repo, nil)

	_, err := service.GetSubforumInfo(context.Background(), "missing", 0, 20)
	assert.ErrorIs(t, err, ErrSubforumNotFound)
}

func TestSubforumService_GetSubforumInfo_DefaultLimit(t *testing.T) {
	repo := newMockSubforumRepo()
	counter := &mockPostCounter{total: 30}
	service := newTestService(repo, counter)

	// limit <= 0 selects the shared default page size of 20.
	info, err := service.GetSubforumInfo(context.Background(), "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.PageCount)
}
