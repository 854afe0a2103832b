package votes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing

type voteKey struct {
	username  string
	contentID string
	kind      string
}

// mockVoteRepo is a map-backed mock of the vote Repository interface
type mockVoteRepo struct {
	votes map[voteKey]*Vote
}

func newMockVoteRepo() *mockVoteRepo {
	return &mockVoteRepo{votes: make(map[voteKey]*Vote)}
}

func (m *mockVoteRepo) Create(ctx context.Context, vote *Vote) error {
	clone := *vote
	m.votes[voteKey{vote.Username, vote.ContentID, string(vote.Kind)}] = &clone
	return nil
}

func (m *mockVoteRepo) Get(ctx context.Context, username, contentID, kind string) (*Vote, error) {
	v, ok := m.votes[voteKey{username, contentID, kind}]
	if !ok {
		return nil, ErrVoteNotFound
	}
	clone := *v
	return &clone, nil
}

func (m *mockVoteRepo) Update(ctx context.Context, vote *Vote) error {
	key := voteKey{vote.Username, vote.ContentID, string(vote.Kind)}
	if _, ok := m.votes[key]; !ok {
		return ErrVoteNotFound
	}
	clone := *vote
	m.votes[key] = &clone
	return nil
}

func (m *mockVoteRepo) Delete(ctx context.Context, username, contentID, kind string) error {
	key := voteKey{username, contentID, kind}
	if _, ok := m.votes[key]; !ok {
		return ErrVoteNotFound
	}
	delete(m.votes, key)
	return nil
}

func (m *mockVoteRepo) DeleteByContentID(ctx context.Context, contentID string) error {
	for key := range m.votes {
		if key.contentID == contentID {
			delete(m.votes, key)
		}
	}
	return nil
}

// mockPostDirectory tracks like/dislike tallies for known posts, mirroring the
// floor-at-zero behavior of the real counter primitive
type mockPostDirectory struct {
	likes    map[string]int64
	dislikes map[string]int64
	calls    []string
}

func newMockPostDirectory(postIDs ...string) *mockPostDirectory {
	m := &mockPostDirectory{
		likes:    make(map[string]int64),
		dislikes: make(map[string]int64),
	}
	for _, id := range postIDs {
		m.likes[id] = 0
		m.dislikes[id] = 0
	}
	return m
}

func (m *mockPostDirectory) PostExists(ctx context.Context, postID string) (bool, error) {
	_, ok := m.likes[postID]
	return ok, nil
}

func (m *mockPostDirectory) AddLike(ctx context.Context, postID string, isLike, positive bool) error {
	counter := m.dislikes
	label := "dislike"
	if isLike {
		counter = m.likes
		label = "like"
	}
	if positive {
		counter[postID]++
		m.calls = append(m.calls, "+"+label)
	} else {
		counter[postID]--
		if counter[postID] < 0 {
			counter[postID] = 0
		}
		m.calls = append(m.calls, "-"+label)
	}
	return nil
}

func TestVoteService_AddVote_FirstVote(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	err := service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, true)

	require.NoError(t, err)
	assert.Equal(t, int64(1), posts.likes["post-1"])
	assert.Equal(t, int64(0), posts.dislikes["post-1"])

	vote, err := service.GetVote(context.Background(), "alice", "post-1", ContentKindPost)
	require.NoError(t, err)
	assert.True(t, vote.IsLike)
}

func TestVoteService_AddVote_SamePolarityIsIdempotent(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	for i := 0; i < 3; i++ {
		require.NoError(t, service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, true))
	}

	// Repeats rewrite the row but never touch the tally again.
	assert.Equal(t, int64(1), posts.likes["post-1"])
	assert.Equal(t, []string{"+like"}, posts.calls)
}

func TestVoteService_AddVote_PolarityFlip(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	require.NoError(t, service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, true))
	require.NoError(t, service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, false))

	// New counter is bumped before the old one is released.
	assert.Equal(t, []string{"+like", "+dislike", "-like"}, posts.calls)
	assert.Equal(t, int64(0), posts.likes["post-1"])
	assert.Equal(t, int64(1), posts.dislikes["post-1"])

	vote, err := service.GetVote(context.Background(), "alice", "post-1", ContentKindPost)
	require.NoError(t, err)
	assert.False(t, vote.IsLike)
}

func TestVoteService_AddVote_FlipBackAndForth(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	require.NoError(t, service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, true))
	require.NoError(t, service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, false))
	require.NoError(t, service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, true))

	assert.Equal(t, int64(1), posts.likes["post-1"])
	assert.Equal(t, int64(0), posts.dislikes["post-1"])
}

func TestVoteService_AddVote_UnknownPost(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	err := service.AddVote(context.Background(), "alice", "missing", ContentKindPost, true)

	assert.ErrorIs(t, err, ErrInvalidContent)
	assert.Empty(t, repo.votes)
}

func TestVoteService_AddVote_UnknownKind(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	err := service.AddVote(context.Background(), "alice", "post-1", ContentKind("article"), true)

	assert.ErrorIs(t, err, ErrInvalidContentKind)
}

func TestVoteService_AddVote_CommentIsStub(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	err := service.AddVote(context.Background(), "alice", "comment-1", ContentKindComment, true)

	// Comment votes are recorded but no tally exists to bump.
	require.NoError(t, err)
	assert.Empty(t, posts.calls)

	vote, err := service.GetVote(context.Background(), "alice", "comment-1", ContentKindComment)
	require.NoError(t, err)
	assert.True(t, vote.IsLike)
}

func TestVoteService_RemoveVote(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	require.NoError(t, service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, true))
	require.NoError(t, service.RemoveVote(context.Background(), "alice", "post-1", ContentKindPost))

	assert.Equal(t, int64(0), posts.likes["post-1"])

	_, err := service.GetVote(context.Background(), "alice", "post-1", ContentKindPost)
	assert.ErrorIs(t, err, ErrVoteNotFound)
}

func TestVoteService_RemoveVote_TwiceFails(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	require.NoError(t, service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, true))
	require.NoError(t, service.RemoveVote(context.Background(), "alice", "post-1", ContentKindPost))

	err := service.RemoveVote(context.Background(), "alice", "post-1", ContentKindPost)
	assert.ErrorIs(t, err, ErrVoteNotFound)

	// The tally took exactly one round trip.
	assert.Equal(t, []string{"+like", "-like"}, posts.calls)
}

func TestVoteService_RemoveVote_NoVote(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	err := service.RemoveVote(context.Background(), "alice", "post-1", ContentKindPost)
	assert.ErrorIs(t, err, ErrVoteNotFound)
}

func TestVoteService_VotesAreIndependentPerUser(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	require.NoError(t, service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, true))
	require.NoError(t, service.AddVote(context.Background(), "bob", "post-1", ContentKindPost, true))
	require.NoError(t, service.AddVote(context.Background(), "carol", "post-1", ContentKindPost, false))

	assert.Equal(t, int64(2), posts.likes["post-1"])
	assert.Equal(t, int64(1), posts.dislikes["post-1"])

	// Bob flipping doesn't disturb Alice's vote.
	require.NoError(t, service.AddVote(context.Background(), "bob", "post-1", ContentKindPost, false))
	aliceVote, err := service.GetVote(context.Background(), "alice", "post-1", ContentKindPost)
	require.NoError(t, err)
	assert.True(t, aliceVote.IsLike)
	assert.Equal(t, int64(1), posts.likes["post-1"])
	assert.Equal(t, int64(2), posts.dislikes["post-1"])
}

func TestVoteService_ClearVotes(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1", "post-2")
	service := NewVoteService(repo, posts)

	require.NoError(t, service.AddVote(context.Background(), "alice", "post-1", ContentKindPost, true))
	require.NoError(t, service.AddVote(context.Background(), "bob", "post-1", ContentKindPost, false))
	require.NoError(t, service.AddVote(context.Background(), "alice", "post-2", ContentKindPost, true))

	require.NoError(t, service.ClearVotes(context.Background(), "post-1"))

	_, err := service.GetVote(context.Background(), "alice", "post-1", ContentKindPost)
	assert.ErrorIs(t, err, ErrVoteNotFound)
	_, err = service.GetVote(context.Background(), "bob", "post-1", ContentKindPost)
	assert.ErrorIs(t, err, ErrVoteNotFound)

	// Votes on other content survive.
	vote, err := service.GetVote(context.Background(), "alice", "post-2", ContentKindPost)
	require.NoError(t, err)
	assert.True(t, vote.IsLike)
}

func TestVoteService_GetVote_CorruptedKind(t *testing.T) {
	repo := newMockVoteRepo()
	posts := newMockPostDirectory("post-1")
	service := NewVoteService(repo, posts)

	// A row whose stored kind fell outside the enumeration.
	repo.votes[voteKey{"alice", "post-1", "post"}] = &Vote{
		Username:  "alice",
		ContentID: "post-1",
		Kind:      ContentKind("gibberish"),
		IsLike:    true,
		CreatedAt: time.Now(),
	}

	_, err := service.GetVote(context.Background(), "alice", "post-1", ContentKindPost)
	assert.ErrorIs(t, err, ErrInvalidContentKind)
}

func TestParseContentKind(t *testing.T) {
	kind, err := ParseContentKind("post")
	require.NoError(t, err)
	assert.Equal(t, ContentKindPost, kind)

	kind, err = ParseContentKind("comment")
	require.NoError(t, err)
	assert.Equal(t, ContentKindComment, kind)

	_, err = ParseContentKind("article")
	assert.ErrorIs(t, err, ErrInvalidContentKind)

	_, err = ParseContentKind("")
	assert.ErrorIs(t, err, ErrInvalidContentKind)
}
