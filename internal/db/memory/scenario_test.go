package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Banter/internal/core/posts"
	"Banter/internal/core/subforums"
	"Banter/internal/core/votes"
	"Banter/internal/db/memory"
)

// newForum wires the real services over the in-memory backend the same way
// main does, including the two late-attached collaborators.
func newForum() (subforums.Service, posts.Service, votes.Service) {
	subforumService := subforums.NewSubforumService(memory.NewSubforumRepository())
	postService := posts.NewPostService(memory.NewPostRepository(), subforumService)
	voteService := votes.NewVoteService(memory.NewVoteRepository(), postService)

	subforumService.SetPostCounter(postService)
	postService.SetVoteClearer(voteService)

	return subforumService, postService, voteService
}

func TestForum_VoteLifecycle(t *testing.T) {
	ctx := context.Background()
	subforumService, postService, voteService := newForum()

	require.NoError(t, subforumService.CreateSubforum(ctx, "alice", "golang", "All things Go"))

	post, err := postService.CreatePost(ctx, posts.CreatePostRequest{
		Author:   "alice",
		Subforum: "golang",
		Title:    "Generics in practice",
		Body:     "Sharing some patterns that held up",
	})
	require.NoError(t, err)

	// Two likes and a dislike from three users.
	require.NoError(t, voteService.AddVote(ctx, "alice", post.ID, votes.ContentKindPost, true))
	require.NoError(t, voteService.AddVote(ctx, "bob", post.ID, votes.ContentKindPost, true))
	require.NoError(t, voteService.AddVote(ctx, "carol", post.ID, votes.ContentKindPost, false))

	current, err := postService.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), current.Likes)
	assert.Equal(t, int64(1), current.Dislikes)

	// Carol flips; bob repeats himself.
	require.NoError(t, voteService.AddVote(ctx, "carol", post.ID, votes.ContentKindPost, true))
	require.NoError(t, voteService.AddVote(ctx, "bob", post.ID, votes.ContentKindPost, true))

	current, err = postService.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), current.Likes)
	assert.Equal(t, int64(0), current.Dislikes)

	// Alice retracts.
	require.NoError(t, voteService.RemoveVote(ctx, "alice", post.ID, votes.ContentKindPost))

	current, err = postService.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), current.Likes)

	// Counter state always equals the live vote rows.
	likeVotes := 0
	for _, u := range []string{"alice", "bob", "carol"} {
		v, err := voteService.GetVote(ctx, u, post.ID, votes.ContentKindPost)
		if err == nil && v.IsLike {
			likeVotes++
		}
	}
	assert.Equal(t, int64(likeVotes), current.Likes)
}

func TestForum_DeletePostCascadesVotes(t *testing.T) {
	ctx := context.Background()
	subforumService, postService, voteService := newForum()

	require.NoError(t, subforumService.CreateSubforum(ctx, "alice", "golang", "All things Go"))

	post, err := postService.CreatePost(ctx, posts.CreatePostRequest{
		Author:   "alice",
		Subforum: "golang",
		Title:    "Short lived",
		Body:     "This one is going away",
	})
	require.NoError(t, err)

	require.NoError(t, voteService.AddVote(ctx, "bob", post.ID, votes.ContentKindPost, true))
	require.NoError(t, voteService.AddVote(ctx, "carol", post.ID, votes.ContentKindPost, false))

	require.NoError(t, postService.DeletePost(ctx, "alice", post.ID))

	_, err = postService.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)

	// No orphaned vote rows survive the post.
	_, err = voteService.GetVote(ctx, "bob", post.ID, votes.ContentKindPost)
	assert.ErrorIs(t, err, votes.ErrVoteNotFound)
	_, err = voteService.GetVote(ctx, "carol", post.ID, votes.ContentKindPost)
	assert.ErrorIs(t, err, votes.ErrVoteNotFound)
}

func TestForum_PagingMetadataTracksPosts(t *testing.T) {
	ctx := context.Background()
	subforumService, postService, _ := newForum()

	require.NoError(t, subforumService.CreateSubforum(ctx, "alice", "golang", "All things Go"))
	require.NoError(t, subforumService.CreateSubforum(ctx, "alice", "random", "Anything else"))

	for i := 0; i < 25; i++ {
		_, err := postService.CreatePost(ctx, posts.CreatePostRequest{
			Author:   "alice",
			Subforum: "golang",
			Title:    "Another day in Go",
			Body:     "Body text long enough to pass",
		})
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := postService.CreatePost(ctx, posts.CreatePostRequest{
			Author:   "alice",
			Subforum: "random",
			Title:    "Off topic entirely",
			Body:     "Body text long enough to pass",
		})
		require.NoError(t, err)
	}

	info, err := subforumService.GetSubforumInfo(ctx, "golang", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), info.PostCount)
	assert.Equal(t, int64(3), info.PageCount)

	global, err := subforumService.GetSubforumInfo(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Nil(t, global.Subforum)
	assert.Equal(t, int64(28), global.PostCount)
	assert.Equal(t, int64(3), global.PageCount)

	// Listing honors the same page size.
	page, err := postService.ListPosts(ctx, "golang", 2, 10)
	require.NoError(t, err)
	assert.Len(t, page, 5)
}

func TestForum_LockedPostStillAcceptsVotes(t *testing.T) {
	ctx := context.Background()
	subforumService, postService, voteService := newForum()

	require.NoError(t, subforumService.CreateSubforum(ctx, "alice", "golang", "All things Go"))

	post, err := postService.CreatePost(ctx, posts.CreatePostRequest{
		Author:   "alice",
		Subforum: "golang",
		Title:    "Heated thread",
		Body:     "Locking this one down",
	})
	require.NoError(t, err)

	require.NoError(t, postService.LockPost(ctx, "alice", post.ID))

	// Locking freezes content, not opinion.
	require.NoError(t, voteService.AddVote(ctx, "bob", post.ID, votes.ContentKindPost, true))

	current, err := postService.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, current.Locked)
	assert.Equal(t, int64(1), current.Likes)
}
