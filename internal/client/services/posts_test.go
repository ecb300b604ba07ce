package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogctl/internal/client/api"
	"blogctl/internal/client/models"
	"blogctl/internal/client/state"
)

func TestPostService_ListReplacesSequence(t *testing.T) {
	store := state.NewStore()
	store.PostsLoaded([]models.Post{{ID: "stale"}})

	fc := &fakeClient{ListPostsRet: []models.Post{
		{ID: "p1", Title: "one"},
		{ID: "p2", Title: "two"},
	}}
	svc := NewPostService(fc, store, testLogger())

	require.NoError(t, svc.List(context.Background()))

	posts := store.Posts()
	assert.Equal(t, state.StatusSucceeded, posts.Status)
	require.Len(t, posts.Posts, 2)
	assert.Equal(t, "p1", posts.Posts[0].ID)
	assert.Equal(t, "p2", posts.Posts[1].ID)
}

func TestPostService_CreateThenListIncludesPostOnce(t *testing.T) {
	store := state.NewStore()
	created := models.Post{ID: "p3", Title: "new", Content: "body", Author: models.Author{ID: "u1"}}

	fc := &fakeClient{
		ListPostsRet:  []models.Post{{ID: "p1"}, {ID: "p2"}},
		CreatePostRet: &created,
	}
	svc := NewPostService(fc, store, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.List(ctx))

	got, err := svc.Create(ctx, api.PostParams{Title: "new", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "p3", got.ID)

	count := 0
	for _, p := range store.Posts().Posts {
		if p.ID == "p3" {
			count++
		}
	}
	assert.Equal(t, 1, count, "created post must appear exactly once")
}

func TestPostService_CreateValidation(t *testing.T) {
	store := state.NewStore()
	fc := &fakeClient{}
	svc := NewPostService(fc, store, testLogger())

	_, err := svc.Create(context.Background(), api.PostParams{Title: "no content"})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "Content")
	assert.Equal(t, state.StatusIdle, store.Posts().Status)
}

func TestPostService_UpdateReplacesByID(t *testing.T) {
	store := state.NewStore()
	store.PostsLoaded([]models.Post{
		{ID: "p1", Title: "one"},
		{ID: "p2", Title: "two"},
		{ID: "p3", Title: "three"},
	})

	fc := &fakeClient{UpdatePostRet: &models.Post{ID: "p2", Title: "renamed", Content: "body"}}
	svc := NewPostService(fc, store, testLogger())

	_, err := svc.Update(context.Background(), "p2", api.PostParams{Title: "renamed", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "p2", fc.LastUpdateID)

	posts := store.Posts().Posts
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{posts[0].ID, posts[1].ID, posts[2].ID})
	assert.Equal(t, "renamed", posts[1].Title)
}

func TestPostService_DeleteRemovesMatchingEntry(t *testing.T) {
	store := state.NewStore()
	store.PostsLoaded([]models.Post{{ID: "p1"}, {ID: "p2"}})

	fc := &fakeClient{}
	svc := NewPostService(fc, store, testLogger())

	require.NoError(t, svc.Delete(context.Background(), "p1"))
	assert.Equal(t, "p1", fc.LastDeleteID)

	posts := store.Posts().Posts
	require.Len(t, posts, 1)
	assert.Equal(t, "p2", posts[0].ID)
}

func TestPostService_DeleteRejectedKeepsSequence(t *testing.T) {
	store := state.NewStore()
	store.PostsLoaded([]models.Post{{ID: "p1"}})

	fc := &fakeClient{DeletePostErr: &api.APIError{StatusCode: 404, Message: "post not found"}}
	svc := NewPostService(fc, store, testLogger())

	err := svc.Delete(context.Background(), "p9")
	require.Error(t, err)

	posts := store.Posts()
	assert.Len(t, posts.Posts, 1)
	assert.Equal(t, state.StatusFailed, posts.Status)
	assert.Equal(t, "post not found", posts.Err)
}

func TestPostService_ListFailureKeepsStatus(t *testing.T) {
	store := state.NewStore()
	fc := &fakeClient{ListPostsErr: errors.New("connection refused")}
	svc := NewPostService(fc, store, testLogger())

	err := svc.List(context.Background())
	require.Error(t, err)

	posts := store.Posts()
	assert.Equal(t, state.StatusFailed, posts.Status)
	assert.Equal(t, "connection refused", posts.Err)
}
