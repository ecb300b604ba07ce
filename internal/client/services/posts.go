package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"blogctl/internal/client/api"
	"blogctl/internal/client/models"
	"blogctl/internal/client/state"
	"blogctl/internal/logging"
)

// PostService defines the posts CRUD operations. Each call follows the same
// pending/succeeded/failed cycle on the posts slice.
type PostService interface {
	List(ctx context.Context) error
	Create(ctx context.Context, params api.PostParams) (*models.Post, error)
	Update(ctx context.Context, id string, params api.PostParams) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}

type postService struct {
	client   api.Client
	store    *state.Store
	validate *validator.Validate
	log      logging.Logger
}

// NewPostService constructs a PostService bound to the given API client
// and state store.
func NewPostService(client api.Client, store *state.Store, log logging.Logger) PostService {
	return &postService{
		client:   client,
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// List replaces the in-memory sequence with the server's, keeping server
// order.
func (s *postService) List(ctx context.Context) error {
	s.store.PostsRequestStarted()

	posts, err := s.client.ListPosts(ctx)
	if err != nil {
		s.store.PostsFailed(api.ErrorMessage(err))
		return fmt.Errorf("error listing posts: %w", err)
	}
	s.log.Debug(ctx, "posts loaded", "count", len(posts))
	s.store.PostsLoaded(posts)
	return nil
}

// Create submits a new post and merges the server's record into the sequence.
func (s *postService) Create(ctx context.Context, params api.PostParams) (*models.Post, error) {
	if err := validateParams(s.validate, params); err != nil {
		return nil, err
	}

	s.store.PostsRequestStarted()
	p, err := s.client.CreatePost(ctx, params)
	if err != nil {
		s.store.PostsFailed(api.ErrorMessage(err))
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	s.store.PostMerged(*p)
	return p, nil
}

// Update replaces the post with the given ID by the server's updated record.
func (s *postService) Update(ctx context.Context, id string, params api.PostParams) (*models.Post, error) {
	if err := validateParams(s.validate, params); err != nil {
		return nil, err
	}

	s.store.PostsRequestStarted()
	p, err := s.client.UpdatePost(ctx, id, params)
	if err != nil {
		s.store.PostsFailed(api.ErrorMessage(err))
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	s.store.PostMerged(*p)
	return p, nil
}

// Delete removes the post with the given ID. When the server rejects the
// call the local sequence is left untouched and the error is surfaced via
// the slice.
func (s *postService) Delete(ctx context.Context, id string) error {
	s.store.PostsRequestStarted()

	if err := s.client.DeletePost(ctx, id); err != nil {
		s.store.PostsFailed(api.ErrorMessage(err))
		return fmt.Errorf("error deleting post: %w", err)
	}
	s.store.PostRemoved(id)
	return nil
}
