package union

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
)

// PostService handles post-related business operations
type PostService struct {
	postRepo union.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo union.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// Create creates a new post
func (s *PostService) Create(ctx context.Context, req CreatePostRequest, actor shared.ActorRef) (*PostResponse, error) {
	post, err := union.NewPost(req.Name, req.Description, actor)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	response := ToPostResponse(post)
	return &response, nil
}

// GetByID retrieves a post by ID
func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPostResponse(post)
	return &response, nil
}

// List retrieves posts matching the query with pagination
func (s *PostService) List(ctx context.Context, query shared.ListQuery) ([]PostResponse, int64, error) {
	posts, total, err := s.postRepo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return ToPostResponses(posts), total, nil
}

// Update updates a post
func (s *PostService) Update(ctx context.Context, id uuid.UUID, req UpdatePostRequest, actor shared.ActorRef) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := post.Update(req.Name, req.Description, actor); err != nil {
		return nil, err
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	response := ToPostResponse(post)
	return &response, nil
}

// Delete soft-deletes a post
func (s *PostService) Delete(ctx context.Context, id uuid.UUID, actor shared.ActorRef) error {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !post.MarkDeleted(actor, time.Now()) {
		return nil
	}

	return s.postRepo.Save(ctx, post)
}
