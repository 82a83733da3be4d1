package service

import (
	"context"

	"github.com/BlogSpace/blog-service/internal/dto"
	"github.com/BlogSpace/blog-service/internal/model"
	"github.com/BlogSpace/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT || *limit <= 0 {
		*limit = MAX_LIMIT
	}
}

func minOffset(offset *int) {
	if *offset < 0 {
		*offset = 0
	}
}

type Post interface {
	Create(ctx context.Context, caller model.Identity, input dto.CreatePostRequest) (*model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindAuthorPosts(ctx context.Context, authorID string, limit int, offset int) ([]*model.Post, error)
	Update(ctx context.Context, caller model.Identity, id uuid.UUID, input dto.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, caller model.Identity, id uuid.UUID) error
}

type Service struct {
	Post
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Post: newPostService(logger, repo),
	}
}
