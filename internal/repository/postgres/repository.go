package postgres

import (
	"context"

	"github.com/BlogSpace/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindAuthorPosts(ctx context.Context, authorID string, limit int, offset int) ([]*model.Post, error)
	Update(ctx context.Context, id uuid.UUID, title string, content string, imageURL string) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresRepository struct {
	Post
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post: newPostRepo(db),
	}
}
