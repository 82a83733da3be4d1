package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BlogSpace/blog-service/internal/dto"
	"github.com/BlogSpace/blog-service/internal/model"
	"github.com/BlogSpace/blog-service/internal/repository"
	"github.com/BlogSpace/blog-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func cacheTTL() time.Duration {
	if ttl := viper.GetDuration("cache.ttl"); ttl > 0 {
		return ttl
	}
	return time.Hour
}

func (s *postService) Create(ctx context.Context, caller model.Identity, input dto.CreatePostRequest) (*model.Post, error) {
	if !caller.Authenticated {
		return nil, ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	post := model.Post{
		Title:       input.Title,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		AuthorID:    caller.AuthorID(),
		AuthorName:  caller.DisplayName(),
		AuthorImage: caller.Picture,
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", post.AuthorID, err.Error())
		return nil, ErrInternal
	}

	s.invalidateAuthorPosts(ctx, createdPost.AuthorID)

	return createdPost, nil
}

func (s *postService) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	cachedPost, err := redisrepo.Get[model.Post](s.repo.Redis.Default, ctx, redisrepo.PostKey(id))
	if err == nil && cachedPost != nil {
		return cachedPost, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%s) from redis: %s", id.String(), err.Error())
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostKey(id), post, cacheTTL()); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%s) in redis: %s", id.String(), err.Error())
	}

	return post, nil
}

func (s *postService) FindAuthorPosts(ctx context.Context, authorID string, limit int, offset int) ([]*model.Post, error) {
	maxLimit(&limit)
	minOffset(&offset)

	cachedPosts, err := redisrepo.GetMany[model.Post](s.repo.Redis.Default, ctx, redisrepo.AuthorPostsKey(authorID, limit, offset))
	if err == nil && cachedPosts != nil {
		return cachedPosts, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get author(%s) posts from redis: %s", authorID, err.Error())
	}

	posts, err := s.repo.Postgres.Post.FindAuthorPosts(ctx, authorID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find author(%s) posts from postgres: %s", authorID, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.AuthorPostsKey(authorID, limit, offset), posts, cacheTTL()); err != nil {
		s.logger.Sugar().Errorf("failed to set author(%s) posts in redis: %s", authorID, err.Error())
	}

	return posts, nil
}

func (s *postService) Update(ctx context.Context, caller model.Identity, id uuid.UUID, input dto.UpdatePostRequest) (*model.Post, error) {
	if !caller.Authenticated {
		return nil, ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	if post.AuthorID != caller.ID {
		return nil, ErrNotPostAuthor
	}

	updatedPost, err := s.repo.Postgres.Post.Update(ctx, id, input.Title, input.Content, input.ImageURL)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to update post(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	s.invalidatePost(ctx, id)
	s.invalidateAuthorPosts(ctx, updatedPost.AuthorID)

	return updatedPost, nil
}

func (s *postService) Delete(ctx context.Context, caller model.Identity, id uuid.UUID) error {
	if !caller.Authenticated {
		return ErrUnauthenticated
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", id.String(), err.Error())
		return ErrInternal
	}

	if post.AuthorID != caller.ID {
		return ErrNotPostAuthor
	}

	if err := s.repo.Postgres.Post.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to delete post(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	s.invalidatePost(ctx, id)
	s.invalidateAuthorPosts(ctx, post.AuthorID)

	return nil
}

func (s *postService) invalidatePost(ctx context.Context, id uuid.UUID) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostKey(id)).Err(); err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to delete post(%s) from redis: %s", id.String(), err.Error())
	}
}

func (s *postService) invalidateAuthorPosts(ctx context.Context, authorID string) {
	keys, err := s.repo.Redis.Default.Keys(ctx, redisrepo.AuthorPostsPattern(authorID)).Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to list author(%s) post keys in redis: %s", authorID, err.Error())
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := s.repo.Redis.Default.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete author(%s) posts from redis: %s", authorID, err.Error())
	}
}
