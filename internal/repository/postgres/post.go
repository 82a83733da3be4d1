package postgres

import (
	"context"

	"github.com/BlogSpace/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO blog_posts(title, content, image_url, author_id, author_name, author_image)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		post.Title,
		post.Content,
		post.ImageURL,
		post.AuthorID,
		post.AuthorName,
		post.AuthorImage,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		`SELECT
		p.id, p.title, p.content, p.image_url, p.author_id, p.author_name, p.author_image, p.created_at, p.updated_at
		FROM blog_posts p
		WHERE p.id = $1`,
		id,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.ImageURL,
		&post.AuthorID,
		&post.AuthorName,
		&post.AuthorImage,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindAuthorPosts(ctx context.Context, authorID string, limit int, offset int) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
		p.id, p.title, p.content, p.image_url, p.author_id, p.author_name, p.author_image, p.created_at, p.updated_at
		FROM blog_posts p
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2
		OFFSET $3`,
		authorID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.ImageURL,
			&post.AuthorID,
			&post.AuthorName,
			&post.AuthorImage,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) Update(ctx context.Context, id uuid.UUID, title string, content string, imageURL string) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		`UPDATE blog_posts
		SET title = $2, content = $3, image_url = $4, updated_at = now()
		WHERE id = $1
		RETURNING id, title, content, image_url, author_id, author_name, author_image, created_at, updated_at`,
		id,
		title,
		content,
		imageURL,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.ImageURL,
		&post.AuthorID,
		&post.AuthorName,
		&post.AuthorImage,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, "DELETE FROM blog_posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
