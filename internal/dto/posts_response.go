package dto

import "github.com/BlogSpace/blog-service/internal/model"

// GetPost tells the UI whether the caller owns the post so it can decide
// to offer the edit/delete controls.
type GetPost struct {
	Post     model.Post `json:"post"`
	IsAuthor bool       `json:"is_author"`
}
