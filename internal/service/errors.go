package service

import "errors"

var (
	ErrInternal        = errors.New("internal server error")
	ErrUnauthenticated = errors.New("authentication required")
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostAuthor   = errors.New("caller is not the post author")
	ErrInvalidInput    = errors.New("invalid input")
)
