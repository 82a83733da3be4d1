package redisrepo

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	POST_KEY             = "post:%s"               // <postID>
	AUTHOR_POSTS_KEY     = "author:%s-posts:%d:%d" // <authorID>:<limit>:<offset>
	AUTHOR_POSTS_PATTERN = "author:%s-posts:*"     // <authorID>
)

func PostKey(postID uuid.UUID) string {
	return fmt.Sprintf(POST_KEY, postID.String())
}

func AuthorPostsKey(authorID string, limit int, offset int) string {
	return fmt.Sprintf(AUTHOR_POSTS_KEY, authorID, limit, offset)
}

func AuthorPostsPattern(authorID string) string {
	return fmt.Sprintf(AUTHOR_POSTS_PATTERN, authorID)
}
