// Package comment provides HTTP handlers for an article's comments and for
// voting on and deleting individual comments.
package comment

import (
	"time"

	"nc-news/internal/domain/entity"
)

// DTO represents the JSON structure for comment data transfer.
type DTO struct {
	CommentID int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int64     `json:"votes"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		CommentID: c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		Votes:     c.Votes,
	}
}

type commentResponse struct {
	Comment DTO `json:"comment"`
}
