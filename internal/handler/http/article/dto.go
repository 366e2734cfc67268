// Package article provides HTTP handlers for listing, reading and voting on articles.
package article

import (
	"time"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

// DTO represents the JSON structure for article data transfer.
// CommentCount is present on reads and absent on vote responses.
type DTO struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int64     `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  *int64    `json:"comment_count,omitempty"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ArticleID:     a.ID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
	}
}

func toDTOWithCount(a repository.ArticleWithCount) DTO {
	out := toDTO(a.Article)
	count := a.CommentCount
	out.CommentCount = &count
	return out
}
