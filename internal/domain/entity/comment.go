package entity

import "time"

// Comment represents a user comment attached to an article.
// ArticleID and Author reference existing rows; the store enforces both.
type Comment struct {
	ID        int64
	ArticleID int64
	Author    string
	Body      string
	CreatedAt time.Time
	Votes     int64
}
