// Package entity defines the core domain entities and validation logic for the application.
// It contains articles, comments, topics and users, along with the failure taxonomy
// every layer uses to report input, lookup and storage problems.
package entity

import "time"

// Article represents a news article written by a user under a topic.
// Votes is a signed counter with no floor or ceiling.
type Article struct {
	ID            int64
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     time.Time
	Votes         int64
	ArticleImgURL string
}
