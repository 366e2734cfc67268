package entity

// Topic is a subject articles are filed under. Slug is its primary identifier.
type Topic struct {
	Slug        string
	Description string
}
