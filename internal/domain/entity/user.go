package entity

// User is an author of articles and comments, identified by Username.
type User struct {
	Username  string
	Name      string
	AvatarURL string
}
