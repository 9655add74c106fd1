package repository

import "time"

// Article statuses.
const (
	StatusUnread   = "unread"
	StatusReading  = "reading"
	StatusArchived = "archived"
)

// Article represents a saved link.
type Article struct {
	ID       string
	URL      string
	Title    string
	SiteName string
	Summary  string
	Notes    string
	Status   string
	AddedAt  time.Time
	ReadAt   *time.Time
	Tags     []Tag
}

// Tag represents a tag row.
type Tag struct {
	ID   string
	Name string
}
